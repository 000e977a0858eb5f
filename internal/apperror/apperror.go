// Package apperror defines the closed set of business failures the service
// can report. Each kind carries a fixed code, HTTP status and message.
package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind identifies a business failure.
type Kind int

const (
	StudentNotFound Kind = iota
	InvalidPayload
	InvalidCredentials
	LoginAlreadyExists
	Unauthorized
	TooManyRequests
	PayloadTooLarge
)

// Payload is the wire shape of a business failure. Status is applied to the
// HTTP response and not serialized.
type Payload struct {
	Code    int    `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

var payloads = map[Kind]Payload{
	StudentNotFound:    {Code: 0, Status: http.StatusNotFound, Message: "user.not.found"},
	InvalidPayload:     {Code: 1, Status: http.StatusBadRequest, Message: "invalid.payload"},
	InvalidCredentials: {Code: 2, Status: http.StatusUnauthorized, Message: "invalid.credentials"},
	LoginAlreadyExists: {Code: 3, Status: http.StatusConflict, Message: "login.already.exists"},
	Unauthorized:       {Code: 4, Status: http.StatusUnauthorized, Message: "unauthorized"},
	TooManyRequests:    {Code: 5, Status: http.StatusTooManyRequests, Message: "too.many.requests"},
	PayloadTooLarge:    {Code: 6, Status: http.StatusRequestEntityTooLarge, Message: "payload.too.large"},
}

var names = map[Kind]string{
	StudentNotFound:    "STUDENT_NOT_FOUND",
	InvalidPayload:     "INVALID_PAYLOAD",
	InvalidCredentials: "INVALID_CREDENTIALS",
	LoginAlreadyExists: "LOGIN_ALREADY_EXISTS",
	Unauthorized:       "UNAUTHORIZED",
	TooManyRequests:    "TOO_MANY_REQUESTS",
	PayloadTooLarge:    "PAYLOAD_TOO_LARGE",
}

// Internal is written for failures outside the taxonomy.
var Internal = Payload{Code: -1, Status: http.StatusInternalServerError, Message: "internal.error"}

// Payload returns the fixed payload for k.
func (k Kind) Payload() Payload {
	return payloads[k]
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// Error is a business failure of a given kind.
type Error struct {
	Kind    Kind
	Payload Payload
}

// New returns the business failure for kind k.
func New(k Kind) *Error {
	return &Error{Kind: k, Payload: k.Payload()}
}

func (e *Error) Error() string {
	return e.Payload.Message
}

// Is reports whether target is a business failure of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// From extracts the business failure from err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	ErrStudentNotFound    = New(StudentNotFound)
	ErrInvalidPayload     = New(InvalidPayload)
	ErrInvalidCredentials = New(InvalidCredentials)
	ErrLoginAlreadyExists = New(LoginAlreadyExists)
	ErrUnauthorized       = New(Unauthorized)
	ErrTooManyRequests    = New(TooManyRequests)
	ErrPayloadTooLarge    = New(PayloadTooLarge)
)

// Write sends p as a JSON error response with its HTTP status.
func Write(w http.ResponseWriter, p Payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}
