package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
)

const maxBodyBytes = 1 << 20 // 1MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes business failures with their own payload. Anything else
// is logged and hidden behind the internal error payload.
func writeError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	if appErr, ok := apperror.From(err); ok {
		apperror.Write(w, appErr.Payload)
		return
	}

	log.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	apperror.Write(w, apperror.Internal)
}

// decodeJSON reads a size-limited body holding exactly one JSON value into
// dst. An empty, malformed or trailing-data body is INVALID_PAYLOAD and an
// oversize one PAYLOAD_TOO_LARGE.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeFailure(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return apperror.ErrInvalidPayload
		}
		return decodeFailure(err)
	}
	return nil
}

func decodeFailure(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.ErrPayloadTooLarge
	}
	return apperror.ErrInvalidPayload
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperror.ErrInvalidPayload
	}
	return id, nil
}
