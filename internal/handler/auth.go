package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
	"github.com/studentdesk/studentdesk-go/internal/crypto"
	"github.com/studentdesk/studentdesk-go/internal/middleware"
	"github.com/studentdesk/studentdesk-go/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, req model.CredentialsRequest) (model.UserDto, error)
	Register(ctx context.Context, req model.SignUpRequest) (model.UserDto, error)
	FindByLogin(ctx context.Context, login string) (model.UserDto, error)
	GetUser(ctx context.Context, id int64) (model.UserDto, error)
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	CreateToken(id crypto.Identity) (string, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service AuthService
	tokens  TokenIssuer
	logger  zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc AuthService, tokens TokenIssuer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: svc, tokens: tokens, logger: logger}
}

// HandleRegister handles POST /auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.attachToken(&user); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.attachToken(&user); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleMe handles GET /auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	login, ok := middleware.LoginFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperror.ErrUnauthorized)
		return
	}

	user, err := h.service.FindByLogin(r.Context(), login)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleGetUser handles GET /users/{id}, the resource named by the Location
// header of a registration.
func (h *AuthHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) attachToken(user *model.UserDto) error {
	token, err := h.tokens.CreateToken(crypto.Identity{
		UserID:    user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	user.Token = token
	return nil
}
