package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
	"github.com/studentdesk/studentdesk-go/internal/crypto"
	"github.com/studentdesk/studentdesk-go/internal/model"
	"github.com/studentdesk/studentdesk-go/internal/repository"
)

// UserStore is the credential store. Lookups return repository.ErrUserNotFound
// and Create returns repository.ErrDuplicateLogin for a taken login.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles authentication business logic.
type AuthService struct {
	users    UserStore
	hasher   *crypto.PasswordHasher
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req model.SignUpRequest) (model.UserDto, error) {
	if err := validateStruct(s.validate, s.logger, req); err != nil {
		return model.UserDto{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserDto{}, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Login:        req.Login,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return model.UserDto{}, apperror.ErrLoginAlreadyExists
		}
		return model.UserDto{}, fmt.Errorf("failed to create user: %w", err)
	}

	return model.ToUserDto(user), nil
}

// Login authenticates a user. Unknown logins and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.CredentialsRequest) (model.UserDto, error) {
	if err := validateStruct(s.validate, s.logger, req); err != nil {
		return model.UserDto{}, err
	}

	user, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserDto{}, apperror.ErrInvalidCredentials
		}
		return model.UserDto{}, fmt.Errorf("failed to find user: %w", err)
	}

	match, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return model.UserDto{}, err
	}
	if !match {
		return model.UserDto{}, apperror.ErrInvalidCredentials
	}

	return model.ToUserDto(user), nil
}

// FindByLogin returns the user owning login.
func (s *AuthService) FindByLogin(ctx context.Context, login string) (model.UserDto, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserDto{}, apperror.ErrInvalidCredentials
		}
		return model.UserDto{}, fmt.Errorf("failed to find user: %w", err)
	}
	return model.ToUserDto(user), nil
}

// GetUser retrieves a user by ID. A missing user reports the not-found kind,
// whose message is user.not.found.
func (s *AuthService) GetUser(ctx context.Context, id int64) (model.UserDto, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserDto{}, apperror.ErrStudentNotFound
		}
		return model.UserDto{}, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return model.ToUserDto(user), nil
}
