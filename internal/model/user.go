package model

import "time"

// User represents an account in the credential store.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignUpRequest represents a user registration request.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"login" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// CredentialsRequest represents a user login request.
type CredentialsRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserDto represents user data safe for API responses. Token is set by the
// HTTP layer once the user has been authenticated or created.
type UserDto struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"login"`
	Token     string `json:"token,omitempty"`
}

// ToUserDto projects a User without sensitive fields.
func ToUserDto(u *User) UserDto {
	return UserDto{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Login:     u.Login,
	}
}
