package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "studentdesk"
	tokenAudience = "studentdesk-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what a token says about its bearer.
type Identity struct {
	UserID    int64
	Login     string
	FirstName string
	LastName  string
}

// Claims represents the JWT claims for studentdesk authentication. The
// subject is the user's login.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// TokenIssuer mints and validates HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret string
	expiry time.Duration
}

// NewTokenIssuer creates a TokenIssuer whose tokens live for expiry.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, expiry: expiry}
}

// CreateToken signs a token for id.
func (i *TokenIssuer) CreateToken(id Identity) (string, error) {
	return GenerateToken(id, i.secret, i.expiry)
}

// ValidateToken returns the claims of a token minted by this issuer.
func (i *TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	return ValidateToken(tokenString, i.secret)
}

// GenerateToken creates a signed JWT token for the given identity.
func GenerateToken(id Identity, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   id.Login,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    id.UserID,
		FirstName: id.FirstName,
		LastName:  id.LastName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
