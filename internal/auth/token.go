package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medpoint/clinic-api/internal/model"
)

const (
	_issuer = "clinic-api"

	// TokenLifetime is fixed; expiry forces re-login, there is no refresh.
	TokenLifetime = time.Hour
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed. The caller is not told which.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed claim set carried by a session token. The display
// fields are trusted for the session's lifetime and never re-read from
// the store.
type Claims struct {
	UUID      model.ID `json:"uuid"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the given user using HS256.
func IssueToken(user model.User, secret []byte) (string, error) {
	if strings.TrimSpace(user.UUID) == "" {
		return "", errors.New("user uuid is required")
	}
	if len(secret) == 0 {
		return "", errors.New("secret is required")
	}

	now := time.Now().UTC()
	claims := Claims{
		UUID:      user.UUID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    _issuer,
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry in one step and decodes the
// claims. Any failure collapses to ErrInvalidToken.
func VerifyToken(token string, secret []byte) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if err := validateClaims(claims); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func validateClaims(claims *Claims) error {
	if claims.Issuer != _issuer {
		return errors.New("unexpected issuer")
	}
	if strings.TrimSpace(claims.UUID) == "" {
		return errors.New("uuid missing")
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return errors.New("timestamps missing")
	}

	now := time.Now().UTC()
	if !now.Before(claims.ExpiresAt.Time) {
		return errors.New("token expired")
	}
	if claims.ExpiresAt.Time.Before(claims.IssuedAt.Time) {
		return errors.New("token expiry precedes issued-at")
	}

	return nil
}
