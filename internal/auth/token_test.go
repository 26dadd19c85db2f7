package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medpoint/clinic-api/internal/model"
)

var _testSecret = []byte("test-secret-key")

func testUser() model.User {
	return model.User{
		UUID:      "2f0b9f4e-0d4e-4c43-9d24-7c1f6f2d2a11",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func TestIssueToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		user := testUser()

		token, err := IssueToken(user, _testSecret)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}

		claims, err := VerifyToken(token, _testSecret)
		if err != nil {
			t.Fatalf("VerifyToken() error = %v", err)
		}

		if claims.UUID != user.UUID {
			t.Errorf("uuid = %q, want %q", claims.UUID, user.UUID)
		}
		if claims.FirstName != user.FirstName || claims.LastName != user.LastName {
			t.Errorf("name = %q %q, want %q %q", claims.FirstName, claims.LastName, user.FirstName, user.LastName)
		}
		if claims.Email != user.Email {
			t.Errorf("email = %q, want %q", claims.Email, user.Email)
		}
	})

	t.Run("lifetime is one hour", func(t *testing.T) {
		token, err := IssueToken(testUser(), _testSecret)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}

		claims, err := VerifyToken(token, _testSecret)
		if err != nil {
			t.Fatalf("VerifyToken() error = %v", err)
		}

		lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if lifetime != TokenLifetime {
			t.Errorf("lifetime = %s, want %s", lifetime, TokenLifetime)
		}
	})

	t.Run("requires uuid", func(t *testing.T) {
		user := testUser()
		user.UUID = "  "

		if _, err := IssueToken(user, _testSecret); err == nil {
			t.Error("expected error for blank uuid")
		}
	})

	t.Run("requires secret", func(t *testing.T) {
		if _, err := IssueToken(testUser(), nil); err == nil {
			t.Error("expected error for empty secret")
		}
	})
}

func TestVerifyToken(t *testing.T) {
	t.Run("rejects empty token", func(t *testing.T) {
		if _, err := VerifyToken("", _testSecret); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		token, err := IssueToken(testUser(), _testSecret)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}

		tampered := token[:len(token)-2] + "xx"
		if _, err := VerifyToken(tampered, _testSecret); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		token, err := IssueToken(testUser(), _testSecret)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}

		if _, err := VerifyToken(token, []byte("other-secret")); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token := signedToken(t, func(claims *Claims) {
			past := time.Now().UTC().Add(-2 * time.Hour)
			claims.IssuedAt = jwt.NewNumericDate(past)
			claims.ExpiresAt = jwt.NewNumericDate(past.Add(TokenLifetime))
		})

		if _, err := VerifyToken(token, _testSecret); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects unexpected issuer", func(t *testing.T) {
		token := signedToken(t, func(claims *Claims) {
			claims.Issuer = "someone-else"
		})

		if _, err := VerifyToken(token, _testSecret); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects alg none", func(t *testing.T) {
		token, err := IssueToken(testUser(), _testSecret)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}

		// Swap the header for {"alg":"none","typ":"JWT"} and drop the signature.
		parts := strings.Split(token, ".")
		unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." + parts[1] + "."

		if _, err := VerifyToken(unsigned, _testSecret); err != ErrInvalidToken {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}

func signedToken(t *testing.T, mutate func(*Claims)) string {
	t.Helper()

	user := testUser()
	now := time.Now().UTC()
	claims := &Claims{
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

	mutate(claims)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(_testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
