package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/medpoint/clinic-api/internal/auth"
	"github.com/medpoint/clinic-api/internal/database"
	"github.com/medpoint/clinic-api/internal/model"
)

var _testSecret = []byte("test-secret-key")

func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	var cfg config
	cfg.jwt.secret = _testSecret
	cfg.cors.allowedOrigin = "http://localhost:3000"

	return &application{
		config: cfg,
		db: &database.DB{
			DB:      sqlx.NewDb(mockDB, "sqlmock"),
			Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, mock
}

func testUser() model.User {
	return model.User{
		UUID:      "2f0b9f4e-0d4e-4c43-9d24-7c1f6f2d2a11",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func sessionCookie(t *testing.T, user model.User) *http.Cookie {
	t.Helper()

	token, err := auth.IssueToken(user, _testSecret)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	return &http.Cookie{Name: _authCookieName, Value: token}
}

func TestAuthenticate(t *testing.T) {
	app, _ := newTestApplication(t)

	var gotCaller *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCaller = callerFromRequest(r)
		w.WriteHeader(http.StatusOK)
	})
	gate := app.authenticate(next)

	t.Run("missing cookie is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/check-token", nil))

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("tampered cookie is unauthorized", func(t *testing.T) {
		cookie := sessionCookie(t, testUser())
		cookie.Value = cookie.Value[:len(cookie.Value)-2] + "xx"

		req := httptest.NewRequest(http.MethodGet, "/api/user/check-token", nil)
		req.AddCookie(cookie)

		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		user := testUser()
		past := time.Now().UTC().Add(-2 * time.Hour)
		claims := &auth.Claims{
			UUID:      user.UUID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "clinic-api",
				Subject:   user.UUID,
				IssuedAt:  jwt.NewNumericDate(past),
				ExpiresAt: jwt.NewNumericDate(past.Add(auth.TokenLifetime)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(_testSecret)
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/user/check-token", nil)
		req.AddCookie(&http.Cookie{Name: _authCookieName, Value: token})

		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid cookie passes claims through", func(t *testing.T) {
		user := testUser()
		req := httptest.NewRequest(http.MethodGet, "/api/user/check-token", nil)
		req.AddCookie(sessionCookie(t, user))

		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if gotCaller == nil || gotCaller.UUID != user.UUID {
			t.Errorf("caller = %+v, want uuid %q", gotCaller, user.UUID)
		}
	})
}
