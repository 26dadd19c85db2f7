package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/medpoint/clinic-api/internal/auth"
	"github.com/medpoint/clinic-api/internal/ctxstore"
	"github.com/medpoint/clinic-api/internal/response"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey = ctxstore.Key("traceId")
	_claimsKey  = ctxstore.Key("claims")

	// Cookie carrying the signed session token.
	_authCookieName = "auth_token"
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{app.config.cors.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(next)
}

// authenticate is the gate in front of every protected route. A missing
// cookie means no credential was presented (403); a cookie that fails
// verification means an invalid credential (401). The two must stay
// distinct. On success the decoded claims ride the request context.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(_authCookieName)
		if err != nil {
			if errors.Is(err, http.ErrNoCookie) {
				app.errorMessage(w, r, http.StatusForbidden, "no credential supplied", nil)
				return
			}

			app.serverError(w, r, err)
			return
		}

		claims, err := auth.VerifyToken(cookie.Value, app.config.jwt.secret)
		if err != nil {
			app.errorMessage(w, r, http.StatusUnauthorized, "invalid credential", nil)
			return
		}

		ctx := ctxstore.With(r.Context(), _claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerFromRequest returns the verified claims attached by authenticate.
// Reaching a protected handler without them is a programming error.
func callerFromRequest(r *http.Request) *auth.Claims {
	return ctxstore.MustFrom[*auth.Claims](r.Context(), _claimsKey)
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
