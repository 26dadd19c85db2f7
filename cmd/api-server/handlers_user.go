package main

import (
	"errors"
	"net/http"

	"github.com/medpoint/clinic-api/internal/auth"
	"github.com/medpoint/clinic-api/internal/ctxstore"
	"github.com/medpoint/clinic-api/internal/database"
	"github.com/medpoint/clinic-api/internal/model"
	"github.com/medpoint/clinic-api/internal/request"
	"github.com/medpoint/clinic-api/internal/response"
	"github.com/medpoint/clinic-api/internal/validator"
)

type requestRegister struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type requestLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type responseUser struct {
	User model.User `json:"user"`
}

// Handle Register
// @Summary Register
// @Description Register a new clinician account
// @Tags users
// @Accept json
// @Produce json
// @Param input body main.requestRegister true "Account details"
// @Success 201 {object} main.responseUser
// @Failure 400 {object} any "Bad request input"
// @Failure 409 {object} any "Email already registered"
// @Failure 500 {object} any "Internal server error"
// @Router /user/register [post]
func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestRegister
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestRegister(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Login
// @Summary Login
// @Description Verify credentials and issue a session cookie
// @Tags users
// @Accept json
// @Produce json
// @Param input body main.requestLogin true "Credentials"
// @Success 200 {object} main.responseUser
// @Failure 400 {object} any "Bad request input"
// @Failure 403 {object} any "Wrong password"
// @Failure 404 {object} any "Unknown email"
// @Failure 500 {object} any "Internal server error"
// @Router /user/login [post]
func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestLogin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestLogin(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !auth.ComparePassword(input.Password, user.PasswordHash) {
		app.errorMessage(w, r, http.StatusForbidden, "wrong email or password", nil)
		return
	}

	token, err := auth.IssueToken(user, app.config.jwt.secret)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     _authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	if err := response.JSON(w, http.StatusOK, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Logout
// @Summary Logout
// @Description Clear the session cookie
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Router /user/logout [get]
func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     _authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "logged out"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Check Token
// @Summary Check Token
// @Description Validate the current session and return its claims
// @Tags users
// @Produce json
// @Success 200 {object} auth.Claims
// @Failure 401 {object} any "Invalid credential"
// @Failure 403 {object} any "No credential supplied"
// @Router /user/check-token [get]
func (app *application) handleCheckToken(w http.ResponseWriter, r *http.Request) {
	claims := callerFromRequest(r)

	if err := response.JSON(w, http.StatusOK, claims); err != nil {
		app.serverError(w, r, err)
	}
}
