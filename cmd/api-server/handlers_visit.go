package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/medpoint/clinic-api/internal/ctxstore"
	"github.com/medpoint/clinic-api/internal/database"
	"github.com/medpoint/clinic-api/internal/model"
	"github.com/medpoint/clinic-api/internal/request"
	"github.com/medpoint/clinic-api/internal/response"
	"github.com/medpoint/clinic-api/internal/validator"
)

type requestVisit struct {
	VisitDate   string  `json:"visitDate"`
	Diagnosis   string  `json:"diagnosis"`
	Medications string  `json:"medications"`
	Notes       *string `json:"notes"`
}

func (req requestVisit) parseVisitDate() (time.Time, error) {
	return time.Parse(_dateLayout, req.VisitDate)
}

type responseVisit struct {
	Visit model.VisitWithPatient `json:"visit"`
}

type responseVisitList struct {
	Visits []model.VisitWithPatient `json:"visits"`
	Total  int                      `json:"total"`
	Page   int                      `json:"page"`
	Limit  int                      `json:"limit"`
}

// Handle List Visits
// @Summary List Visits
// @Description Paginated list of the caller's visits, newest first
// @Tags visits
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Matches patient name, id number, diagnosis or medications"
// @Param startDate query string false "Lower bound on visit date (YYYY-MM-DD)"
// @Param endDate query string false "Upper bound on visit date (YYYY-MM-DD)"
// @Success 200 {object} main.responseVisitList
// @Failure 400 {object} validator.Validator "Invalid page window or date"
// @Failure 500 {object} any "Internal server error"
// @Router /visits [get]
func (app *application) handleVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	page, limit, err := pageWindow(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validatePageWindow(&v, page, limit)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	startDate, err := dateQueryParams(r, "startDate")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	endDate, err := dateQueryParams(r, "endDate")
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	filter := database.FindVisitFilter{
		Search:    optionalStringQueryParams(r, "search"),
		StartDate: startDate,
		EndDate:   endDate,
	}

	dao := database.NewVisitDAO(logger, app.db)

	visits, err := dao.Find(ctx, caller.UUID, filter, database.FindOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	total, err := dao.Count(ctx, caller.UUID, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := responseVisitList{
		Visits: visits,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}

	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle New Visit
// @Summary New Visit
// @Description Record a visit under an owned patient
// @Tags visits
// @Accept json
// @Produce json
// @Param patientId path string true "Patient UUID"
// @Param input body main.requestVisit true "Visit details"
// @Success 201 {object} main.responseVisit
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Patient not found"
// @Failure 500 {object} any "Internal server error"
// @Router /patients/{patientId}/visits [post]
func (app *application) handleNewVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	patientID, err := patientIDFromRequest(r)
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestVisit
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestVisit(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	visitDate, err := input.parseVisitDate()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	// The visit inherits the caller as owner, so an owned parent is all
	// that needs confirming.
	exists, err := database.NewPatientDAO(logger, app.db).Exists(ctx, caller.UUID, patientID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !exists {
		app.errorMessage(w, r, http.StatusNotFound, model.NewError("patient", model.ErrNotFound).Error(), nil)
		return
	}

	dao := database.NewVisitDAO(logger, app.db)

	visitID, err := dao.Insert(ctx, caller.UUID, patientID, database.InsertVisitDTO{
		VisitDate:   visitDate,
		Diagnosis:   input.Diagnosis,
		Medications: input.Medications,
		Notes:       input.Notes,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	visit, err := dao.Get(ctx, caller.UUID, visitID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseVisit{Visit: visit}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Visit
// @Summary Get Visit
// @Description Single visit with its patient's display fields
// @Tags visits
// @Produce json
// @Param visitId path string true "Visit UUID"
// @Success 200 {object} main.responseVisit
// @Failure 404 {object} any "Visit not found"
// @Failure 500 {object} any "Internal server error"
// @Router /visits/{visitId} [get]
func (app *application) handleGetVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	visitID, err := visitIDFromRequest(r)
	if err != nil {
		app.notFound(w, r)
		return
	}

	dao := database.NewVisitDAO(logger, app.db)

	visit, err := dao.Get(ctx, caller.UUID, visitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseVisit{Visit: visit}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Update Visit
// @Summary Update Visit
// @Description Update an owned visit
// @Tags visits
// @Accept json
// @Produce json
// @Param visitId path string true "Visit UUID"
// @Param input body main.requestVisit true "Visit details"
// @Success 200 {object} main.responseVisit
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Visit not found"
// @Failure 500 {object} any "Internal server error"
// @Router /visits/{visitId} [put]
func (app *application) handleUpdateVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	visitID, err := visitIDFromRequest(r)
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestVisit
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestVisit(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	visitDate, err := input.parseVisitDate()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewVisitDAO(logger, app.db)

	err = dao.Update(ctx, caller.UUID, visitID, database.UpdateVisitDTO{
		VisitDate:   visitDate,
		Diagnosis:   input.Diagnosis,
		Medications: input.Medications,
		Notes:       input.Notes,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	visit, err := dao.Get(ctx, caller.UUID, visitID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseVisit{Visit: visit}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Visit
// @Summary Delete Visit
// @Description Delete an owned visit
// @Tags visits
// @Produce json
// @Param visitId path string true "Visit UUID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} any "Visit not found"
// @Failure 500 {object} any "Internal server error"
// @Router /visits/{visitId} [delete]
func (app *application) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	visitID, err := visitIDFromRequest(r)
	if err != nil {
		app.notFound(w, r)
		return
	}

	dao := database.NewVisitDAO(logger, app.db)

	if err := dao.Delete(ctx, caller.UUID, visitID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "visit deleted"}); err != nil {
		app.serverError(w, r, err)
	}
}
