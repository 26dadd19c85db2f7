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

type requestPatient struct {
	Name        string `json:"name"`
	IDNumber    string `json:"idNumber"`
	Gender      string `json:"gender"`
	Contact     string `json:"contact"`
	DateOfBirth string `json:"dateOfBirth"`
}

func (req requestPatient) parseDateOfBirth() (time.Time, error) {
	return time.Parse(_dateLayout, req.DateOfBirth)
}

type responsePatient struct {
	Patient model.Patient `json:"patient"`
}

type responsePatientDetail struct {
	Patient model.Patient `json:"patient"`
	Visits  []model.Visit `json:"visits"`
}

type responsePatientList struct {
	Patients []model.Patient `json:"patients"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

// Handle List Patients
// @Summary List Patients
// @Description Paginated list of the caller's patients, newest first
// @Tags patients
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Matches name or id number"
// @Success 200 {object} main.responsePatientList
// @Failure 400 {object} validator.Validator "Invalid page window"
// @Failure 500 {object} any "Internal server error"
// @Router /patients [get]
func (app *application) handlePatients(w http.ResponseWriter, r *http.Request) {
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

	filter := database.FindPatientFilter{
		Search: optionalStringQueryParams(r, "search"),
	}

	dao := database.NewPatientDAO(logger, app.db)

	patients, err := dao.Find(ctx, caller.UUID, filter, database.FindOptions{
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

	resp := responsePatientList{
		Patients: patients,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}

	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle New Patient
// @Summary New Patient
// @Description Register a patient owned by the caller
// @Tags patients
// @Accept json
// @Produce json
// @Param input body main.requestPatient true "Patient details"
// @Success 201 {object} main.responsePatient
// @Failure 400 {object} any "Bad request input"
// @Failure 409 {object} any "Duplicate id number"
// @Failure 500 {object} any "Internal server error"
// @Router /patients/new-patient [post]
func (app *application) handleNewPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestPatient
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestPatient(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dob, err := input.parseDateOfBirth()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewPatientDAO(logger, app.db)

	patientID, err := dao.Insert(ctx, caller.UUID, database.InsertPatientDTO{
		Name:        input.Name,
		IDNumber:    input.IDNumber,
		Gender:      input.Gender,
		Contact:     input.Contact,
		DateOfBirth: dob,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	patient, err := dao.Get(ctx, caller.UUID, patientID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responsePatient{Patient: patient}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Patient
// @Summary Get Patient
// @Description Patient details with full visit history, newest visit first
// @Tags patients
// @Produce json
// @Param patientId path string true "Patient UUID"
// @Success 200 {object} main.responsePatientDetail
// @Failure 404 {object} any "Patient not found"
// @Failure 500 {object} any "Internal server error"
// @Router /patients/{patientId} [get]
func (app *application) handleGetPatient(w http.ResponseWriter, r *http.Request) {
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

	dao := database.NewPatientDAO(logger, app.db)

	patient, err := dao.Get(ctx, caller.UUID, patientID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	visits, err := database.NewVisitDAO(logger, app.db).FindByPatient(ctx, caller.UUID, patientID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := responsePatientDetail{
		Patient: patient,
		Visits:  visits,
	}

	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Update Patient
// @Summary Update Patient
// @Description Update an owned patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patientId path string true "Patient UUID"
// @Param input body main.requestPatient true "Patient details"
// @Success 200 {object} main.responsePatient
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Patient not found"
// @Failure 500 {object} any "Internal server error"
// @Router /patients/{patientId} [put]
func (app *application) handleUpdatePatient(w http.ResponseWriter, r *http.Request) {
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

	var input requestPatient
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestPatient(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dob, err := input.parseDateOfBirth()
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewPatientDAO(logger, app.db)

	err = dao.Update(ctx, caller.UUID, patientID, database.UpdatePatientDTO{
		Name:        input.Name,
		IDNumber:    input.IDNumber,
		Gender:      input.Gender,
		Contact:     input.Contact,
		DateOfBirth: dob,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, model.ErrExists):
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	patient, err := dao.Get(ctx, caller.UUID, patientID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responsePatient{Patient: patient}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Patient
// @Summary Delete Patient
// @Description Delete an owned patient and its visits
// @Tags patients
// @Produce json
// @Param patientId path string true "Patient UUID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} any "Patient not found"
// @Failure 500 {object} any "Internal server error"
// @Router /patients/{patientId} [delete]
func (app *application) handleDeletePatient(w http.ResponseWriter, r *http.Request) {
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

	dao := database.NewPatientDAO(logger, app.db)

	if err := dao.Delete(ctx, caller.UUID, patientID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "patient deleted"}); err != nil {
		app.serverError(w, r, err)
	}
}
