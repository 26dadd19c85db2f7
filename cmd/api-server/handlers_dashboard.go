package main

import (
	"net/http"

	"github.com/medpoint/clinic-api/internal/ctxstore"
	"github.com/medpoint/clinic-api/internal/database"
	"github.com/medpoint/clinic-api/internal/response"
)

// Handle Dashboard
// @Summary Dashboard
// @Description Summary statistics scoped to the caller
// @Tags dashboards
// @Produce json
// @Success 200 {object} model.Dashboard
// @Failure 500 {object} any "Internal server error"
// @Router /dashboards [get]
func (app *application) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := callerFromRequest(r)
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewDashboardDAO(logger, app.db)

	dashboard, err := dao.Get(ctx, caller.UUID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, dashboard); err != nil {
		app.serverError(w, r, err)
	}
}
