package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medpoint/clinic-api/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Clinic API"
	docs.SwaggerInfo.Description = "Web API - Clinic Management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/status", app.handleStatus)

	mux.Post("/api/user/register", app.handleRegister)
	mux.Post("/api/user/login", app.handleLogin)
	mux.Get("/api/user/logout", app.handleLogout)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.authenticate)

		mux.Get("/api/user/check-token", app.handleCheckToken)

		mux.Get("/api/patients", app.handlePatients)
		mux.Post("/api/patients/new-patient", app.handleNewPatient)
		mux.Get("/api/patients/{patientId}", app.handleGetPatient)
		mux.Put("/api/patients/{patientId}", app.handleUpdatePatient)
		mux.Delete("/api/patients/{patientId}", app.handleDeletePatient)
		mux.Post("/api/patients/{patientId}/visits", app.handleNewVisit)

		mux.Get("/api/visits", app.handleVisits)
		mux.Get("/api/visits/{visitId}", app.handleGetVisit)
		mux.Put("/api/visits/{visitId}", app.handleUpdateVisit)
		mux.Delete("/api/visits/{visitId}", app.handleDeleteVisit)

		mux.Get("/api/dashboards", app.handleDashboard)
	})

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
