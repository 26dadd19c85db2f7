package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/medpoint/clinic-api/internal/model"
)

const _dateLayout = "2006-01-02"

func patientIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "patientId"))
	return id.String(), err
}

func visitIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "visitId"))
	return id.String(), err
}

// pageWindow reads page and limit with defaults applied when absent.
// A non-numeric value is an error; bounds are validated by the caller.
func pageWindow(r *http.Request) (page, limit int, err error) {
	if page, err = defaultIntQueryParams(r, "page", 1); err != nil {
		return 0, 0, err
	}
	if limit, err = defaultIntQueryParams(r, "limit", 10); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func dateQueryParams(r *http.Request, key string) (*time.Time, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok || val == "" {
		return nil, nil
	}

	t, err := time.Parse(_dateLayout, val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func defaultIntQueryParams(r *http.Request, key string, def int) (int, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", key)
	}
	return i, nil
}

func optionalStringQueryParams(r *http.Request, key string) *string {
	ref := new(string)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	*ref = val
	return ref
}
