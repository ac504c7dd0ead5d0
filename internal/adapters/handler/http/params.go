package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// pageRequest reads page, size, sortBy and sortDir from the query string.
func pageRequest(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()
	req := domain.PageRequest{
		SortBy:  q.Get("sortBy"),
		SortDir: domain.SortDirection(strings.ToLower(q.Get("sortDir"))),
	}

	var err error
	if req.Page, err = optionalInt(q.Get("page"), "page"); err != nil {
		return req, err
	}
	if req.Size, err = optionalInt(q.Get("size"), "size"); err != nil {
		return req, err
	}
	return req.Normalize(), nil
}

func optionalInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func optionalInt64(raw, name string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &v, nil
}

func optionalBool(raw, name string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}

func requiredDateTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, domain.NewValidationError(name, "is required")
	}
	t, err := parseDateTime(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, err.Error())
	}
	return t, nil
}
