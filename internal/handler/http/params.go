package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	dateLayout      = time.DateOnly
	maxListPageSize = store.MaxPageSize
)

func decodeJSON(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return id, nil
}

// uintQuery parses a non-negative query value that fits into an int64 and
// clamps it to ceiling.
func uintQuery(r *http.Request, name string, ceiling uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return min(value, ceiling), nil
}

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return value, nil
}

func boolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return value, nil
}

// dateQuery parses a YYYY-MM-DD query value. A missing value yields the
// zero time.
func dateQuery(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidParameter, name, raw)
	}
	return value, nil
}

func dateRangeQuery(r *http.Request) (from, to time.Time, err error) {
	if from, err = dateQuery(r, "from"); err != nil {
		return
	}
	to, err = dateQuery(r, "to")
	return
}

func listFilterQuery(r *http.Request) (models.ListFilter, error) {
	limit, err := uintQuery(r, "limit", maxListPageSize)
	if err != nil {
		return models.ListFilter{}, err
	}
	offset, err := uintQuery(r, "offset", math.MaxInt64)
	if err != nil {
		return models.ListFilter{}, err
	}

	return models.ListFilter{
		Limit:  limit,
		Offset: offset,
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}, nil
}

// splitList splits a comma separated query value and drops empty items.
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
