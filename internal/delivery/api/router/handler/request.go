package handler

import (
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayouts are tried in order when parsing a date field.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// PageRequest is the page window accepted by list endpoints.
type PageRequest struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID
	}

	return id, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. A nil value yields nil.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			t = t.UTC()

			return &t, nil
		}
	}

	return nil, validation.Violations{}.Add(field, "date", "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}

// parseUUID parses an optional identifier carried in a request body.
func parseUUID(field string, value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, validation.Violations{}.Add(field, "uuid", "must be a valid UUID")
	}

	return &id, nil
}
