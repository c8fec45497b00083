package impl

import (
	"io"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultPageLimit: 10,
			MaxPageLimit:     100,
		},
	}
}

func newTestValidator() *validation.Validator {
	return validation.New()
}

// eventOfType matches a published DomainEvent by type.
func eventOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.DomainEvent) bool {
		return event.Type == eventType
	})
}

func ptr[T any](v T) *T {
	return &v
}

// ruleFor returns the rule of the first violation on field, or "" when the field passed.
func ruleFor(violations validation.Violations, field string) string {
	for _, v := range violations {
		if v.Field == field {
			return v.Rule
		}
	}

	return ""
}
