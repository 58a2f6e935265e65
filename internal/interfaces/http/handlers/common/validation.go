package common

import (
	"github.com/go-playground/validator/v10"

	assetvo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
	ticketvo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
)

// ValidationTags are the request binding tags shared by every handler package.
func ValidationTags() map[string]validator.Func {
	return map[string]validator.Func{
		"ticket_status": func(fl validator.FieldLevel) bool {
			_, err := ticketvo.NewTicketStatus(fl.Field().String())
			return err == nil
		},
		"usage_status": func(fl validator.FieldLevel) bool {
			_, err := assetvo.NewUsageStatus(fl.Field().String())
			return err == nil
		},
		"health_status": func(fl validator.FieldLevel) bool {
			_, err := assetvo.NewHealthStatus(fl.Field().String())
			return err == nil
		},
	}
}
