package discord

import "slotbot/internal/domain"

// ErrorKey maps an error to its i18n message key ("errors.<code>"), or
// "errors.generic" when err carries no domain code.
func ErrorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return "errors.generic"
}
