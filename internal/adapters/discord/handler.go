package discord

import (
	"time"

	"github.com/go-logr/logr"

	"slotbot/internal/ports/input"
	"slotbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	registration input.RegistrationUseCase
	query        input.QueryUseCase
	translator   output.Translator
	slots        []string
	prefix       string
	// timeout bounds the use-case call of one command.
	timeout time.Duration
	// summaryTimeout bounds the occupancy read done before an immediate reply.
	summaryTimeout time.Duration
	logger         logr.Logger
}

const defaultSummaryTimeout = 2 * time.Second

// NewHandler creates a Handler.
func NewHandler(
	registration input.RegistrationUseCase,
	query input.QueryUseCase,
	translator output.Translator,
	slots []string,
	prefix string,
	timeout time.Duration,
	logger logr.Logger,
) *Handler {
	return &Handler{
		registration:   registration,
		query:          query,
		translator:     translator,
		slots:          slots,
		prefix:         prefix,
		timeout:        timeout,
		summaryTimeout: defaultSummaryTimeout,
		logger:         logger.WithName("discord"),
	}
}

func (h *Handler) translate(locale, key string, data map[string]any) string {
	return h.translator.T(locale, key, data)
}
