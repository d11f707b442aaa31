package discord

import (
	"context"
	"errors"

	"slotbot/internal/domain"
	"slotbot/internal/domain/entities"
	pkgdiscord "slotbot/pkg/discord"
)

// The reply builders run a use case and render its outcome; they hold no
// Discord session so they can be exercised directly.

func (h *Handler) registerReply(ctx context.Context, locale, userID, nickname, power, slot string) string {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	conf, err := h.registration.Register(ctx, userID, nickname, power, slot)
	if err != nil {
		return h.errorReply(locale, err, map[string]any{"Slot": slot})
	}
	return h.translate(locale, "register.success", map[string]any{"Name": conf.DisplayName, "Slot": conf.Slot})
}

func (h *Handler) cancelReply(ctx context.Context, locale, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	rec, err := h.registration.Cancel(ctx, userID)
	if err != nil {
		return h.errorReply(locale, err, nil)
	}
	return h.translate(locale, "cancel.success", map[string]any{"Slot": rec.Slot})
}

// listReply renders the listing, split to fit Discord's message limit.
func (h *Handler) listReply(ctx context.Context, locale string) []string {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	entries, err := h.query.ListActive(ctx)
	if err != nil {
		return []string{h.errorReply(locale, err, nil)}
	}
	if len(entries) == 0 {
		return []string{h.translate(locale, "list.empty", nil)}
	}
	content := pkgdiscord.FormatListing(h.translate(locale, "list.title", nil), entries, func(e entities.ActiveEntry) string {
		return h.translate(locale, "list.line", map[string]any{"Name": e.DisplayName, "Power": e.Power, "Slot": e.Slot})
	})
	return pkgdiscord.SplitMessage(content, pkgdiscord.MessageLimit)
}

// slotSummary returns the occupancy per slot, or nil when the store is unreachable.
func (h *Handler) slotSummary(ctx context.Context) []entities.SlotCount {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	counts, err := h.query.SlotSummary(ctx)
	if err != nil {
		h.logger.Error(err, "❌ Lecture des compteurs impossible")
		return nil
	}
	return counts
}

func (h *Handler) errorReply(locale string, err error, data map[string]any) string {
	if errors.Is(err, domain.ErrStoreRead) || errors.Is(err, domain.ErrStoreWrite) || domain.Code(err) == "" {
		h.logger.Error(err, "❌ Erreur du registre")
	}
	return h.translate(locale, pkgdiscord.ErrorKey(err), data)
}
