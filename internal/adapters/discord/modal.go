package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "slotbot/pkg/discord"
)

// handleRegisterModalSubmit registers the user for the slot encoded in the modal ID.
func (h *Handler) handleRegisterModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	locale := string(i.Locale)
	slot, ok := h.slotFromValue(strings.TrimPrefix(data.CustomID, registerModalPrefix))
	if !ok {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.unknown_slot", nil))
		return
	}
	if err := deferEphemeral(s, i.Interaction); err != nil {
		h.logger.Error(err, "❌ Accusé de réception impossible")
		return
	}

	nickname, power := pkgdiscord.ExtractRegistration(data)
	reply := h.registerReply(context.Background(), locale, interactionUserID(i), nickname, power, slot)
	if err := editDeferred(s, i.Interaction, []string{reply}); err != nil {
		h.logger.Error(err, "❌ Réponse à l'inscription impossible")
	}
}
