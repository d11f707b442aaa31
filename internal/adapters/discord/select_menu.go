package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "slotbot/pkg/discord"
)

const registerModalPrefix = "register_modal_"

// slotFromValue resolves a select value (the slot index) to the slot.
func (h *Handler) slotFromValue(value string) (string, bool) {
	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 || idx >= len(h.slots) {
		return "", false
	}
	return h.slots[idx], true
}

// HandleSlotSelect opens the nickname/power modal for the chosen slot.
func (h *Handler) HandleSlotSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	if _, ok := h.slotFromValue(data.Values[0]); !ok {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.unknown_slot", nil))
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: registerModalPrefix + data.Values[0],
			Title:    h.translate(locale, "register.modal_title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: pkgdiscord.InputNickname, Label: h.translate(locale, "register.nickname_label", nil), Style: discordgo.TextInputShort, Required: true, MaxLength: 64},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: pkgdiscord.InputPower, Label: h.translate(locale, "register.power_label", nil), Style: discordgo.TextInputShort, Required: true, MaxLength: 32},
				}},
			},
		},
	})
}
