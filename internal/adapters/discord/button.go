package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "slotbot/pkg/discord"
)

const (
	customIDRegister   = "btn_register"
	customIDSelectSlot = "select_slot"
)

// entryMessage is the public message carrying the register button.
func (h *Handler) entryMessage(ctx context.Context, locale string) *discordgo.MessageSend {
	embed := pkgdiscord.BuildEntryEmbed(h.translate(locale, "entry.prompt", nil), h.slotSummary(ctx))
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: h.translate(locale, "entry.button", nil), Style: discordgo.PrimaryButton, CustomID: customIDRegister},
			}},
		},
	}
}

// PostEntryMessages posts the entry message into every text channel named
// channelName of the guilds the bot is in.
func (h *Handler) PostEntryMessages(s *discordgo.Session, guilds []*discordgo.Guild, channelName string) {
	ctx := context.Background()
	for _, g := range guilds {
		channels, err := s.GuildChannels(g.ID)
		if err != nil {
			h.logger.Error(err, "❌ Lecture des salons impossible", "guild", g.ID)
			continue
		}
		for _, ch := range channels {
			if ch.Type != discordgo.ChannelTypeGuildText || ch.Name != channelName {
				continue
			}
			msg := h.entryMessage(ctx, "")
			if _, err := s.ChannelMessageSendComplex(ch.ID, msg); err != nil {
				h.logger.Error(err, "❌ Envoi du message d'inscription impossible", "channel", ch.ID)
				continue
			}
			h.logger.Info("🛡 Message d'inscription publié", "guild", g.ID, "channel", ch.ID)
		}
	}
}

// slotOptions lists the configured slots for the selector. Occupancy is
// shown only when it can be read within summaryTimeout, the interaction
// must be answered within Discord's three seconds.
func (h *Handler) slotOptions(locale string) []discordgo.SelectMenuOption {
	ctx, cancel := context.WithTimeout(context.Background(), h.summaryTimeout)
	defer cancel()
	counts := h.slotSummary(ctx)

	options := make([]discordgo.SelectMenuOption, 0, len(h.slots))
	for idx, slot := range h.slots {
		opt := discordgo.SelectMenuOption{Label: slot, Value: fmt.Sprintf("%d", idx)}
		if idx < len(counts) && counts[idx].Slot == slot {
			opt.Description = h.translate(locale, "register.select_option", map[string]any{
				"Registered": counts[idx].Registered,
				"Capacity":   counts[idx].Capacity,
			})
		}
		options = append(options, opt)
	}
	return options
}

// HandleRegisterButton answers the register button with the slot selector.
func (h *Handler) HandleRegisterButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.translate(locale, "register.select_prompt", nil),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    customIDSelectSlot,
						Placeholder: h.translate(locale, "register.select_placeholder", nil),
						Options:     h.slotOptions(locale),
					},
				}},
			},
		},
	})
	if err != nil {
		h.logger.Error(err, "❌ Envoi du choix de créneau impossible")
	}
}
