package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	commandCancel = "cancel"
	commandList   = "list"
)

// applicationCommands are the slash commands, described in the default
// locale with a French localization.
func (h *Handler) applicationCommands() []*discordgo.ApplicationCommand {
	describe := func(key string) (string, *map[discordgo.Locale]string) {
		return h.translate("", key, nil), &map[discordgo.Locale]string{
			discordgo.French: h.translate("fr", key, nil),
		}
	}
	cancelDesc, cancelLoc := describe("command.cancel")
	listDesc, listLoc := describe("command.list")
	return []*discordgo.ApplicationCommand{
		{Name: commandCancel, Description: cancelDesc, DescriptionLocalizations: cancelLoc},
		{Name: commandList, Description: listDesc, DescriptionLocalizations: listLoc},
	}
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := string(i.Locale)
	ctx := context.Background()

	var run func() []string
	switch i.ApplicationCommandData().Name {
	case commandCancel:
		userID := interactionUserID(i)
		run = func() []string { return []string{h.cancelReply(ctx, locale, userID)} }
	case commandList:
		run = func() []string { return h.listReply(ctx, locale) }
	default:
		return
	}

	if err := deferEphemeral(s, i.Interaction); err != nil {
		h.logger.Error(err, "❌ Accusé de réception impossible")
		return
	}
	if err := editDeferred(s, i.Interaction, run()); err != nil {
		h.logger.Error(err, "❌ Réponse à la commande impossible")
	}
}

// parsePrefixCommand returns the command name of content ("!list" -> "list").
func parsePrefixCommand(prefix, content string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(content), prefix)
	if !ok {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

// HandleMessage serves the prefix commands (!cancel, !list) in channels.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	name, ok := parsePrefixCommand(h.prefix, m.Content)
	if !ok {
		return
	}
	ctx := context.Background()

	var chunks []string
	switch name {
	case commandCancel:
		chunks = []string{h.cancelReply(ctx, "", m.Author.ID)}
	case commandList:
		chunks = h.listReply(ctx, "")
	default:
		return
	}
	for _, c := range chunks {
		if _, err := s.ChannelMessageSend(m.ChannelID, c); err != nil {
			h.logger.Error(err, "❌ Envoi de la réponse impossible", "channel", m.ChannelID)
			return
		}
	}
}
