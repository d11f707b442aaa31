package discord

import (
	"github.com/bwmarrin/discordgo"
)

// interactionUserID returns the invoking user, in a guild or in DMs.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// deferEphemeral acknowledges the interaction; the answer follows with
// editDeferred once the ledger call returns.
func deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// editDeferred sends chunks as the deferred answer plus follow-ups.
func editDeferred(s *discordgo.Session, i *discordgo.Interaction, chunks []string) error {
	if len(chunks) == 0 {
		return nil
	}
	first := chunks[0]
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &first}); err != nil {
		return err
	}
	for _, c := range chunks[1:] {
		if _, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
			Content: c,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); err != nil {
			return err
		}
	}
	return nil
}
