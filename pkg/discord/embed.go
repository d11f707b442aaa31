package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"slotbot/internal/domain/entities"
)

const (
	embedColor = 0x5865F2
	fullColor  = 0xED4245

	// MessageLimit is Discord's maximum message content length.
	MessageLimit = 2000
)

// BuildEntryEmbed builds the registration entry message with one field per slot.
func BuildEntryEmbed(prompt string, counts []entities.SlotCount) *discordgo.MessageEmbed {
	color := embedColor
	fields := make([]*discordgo.MessageEmbedField, 0, len(counts))
	allFull := len(counts) > 0
	for _, c := range counts {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   c.Slot,
			Value:  fmt.Sprintf("%d/%d", c.Registered, c.Capacity),
			Inline: true,
		})
		allFull = allFull && c.Full()
	}
	if allFull {
		color = fullColor
	}
	return &discordgo.MessageEmbed{
		Description: prompt,
		Color:       color,
		Fields:      fields,
	}
}

// FormatListing renders the participant list, one line per entry, using line
// to format each entry.
func FormatListing(title string, entries []entities.ActiveEntry, line func(entities.ActiveEntry) string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(line(e))
		b.WriteString("\n")
	}
	return b.String()
}

// SplitMessage cuts content on line boundaries into chunks of at most limit
// bytes. A single line longer than limit is cut on a rune boundary.
func SplitMessage(content string, limit int) []string {
	if len(content) <= limit {
		return []string{content}
	}
	var (
		chunks []string
		b      strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
	}
	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > limit {
			flush()
			cut := runeCut(line, limit)
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if b.Len()+len(line) > limit {
			flush()
		}
		b.WriteString(line)
	}
	flush()
	return chunks
}

// runeCut is the largest index <= limit that starts a rune in s.
func runeCut(s string, limit int) int {
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return cut
}
