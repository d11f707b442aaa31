package discord

import "github.com/bwmarrin/discordgo"

// Custom IDs of the registration modal inputs.
const (
	InputNickname = "nickname"
	InputPower    = "power"
)

// ExtractTextInputs returns the submitted text inputs keyed by custom ID.
func ExtractTextInputs(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

// ExtractRegistration reads the nickname and power fields of the registration modal.
func ExtractRegistration(data discordgo.ModalSubmitInteractionData) (nickname, power string) {
	values := ExtractTextInputs(data)
	return values[InputNickname], values[InputPower]
}
