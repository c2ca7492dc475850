package app

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const BallotEmbed = 0x5865f2

var optionEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

func createStringResponse(msg string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
		},
	}
}

func createEphemeralResponse(msg string) *discordgo.InteractionResponse {
	resp := createStringResponse(msg)
	resp.Data.Flags = discordgo.MessageFlagsEphemeral
	return resp
}

func createEmbedResponse(embed *discordgo.MessageEmbed) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

func createAutocompleteResponse(choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}
}

func optionEmoji(i int) string {
	if i < len(optionEmojis) {
		return optionEmojis[i]
	}
	return fmt.Sprintf("%d.", i+1)
}

func createBallotEmbed(draft *BallotDraft, options []string) *discordgo.MessageEmbed {
	var desc strings.Builder
	for i, option := range options {
		desc.WriteString(optionEmoji(i))
		desc.WriteString(" ")
		desc.WriteString(option)
		desc.WriteString("\n")
	}

	footer := fmt.Sprintf("%s %s", draft.Type.Emoji(), draft.Type.Name())
	if draft.Author != "" {
		footer = fmt.Sprintf("%s ballot by %s", footer, draft.Author)
	}

	return &discordgo.MessageEmbed{
		Title:       draft.Question,
		Description: desc.String(),
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
		Color:       BallotEmbed,
	}
}
