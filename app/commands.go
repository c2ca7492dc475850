package app

import (
	"fmt"

	"fatecord/app/fate"
	"github.com/bwmarrin/discordgo"
)

const DefaultDice = 4
const MinDice = 0
const MaxDice = 6

const MinQuestionLength = 3
const MinBallotOptions = 2
const MaxBallotOptions = 5

var DiceDesc = fmt.Sprintf("a number of dice between %d and %d", MinDice, MaxDice)
var BaseDesc = fmt.Sprintf("a skill level between %d and %d", fate.MinRank, fate.MaxRank)
var QuestionDesc = fmt.Sprintf("a question at least %d characters long", MinQuestionLength)
var OptionCountDesc = fmt.Sprintf("a number of options between %d and %d", MinBallotOptions, MaxBallotOptions)
var VotingTypeDesc = fmt.Sprintf("one of %v", VotingTypes)

var minDice = float64(MinDice)
var minBallotOptions = float64(MinBallotOptions)
var minQuestionLength = MinQuestionLength

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ballot",
		Description: "Create, manage, and edit ballots",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "new",
				Description: "Create new ballot",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "question",
						Description: "The question the poll should ask",
						MinLength:   &minQuestionLength,
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "type",
						Description: "Kind of ballot",
						Choices:     votingTypeChoices(),
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "options",
						Description: "Number of options",
						MinValue:    &minBallotOptions,
						MaxValue:    MaxBallotOptions,
						Required:    true,
					},
				},
			},
		},
	},
	{
		Name:        "rollfate",
		Description: "Roll fudge dice on a fate skill check",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "base",
				Description: "The fate skill level to offset",
				Choices:     rankChoices(),
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "dice",
				Description: "The number of fudge dice to roll.",
				MinValue:    &minDice,
				MaxValue:    MaxDice,
				Required:    false,
			},
		},
	},
}

func votingTypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, vt := range VotingTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: vt.Name(), Value: string(vt)})
	}
	return choices
}

func rankChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, rank := range fate.RankChoices() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: rank.Label, Value: rank.Level})
	}
	return choices
}
