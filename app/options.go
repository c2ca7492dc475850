package app

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

type dataOptions = []*discordgo.ApplicationCommandInteractionDataOption

func getSubcommand(ic *discordgo.InteractionCreate) (string, dataOptions) {
	cmd := ic.ApplicationCommandData()
	if len(cmd.Options) > 0 {
		firstOpt := cmd.Options[0]
		if firstOpt.Type == discordgo.ApplicationCommandOptionSubCommand {
			return firstOpt.Name, firstOpt.Options
		}
	}
	return "", nil
}

func findOpt(options dataOptions, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func getDiceOpt(options dataOptions, name string) (int, error) {
	opt := findOpt(options, name)
	if opt == nil {
		return DefaultDice, nil
	}

	value, ok := opt.Value.(float64)
	if !ok {
		return 0, OptionError{Name: name, InvalidValue: opt.Value, ExpectedValue: DiceDesc}
	}
	dice := int(value)
	if dice < MinDice || dice > MaxDice {
		return 0, OptionError{Name: name, InvalidValue: dice, ExpectedValue: DiceDesc}
	}
	return dice, nil
}

// getBaseOpt returns nil when the roll has no base, any integer is accepted since off-ladder levels still format.
func getBaseOpt(options dataOptions, name string) (*int, error) {
	opt := findOpt(options, name)
	if opt == nil {
		return nil, nil
	}

	value, ok := opt.Value.(float64)
	if !ok {
		return nil, OptionError{Name: name, InvalidValue: opt.Value, ExpectedValue: BaseDesc}
	}
	base := int(value)
	return &base, nil
}

func getQuestionOpt(options dataOptions, name string) (string, error) {
	opt := findOpt(options, name)
	if opt == nil {
		return "", OptionError{Name: name, ExpectedValue: QuestionDesc}
	}

	value, ok := opt.Value.(string)
	if !ok {
		return "", OptionError{Name: name, InvalidValue: opt.Value, ExpectedValue: QuestionDesc}
	}
	question := strings.TrimSpace(value)
	if utf8.RuneCountInString(question) < MinQuestionLength {
		return "", OptionError{Name: name, InvalidValue: value, ExpectedValue: QuestionDesc}
	}
	return question, nil
}

func getVotingTypeOpt(options dataOptions, name string) (VotingType, error) {
	opt := findOpt(options, name)
	if opt == nil {
		return "", OptionError{Name: name, ExpectedValue: VotingTypeDesc}
	}

	value, ok := opt.Value.(string)
	if !ok {
		return "", OptionError{Name: name, InvalidValue: opt.Value, ExpectedValue: VotingTypeDesc}
	}
	vt := VotingType(value)
	if !vt.IsValid() {
		return "", OptionError{Name: name, InvalidValue: value, ExpectedValue: VotingTypeDesc}
	}
	return vt, nil
}

func getOptionCountOpt(options dataOptions, name string) (int, error) {
	opt := findOpt(options, name)
	if opt == nil {
		return 0, OptionError{Name: name, ExpectedValue: OptionCountDesc}
	}

	value, ok := opt.Value.(float64)
	if !ok {
		return 0, OptionError{Name: name, InvalidValue: opt.Value, ExpectedValue: OptionCountDesc}
	}
	count := int(value)
	if count < MinBallotOptions || count > MaxBallotOptions {
		return 0, OptionError{Name: name, InvalidValue: count, ExpectedValue: OptionCountDesc}
	}
	return count, nil
}

func formatOptions(options dataOptions) string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, opt := range options {
		sb.WriteString(opt.Name)
		if i != len(options)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune(']')
	return sb.String()
}
