package app

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func intOpt(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: value}
}

func strOpt(name string, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func TestGetDiceOpt(t *testing.T) {
	tests := []struct {
		options dataOptions
		expDice int
		expErr  error
	}{
		{options: nil, expDice: DefaultDice},
		{options: dataOptions{intOpt("dice", 0)}, expDice: 0},
		{options: dataOptions{intOpt("dice", 6)}, expDice: 6},
		{options: dataOptions{intOpt("base", 2), intOpt("dice", 3)}, expDice: 3},
		{options: dataOptions{intOpt("dice", 7)}, expErr: OptionError{Name: "dice", InvalidValue: 7, ExpectedValue: DiceDesc}},
		{options: dataOptions{intOpt("dice", -1)}, expErr: OptionError{Name: "dice", InvalidValue: -1, ExpectedValue: DiceDesc}},
		{options: dataOptions{strOpt("dice", "four")}, expErr: OptionError{Name: "dice", InvalidValue: "four", ExpectedValue: DiceDesc}},
	}

	for _, test := range tests {
		dice, err := getDiceOpt(test.options, "dice")
		assert.Equal(t, test.expErr, err)
		assert.Equal(t, test.expDice, dice)
	}
}

func TestGetBaseOpt(t *testing.T) {
	base, err := getBaseOpt(nil, "base")
	assert.NoError(t, err)
	assert.Nil(t, base)

	base, err = getBaseOpt(dataOptions{intOpt("base", -2)}, "base")
	assert.NoError(t, err)
	if assert.NotNil(t, base) {
		assert.Equal(t, -2, *base)
	}

	_, err = getBaseOpt(dataOptions{strOpt("base", "Fair")}, "base")
	assert.Equal(t, OptionError{Name: "base", InvalidValue: "Fair", ExpectedValue: BaseDesc}, err)
}

func TestGetQuestionOpt(t *testing.T) {
	question, err := getQuestionOpt(dataOptions{strOpt("question", "  Pizza or tacos?  ")}, "question")
	assert.NoError(t, err)
	assert.Equal(t, "Pizza or tacos?", question)

	_, err = getQuestionOpt(dataOptions{strOpt("question", " ok ")}, "question")
	assert.Equal(t, OptionError{Name: "question", InvalidValue: " ok ", ExpectedValue: QuestionDesc}, err)

	_, err = getQuestionOpt(nil, "question")
	assert.Equal(t, OptionError{Name: "question", ExpectedValue: QuestionDesc}, err)
}

func TestGetVotingTypeOpt(t *testing.T) {
	for _, vt := range VotingTypes {
		value, err := getVotingTypeOpt(dataOptions{strOpt("type", string(vt))}, "type")
		assert.NoError(t, err)
		assert.Equal(t, vt, value)
	}

	_, err := getVotingTypeOpt(dataOptions{strOpt("type", "xx")}, "type")
	assert.Equal(t, OptionError{Name: "type", InvalidValue: "xx", ExpectedValue: VotingTypeDesc}, err)
}

func TestGetOptionCountOpt(t *testing.T) {
	count, err := getOptionCountOpt(dataOptions{intOpt("options", 3)}, "options")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = getOptionCountOpt(dataOptions{intOpt("options", 1)}, "options")
	assert.Equal(t, OptionError{Name: "options", InvalidValue: 1, ExpectedValue: OptionCountDesc}, err)

	_, err = getOptionCountOpt(dataOptions{intOpt("options", 6)}, "options")
	assert.Equal(t, OptionError{Name: "options", InvalidValue: 6, ExpectedValue: OptionCountDesc}, err)
}

func TestOptionError(t *testing.T) {
	missing := OptionError{Name: "question", ExpectedValue: "a question"}
	invalid := OptionError{Name: "dice", InvalidValue: 9}

	assert.Equal(t, "Expected an option 'question' to be provided, expected value to be a question", missing.Error())
	assert.Equal(t, "Option 'dice' received invalid value '9'", invalid.Error())
}

func TestFormatOptions(t *testing.T) {
	assert.Equal(t, "[]", formatOptions(nil))
	assert.Equal(t, "[base, dice]", formatOptions(dataOptions{intOpt("base", 1), intOpt("dice", 2)}))
}
