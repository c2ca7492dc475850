package fate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRoll(t *testing.T) {
	result := Result{Dice: []Outcome{Plus, Minus, Neutral}, Total: 0}

	msg := FormatRoll(result)

	assert.Equal(t, "You rolled 3 dice and they came up as 🔼 🔽 ⏺️, giving a total of 0.", msg)
	assert.True(t, strings.HasSuffix(msg, "giving a total of 0."))
}

func TestFormatRollWithBase(t *testing.T) {
	result := Result{Dice: []Outcome{Plus, Neutral, Neutral, Neutral}, Total: 1}

	msg := FormatRollWithBase(result, 2)

	assert.Contains(t, msg, "on a base of Fair (2)")
	assert.Contains(t, msg, "giving a total of Good (3).")
	assert.Equal(t, "You rolled 4 dice on a base of Fair (2) and they came up as 🔼 ⏺️ ⏺️ ⏺️, giving a total of Good (3).", msg)
}

func TestFormatRollWithBase_OffLadder(t *testing.T) {
	result := Result{Dice: []Outcome{Plus, Plus}, Total: 2}

	msg := FormatRollWithBase(result, 8)

	assert.Contains(t, msg, "on a base of Legendary (8)")
	assert.Contains(t, msg, "giving a total of 10 (10).")
}

func TestFormat_NoDice(t *testing.T) {
	assert.Equal(t, "You rolled 0 dice and they came up as , giving a total of 0.", Format(Result{}, nil))

	base := -2
	assert.Equal(t, "You rolled 0 dice on a base of Terrible (-2) and they came up as , giving a total of Terrible (-2).", Format(Result{}, &base))
}
