package fate

import (
	"fmt"
	"strings"
)

var glyphs = map[Outcome]string{
	Plus:    "🔼",
	Minus:   "🔽",
	Neutral: "⏺️",
}

func (o Outcome) Glyph() string {
	return glyphs[o]
}

func (r Result) Glyphs() string {
	var sb strings.Builder
	for i, die := range r.Dice {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(die.Glyph())
	}
	return sb.String()
}

func FormatRoll(r Result) string {
	return fmt.Sprintf("You rolled %d dice and they came up as %s, giving a total of %d.", len(r.Dice), r.Glyphs(), r.Total)
}

func FormatRollWithBase(r Result, base int) string {
	final := base + r.Total
	return fmt.Sprintf(
		"You rolled %d dice on a base of %s (%d) and they came up as %s, giving a total of %s (%d).",
		len(r.Dice),
		Rank(base),
		base,
		r.Glyphs(),
		Rank(final),
		final)
}

// Format renders a roll against an optional base level.
func Format(r Result, base *int) string {
	if base == nil {
		return FormatRoll(r)
	}
	return FormatRollWithBase(r, *base)
}
