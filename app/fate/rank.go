package fate

import "strconv"

const MinRank = -2
const MaxRank = 8

var ranks = [...]string{
	"Terrible",
	"Poor",
	"Mediocre",
	"Average",
	"Fair",
	"Good",
	"Great",
	"Superb",
	"Fantastic",
	"Epic",
	"Legendary",
}

// Rank names a skill level on the fate ladder, levels off the ladder are written as plain numbers.
func Rank(level int) string {
	if level < MinRank || level > MaxRank {
		return strconv.Itoa(level)
	}
	return ranks[level-MinRank]
}

type RankChoice struct {
	Label string
	Level int
}

func RankChoices() []RankChoice {
	choices := make([]RankChoice, 0, len(ranks))
	for level := MinRank; level <= MaxRank; level++ {
		choices = append(choices, RankChoice{Label: Rank(level), Level: level})
	}
	return choices
}
