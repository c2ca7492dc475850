package fate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	expRanks := map[int]string{
		-2: "Terrible",
		-1: "Poor",
		0:  "Mediocre",
		1:  "Average",
		2:  "Fair",
		3:  "Good",
		4:  "Great",
		5:  "Superb",
		6:  "Fantastic",
		7:  "Epic",
		8:  "Legendary",
	}

	seen := make(map[string]bool)
	for level := MinRank; level <= MaxRank; level++ {
		rank := Rank(level)
		assert.Equal(t, expRanks[level], rank)
		assert.Equal(t, rank, Rank(level))
		assert.NotEmpty(t, rank)
		assert.False(t, seen[rank], "rank %s is not unique", rank)
		seen[rank] = true
	}
}

func TestRank_OffLadder(t *testing.T) {
	for _, level := range []int{-100, -3, 9, 10, 42} {
		assert.Equal(t, strconv.Itoa(level), Rank(level))
	}
}

func TestRankChoices(t *testing.T) {
	choices := RankChoices()

	assert.Len(t, choices, MaxRank-MinRank+1)
	assert.Equal(t, RankChoice{Label: "Terrible", Level: -2}, choices[0])
	assert.Equal(t, RankChoice{Label: "Legendary", Level: 8}, choices[len(choices)-1])
}
