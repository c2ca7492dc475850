package fate

import (
	"math/rand/v2"
)

type Outcome int

const (
	Neutral Outcome = iota
	Plus
	Minus
)

// Source is anything that can produce uniformly distributed 32-bit values, *rand.Rand satisfies it.
type Source interface {
	Uint32() uint32
}

type Result struct {
	Dice  []Outcome
	Total int
}

// NewSource creates a generator seeded from the runtime entropy source, one should be made per roll.
func NewSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// drawDie maps a 4-bucket draw to a face, bucket 0 is rejected and drawn again so each face has a third chance.
func drawDie(src Source) Outcome {
	for {
		switch src.Uint32() % 4 {
		case 1:
			return Plus
		case 2:
			return Minus
		case 3:
			return Neutral
		}
	}
}

func Roll(src Source, n int) Result {
	var result Result
	if n <= 0 {
		return result
	}

	result.Dice = make([]Outcome, 0, n)
	for i := 0; i < n; i++ {
		outcome := drawDie(src)
		switch outcome {
		case Plus:
			result.Total++
		case Minus:
			result.Total--
		}
		result.Dice = append(result.Dice, outcome)
	}
	return result
}

func RollFresh(n int) Result {
	return Roll(NewSource(), n)
}

func (r Result) Count(outcome Outcome) int {
	count := 0
	for _, die := range r.Dice {
		if die == outcome {
			count++
		}
	}
	return count
}
