package strategy

import (
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/handanalyzer"
)

var categoryStrength = map[handanalyzer.Hand]float64{
	handanalyzer.StraightFlush: 0.95,
	handanalyzer.FourOfAKind:   0.9,
	handanalyzer.FullHouse:     0.8,
	handanalyzer.Flush:         0.7,
	handanalyzer.Straight:      0.65,
	handanalyzer.ThreeOfAKind:  0.6,
	handanalyzer.TwoPair:       0.4,
	handanalyzer.OnePair:       0.2,
}

// EstimateStrength maps the best hand so far to a rough 0-1 strength
// A high card is worth at most 0.1
func EstimateStrength(hole, community deck.Hand) float64 {
	if len(hole) == 0 {
		return 0
	}

	v := handanalyzer.Evaluate(hole, community)
	if s, ok := categoryStrength[v.Hand]; ok {
		return s
	}

	high := 0
	if len(v.Tiebreak) > 0 {
		high = v.Tiebreak[0]
	}

	s := float64(high-2) / 12
	if s > 0.1 {
		s = 0.1
	}

	return s
}
