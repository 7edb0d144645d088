package handanalyzer

import (
	"sort"

	"holdem-tournament/pkg/deck"
)

// HandAnalyzer can analyze a hand
// It finds the best five-card hand out of any number of cards
type HandAnalyzer struct {
	size          int
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int

	value Value
}

// New will return a new HandAnalyzer instance for the best five-card hand
func New(cards []deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		size:  5,
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Evaluate returns the value of the best hand made from hole and community cards
func Evaluate(hole, community []deck.Card) Value {
	cards := make([]deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	return New(cards).GetValue()
}

// analyzeHand will loop through the cards and find the various combinations
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suitRanks := make(map[deck.Suit][]int)
	rankCounts := make(map[int]int)
	distinct := make([]int, 0, len(h.cards))

	for _, card := range h.cards {
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
		if rankCounts[card.Rank] == 0 {
			distinct = append(distinct, card.Rank)
		}
		rankCounts[card.Rank]++
	}

	// distinct is already in descending order because the cards are sorted
	for _, rank := range distinct {
		switch n := rankCounts[rank]; {
		case n >= 4:
			h.quads = append(h.quads, rank)
		case n == 3:
			h.trips = append(h.trips, rank)
		case n == 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	h.straight = findStraight(distinct, h.size)

	for _, suit := range deck.Suits {
		ranks := suitRanks[suit]
		if len(ranks) < h.size {
			continue
		}

		if sf := findStraight(ranks, h.size); sf > h.straightFlush {
			h.straightFlush = sf
		}

		flush := ranks[0:h.size]
		if h.flush == nil || compareRanks(flush, h.flush) > 0 {
			h.flush = flush
		}
	}
}

// findStraight returns the high card of the best straight in the ranks, or 0
// ranks must be sorted in descending order. An ace also plays low
func findStraight(ranks []int, size int) int {
	present := make(map[int]bool, len(ranks)+1)
	for _, rank := range ranks {
		present[rank] = true
		if rank == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for high := deck.Ace; high >= deck.LowAce+size-1; high-- {
		streak := 0
		for rank := high; rank > high-size && present[rank]; rank-- {
			streak++
		}

		if streak == size {
			return high
		}
	}

	return 0
}

func compareRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	return 0
}

// GetValue returns the comparable value of the best hand
func (h *HandAnalyzer) GetValue() Value {
	return h.value
}

// bestStraightFlush returns the best straight flush, if possible
func (h *HandAnalyzer) bestStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// bestFourOfAKind returns the best four of a kind, if possible
func (h *HandAnalyzer) bestFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// bestFullHouse returns the best full house, if possible
func (h *HandAnalyzer) bestFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.bestPair()
	if !ok {
		if len(h.trips) == 1 {
			// could not find a pair from a second set of trips
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		// two sets of trips and a separate pair, the better pair comes from the second trips
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// bestFlush returns the best possible flush, if possible
func (h *HandAnalyzer) bestFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// bestStraight returns the best straight, if possible
func (h *HandAnalyzer) bestStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// bestThreeOfAKind returns the best three of a kind, if possible
func (h *HandAnalyzer) bestThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// bestTwoPair returns the best two pairs, if possible
func (h *HandAnalyzer) bestTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// bestPair returns the best pair, if possible
func (h *HandAnalyzer) bestPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// highCards returns the highest ranks, up to five
func (h *HandAnalyzer) highCards() []int {
	return h.kickers(h.size)
}

// kickers returns the n highest ranks that are not part of the excluded ranks
func (h *HandAnalyzer) kickers(n int, exclude ...int) []int {
	ranks := make([]int, 0, n)

CardLoop:
	for _, card := range h.cards {
		if len(ranks) == n {
			break
		}

		for _, e := range exclude {
			if card.Rank == e {
				continue CardLoop
			}
		}

		ranks = append(ranks, card.Rank)
	}

	return ranks
}

func straightRanks(high, size int) []int {
	ranks := make([]int, size)
	for i := range ranks {
		ranks[i] = high - i
	}

	return ranks
}

// calculateHand will determine the best hand and its tiebreak key
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if sf, ok := h.bestStraightFlush(); ok {
		h.value = Value{Hand: StraightFlush, Tiebreak: straightRanks(sf, h.size)}
	} else if quads, ok := h.bestFourOfAKind(); ok {
		h.value = Value{Hand: FourOfAKind, Tiebreak: append([]int{quads}, h.kickers(1, quads)...)}
	} else if fh, ok := h.bestFullHouse(); ok {
		h.value = Value{Hand: FullHouse, Tiebreak: fh}
	} else if flush, ok := h.bestFlush(); ok {
		tb := make([]int, len(flush))
		copy(tb, flush)
		h.value = Value{Hand: Flush, Tiebreak: tb}
	} else if s, ok := h.bestStraight(); ok {
		h.value = Value{Hand: Straight, Tiebreak: straightRanks(s, h.size)}
	} else if trips, ok := h.bestThreeOfAKind(); ok {
		h.value = Value{Hand: ThreeOfAKind, Tiebreak: append([]int{trips}, h.kickers(2, trips)...)}
	} else if tp, ok := h.bestTwoPair(); ok {
		h.value = Value{Hand: TwoPair, Tiebreak: append([]int{tp[0], tp[1]}, h.kickers(1, tp[0], tp[1])...)}
	} else if pair, ok := h.bestPair(); ok {
		h.value = Value{Hand: OnePair, Tiebreak: append([]int{pair}, h.kickers(3, pair)...)}
	} else {
		h.value = Value{Hand: HighCard, Tiebreak: h.highCards()}
	}
}

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
