package holdem

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"holdem-tournament/pkg/poker/handanalyzer"
	"holdem-tournament/pkg/poker/potmanager"
)

// HandResult is the outcome of a completed hand
type HandResult struct {
	HandNumber int             `json:"handNumber"`
	Showdown   bool            `json:"showdown"`
	Pots       potmanager.Pots `json:"pots"`
	Payouts    []Payout        `json:"payouts"`
	Eliminated []int           `json:"eliminated"`
}

// Payout is the amount a player won from a single pot
type Payout struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Pot      int    `json:"pot"`
	Amount   int    `json:"amount"`
	Hand     string `json:"hand,omitempty"`
}

// contributions returns what each player put in this hand, in action order left of the button
func (t *Table) contributions() []potmanager.Contribution {
	order := t.actionOrder()
	contributions := make([]potmanager.Contribution, 0, len(t.players))
	for _, idx := range order {
		p := t.players[idx]
		contributions = append(contributions, potmanager.Contribution{
			ID:     p.ID,
			Amount: p.committed,
			Folded: p.folded,
		})
	}

	// players eliminated during this hand still have chips in the pot
	for _, p := range t.players {
		if p.eliminated && p.committed > 0 {
			contributions = append(contributions, potmanager.Contribution{
				ID:     p.ID,
				Amount: p.committed,
				Folded: true,
			})
		}
	}

	return contributions
}

// awardUncontested gives the whole pot to the last player standing
func (t *Table) awardUncontested() error {
	var winner *Player
	for _, p := range t.players {
		if p.isContending() {
			winner = p
			break
		}
	}

	if winner == nil {
		return fmt.Errorf("%w: no contender left for a pot of %d", ErrChipConservation, t.pot)
	}

	result := &HandResult{
		HandNumber: t.handNumber,
		Pots:       potmanager.Build(t.contributions()),
		Payouts: []Payout{{
			PlayerID: winner.ID,
			Name:     winner.Name,
			Amount:   t.pot,
		}},
	}

	return t.completeHand(result)
}

// showdown evaluates every contender's hand and splits the pots
func (t *Table) showdown() error {
	t.street = StreetShowdown
	t.acting = -1

	values := make(map[int]handanalyzer.Value)
	w := potmanager.NewWinManager()
	for _, p := range t.players {
		if !p.isContending() {
			continue
		}

		v := handanalyzer.Evaluate(p.hand, t.community)
		values[p.ID] = v
		w.AddParticipant(p.ID, v.Strength())
	}

	pots := potmanager.Build(t.contributions())
	awards, err := w.Award(pots)
	if err != nil {
		return fmt.Errorf("could not award pots: %w", err)
	}

	result := &HandResult{
		HandNumber: t.handNumber,
		Showdown:   true,
		Pots:       pots,
		Payouts:    make([]Payout, len(awards)),
	}

	for i, award := range awards {
		p := t.playerByID(award.ID)
		result.Payouts[i] = Payout{
			PlayerID: p.ID,
			Name:     p.Name,
			Pot:      award.Pot,
			Amount:   award.Amount,
			Hand:     values[p.ID].String(),
		}
	}

	return t.completeHand(result)
}

// completeHand pays the winners, eliminates busted players, and rotates the button
func (t *Table) completeHand(result *HandResult) error {
	won := make(map[int]int)
	winners := make([]*Player, 0, 1)
	for _, payout := range result.Payouts {
		p := t.playerByID(payout.PlayerID)
		if _, ok := won[p.ID]; !ok {
			winners = append(winners, p)
		}

		won[p.ID] += payout.Amount
		p.chips += payout.Amount
		t.pot -= payout.Amount
	}

	if t.pot != 0 {
		return fmt.Errorf("%w: %d chips left in the pot after paying out", ErrChipConservation, t.pot)
	}

	descriptions := make([]string, len(winners))
	for i, p := range winners {
		p.handsWon++
		if won[p.ID] > p.biggestPot {
			p.biggestPot = won[p.ID]
		}

		descriptions[i] = fmt.Sprintf("%s wins %d", p.Name, won[p.ID])
		for _, payout := range result.Payouts {
			if payout.PlayerID == p.ID && payout.Hand != "" {
				descriptions[i] += " with " + payout.Hand
				break
			}
		}
	}
	t.lastAction = strings.Join(descriptions, ", ")

	result.Eliminated = make([]int, 0)
	for _, idx := range t.actionOrder() {
		p := t.players[idx]
		if p.chips == 0 {
			t.eliminate(p)
			result.Eliminated = append(result.Eliminated, p.ID)
		}
	}

	if t.Remaining() == 1 {
		survivor := t.players[t.buttonIndex()]
		survivor.rank = 1
		t.logger.WithFields(logrus.Fields{
			"player": survivor.Name,
			"chips":  survivor.chips,
		}).Info("tournament won")
	}

	for _, p := range t.players {
		p.bet = 0
		p.acted = false
	}

	t.currentBet = 0
	t.street = StreetHandComplete
	t.acting = -1
	t.completedHands++
	t.lastResult = result
	t.rotate()

	t.logger.WithFields(logrus.Fields{
		"hand":     result.HandNumber,
		"showdown": result.Showdown,
	}).Debug(t.lastAction)

	if err := t.checkConservation(); err != nil {
		return err
	}

	return t.checkRanks()
}

// eliminate removes a player from the tournament and assigns the next rank
func (t *Table) eliminate(p *Player) {
	if p.eliminated {
		return
	}

	p.eliminated = true
	t.eliminated = append(t.eliminated, p)
	p.rank = len(t.eliminated) + 1

	t.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"rank":   p.rank,
		"hand":   t.handNumber,
	}).Info("player eliminated")
}

// rotate moves the button to the next remaining player
func (t *Table) rotate() {
	if t.Remaining() == 0 {
		return
	}

	for {
		first := t.players[0]
		copy(t.players, t.players[1:])
		t.players[len(t.players)-1] = first
		if !t.players[0].eliminated {
			return
		}
	}
}

func (t *Table) playerByID(id int) *Player {
	for _, p := range t.players {
		if p.ID == id {
			return p
		}
	}

	panic(fmt.Sprintf("unknown player: %d", id))
}
