package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/action"
)

// DealCards starts a new hand
// It shuffles a fresh deck, deals two cards to every remaining player, and posts the blinds
func (t *Table) DealCards() error {
	if t.street != StreetHandComplete {
		return fmt.Errorf("cannot deal cards from street %s", t.street)
	}

	order := t.actionOrder()
	if len(order) < 2 {
		return ErrNotEnoughPlayers
	}

	if t.level.Number == 0 {
		t.UpdateBlinds()
	}

	d := deck.NewShuffled(t.random)
	if !d.CanDraw(len(order)*holeCards + boardCards) {
		return fmt.Errorf("%w: %d players", ErrNotEnoughCards, len(order))
	}

	for _, p := range t.players {
		p.resetForHand()
	}

	t.deck = d
	t.community = make(deck.Hand, 0, boardCards)
	t.pot = 0
	t.currentBet = 0
	t.street = StreetPreflop
	t.handNumber++
	t.lastResult = nil

	for i := 0; i < holeCards; i++ {
		for _, idx := range order {
			card, err := t.deck.Draw()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrNotEnoughCards, err)
			}

			t.players[idx].hand.AddCard(card)
		}
	}

	for _, idx := range order {
		t.players[idx].handsPlayed++
	}

	// heads-up, the button posts the small blind
	sbIndex, bbIndex := order[0], order[1]
	if len(order) == 2 {
		sbIndex, bbIndex = order[1], order[0]
	}

	sb, bb := t.players[sbIndex], t.players[bbIndex]
	t.pot += sb.pay(t.level.SmallBlind)
	t.pot += bb.pay(t.level.BigBlind)
	t.currentBet = t.level.BigBlind

	t.lastAction = fmt.Sprintf("%s posts small blind %d, %s posts big blind %d", sb.Name, sb.bet, bb.Name, bb.bet)
	t.logger.WithFields(logrus.Fields{
		"hand":       t.handNumber,
		"players":    len(order),
		"smallBlind": t.level.SmallBlind,
		"bigBlind":   t.level.BigBlind,
		"button":     t.players[t.buttonIndex()].Name,
	}).Debug("dealt hand")

	return t.settle(bbIndex)
}

// Act applies the decision of the player who is on the clock
func (t *Table) Act(d action.Decision) error {
	switch d.Action {
	case action.Fold:
		return t.Fold()
	case action.Check:
		return t.Check()
	case action.Call:
		return t.Call()
	case action.Raise:
		return t.Raise(d.Amount)
	}

	return newActionError("unknown action: %s", string(d.Action))
}

// Fold folds the current player's hand
func (t *Table) Fold() error {
	p, err := t.CurrentPlayer()
	if err != nil {
		return err
	}

	p.folded = true
	p.acted = true
	t.describe(p, action.Fold, 0)

	// a stack of zero cannot contest another hand
	if p.chips == 0 {
		t.eliminate(p)
	}

	return t.afterAction()
}

// Check checks for the current player
func (t *Table) Check() error {
	p, err := t.CurrentPlayer()
	if err != nil {
		return err
	}

	if p.bet < t.currentBet {
		return ErrCannotCheck
	}

	p.acted = true
	t.describe(p, action.Check, 0)
	return t.afterAction()
}

// Call matches the current bet, or goes all-in if the player cannot cover it
// Calling without an active bet is a check
func (t *Table) Call() error {
	p, err := t.CurrentPlayer()
	if err != nil {
		return err
	}

	toCall := t.currentBet - p.bet
	if toCall <= 0 {
		return t.Check()
	}

	paid := p.pay(toCall)
	t.pot += paid
	p.acted = true
	t.describe(p, action.Call, paid)
	return t.afterAction()
}

// NormalizeRaise snaps amount to the nearest multiple of the big blind, and to at least
// the current bet plus one big blind
func (t *Table) NormalizeRaise(amount int) int {
	bb := t.level.BigBlind
	if bb > 0 {
		amount = ((amount + bb/2) / bb) * bb
	}

	if amount < t.currentBet+bb {
		amount = t.currentBet + bb
	}

	return amount
}

// Raise raises the current bet to amount
// The amount is normalized by NormalizeRaise. If the player cannot cover it, they go all-in, and
// the current bet only increases if the all-in exceeds it.
// A player whose action was only reopened by a short all-in calls instead.
func (t *Table) Raise(amount int) error {
	p, err := t.CurrentPlayer()
	if err != nil {
		return err
	}

	if !t.canRaise(p) {
		t.logger.WithFields(logrus.Fields{
			"hand":       t.handNumber,
			"player":     p.Name,
			"amount":     amount,
			"currentBet": t.currentBet,
		}).Debug("betting is closed to the player, raise becomes a call")
		return t.Call()
	}

	amount = t.NormalizeRaise(amount)
	want := amount - p.bet
	paid := p.pay(want)
	t.pot += paid
	p.acted = true

	if paid == want {
		t.currentBet = amount

		// everybody else must respond to a full raise
		for _, o := range t.players {
			if o != p {
				o.acted = false
			}
		}
	} else if p.bet > t.currentBet {
		t.currentBet = p.bet
	}

	t.describe(p, action.Raise, p.bet)
	return t.afterAction()
}

// describe records and logs the last action
func (t *Table) describe(p *Player, a action.Action, amount int) {
	applied := action.Applied{Player: p.Name, Action: a, Amount: amount, AllIn: p.chips == 0}
	if applied.AllIn {
		applied.Amount = p.bet
	}

	t.lastAction = applied.String()

	t.logger.WithFields(logrus.Fields{
		"hand":       t.handNumber,
		"street":     t.street.String(),
		"player":     p.Name,
		"action":     string(a),
		"bet":        p.bet,
		"chips":      p.chips,
		"pot":        t.pot,
		"currentBet": t.currentBet,
	}).Debug(t.lastAction)
}

func (t *Table) afterAction() error {
	if err := t.checkConservation(); err != nil {
		return err
	}

	return t.settle(t.acting)
}

// settle moves the action to the next player who must act
// It completes streets, runs out the board when nobody can bet, and ends the hand
func (t *Table) settle(from int) error {
	for {
		if t.contenderCount() <= 1 {
			return t.awardUncontested()
		}

		if next := t.nextIndex(from, t.needsAction); next >= 0 {
			t.acting = next
			return nil
		}

		if t.street == StreetRiver {
			return t.showdown()
		}

		if err := t.dealStreet(); err != nil {
			return err
		}

		from = t.buttonIndex()
	}
}

// dealStreet clears the bets and deals the next street's community cards
func (t *Table) dealStreet() error {
	for _, p := range t.players {
		p.bet = 0
		p.acted = false
	}

	t.currentBet = 0
	t.street++

	cards, err := t.deck.DrawMany(communityCards[t.street])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotEnoughCards, err)
	}

	t.community = append(t.community, cards...)
	t.logger.WithFields(logrus.Fields{
		"hand":      t.handNumber,
		"street":    t.street.String(),
		"community": t.community.String(),
	}).Debug("dealt street")

	return nil
}
