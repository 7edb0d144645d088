package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Raise Action = "raise"
)

// wording is how an action reads in the UI and in the hand log
// A verb with %d takes the amount
type wording struct {
	name string
	verb string
}

var wordings = map[Action]wording{
	Fold:  {name: "Fold", verb: "folds"},
	Check: {name: "Check", verb: "checks"},
	Call:  {name: "Call", verb: "calls %d"},
	Raise: {name: "Raise", verb: "raises to %d"},
}

// String returns the display name, unknown actions are returned as is
func (a Action) String() string {
	if w, ok := wordings[a]; ok {
		return w.name
	}

	return string(a)
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := wordings[a]
	return ok
}

// Decision is what a player chose to do on their turn
// Amount is only used by Raise, and is the total bet the player wants to have in front of them
type Decision struct {
	Action Action `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// NewRaise is a convenience for a raise to amount
func NewRaise(amount int) Decision {
	return Decision{Action: Raise, Amount: amount}
}

func (d Decision) String() string {
	if d.Action == Raise {
		return fmt.Sprintf("%s %d", string(d.Action), d.Amount)
	}

	return string(d.Action)
}

// Applied is an action after the table applied it to a player
type Applied struct {
	Player string
	Action Action

	// Amount is the chips paid by a call, or the total bet after a raise or an all-in
	Amount int
	AllIn  bool
}

// String describes the action for the hand log, i.e., "Player 1 raises to 60"
func (a Applied) String() string {
	if a.AllIn && a.Action != Fold && a.Action != Check {
		return fmt.Sprintf("%s is all-in for %d", a.Player, a.Amount)
	}

	w, ok := wordings[a.Action]
	if !ok {
		return fmt.Sprintf("%s %s", a.Player, string(a.Action))
	}

	verb := w.verb
	if a.Action == Call || a.Action == Raise {
		verb = fmt.Sprintf(verb, a.Amount)
	}

	return a.Player + " " + verb
}
