package tournament

import "encoding/json"

// State is the state of the tournament
type State int

// constants for State
const (
	StatePending State = iota
	StateRunning
	StateComplete
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
