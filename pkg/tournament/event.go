package tournament

import (
	"time"

	"github.com/google/uuid"
	"holdem-tournament/pkg/holdem"
)

// EventType identifies an event
type EventType string

// EventType constants
const (
	EventGameState          EventType = "gameState"
	EventBlindLevel         EventType = "blindLevel"
	EventHandComplete       EventType = "handComplete"
	EventTournamentComplete EventType = "tournamentComplete"
)

// Event is emitted after every state change of the tournament
type Event struct {
	UUID         string                  `json:"uuid"`
	TournamentID string                  `json:"tournamentId"`
	Type         EventType               `json:"type"`
	Time         time.Time               `json:"time"`
	Message      string                  `json:"message"`
	Snapshot     *holdem.Snapshot        `json:"snapshot"`
	Winners      []holdem.PlayerSnapshot `json:"winners,omitempty"`
}

func (t *Tournament) newEvent(eventType EventType, message string) Event {
	return Event{
		UUID:         uuid.New().String(),
		TournamentID: t.UUID,
		Type:         eventType,
		Time:         time.Now(),
		Message:      message,
		Snapshot:     t.table.Snapshot(),
	}
}
