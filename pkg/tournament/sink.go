package tournament

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sink receives every event of a tournament
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(ctx context.Context, event Event) error

// Emit calls f
func (f SinkFunc) Emit(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Sinks fans an event out to multiple sinks, stopping at the first error
type Sinks []Sink

// Emit sends the event to every sink
func (s Sinks) Emit(ctx context.Context, event Event) error {
	for _, sink := range s {
		if err := sink.Emit(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

// ChannelSink sends events to a channel
// Emit blocks until the event is received or ctx is done
type ChannelSink chan Event

// Emit sends the event
func (c ChannelSink) Emit(ctx context.Context, event Event) error {
	select {
	case c <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogSink logs a line per event
type LogSink struct {
	Logger logrus.FieldLogger
}

// Emit logs the event
func (l LogSink) Emit(_ context.Context, event Event) error {
	log := l.Logger.WithFields(logrus.Fields{
		"tournament": event.TournamentID,
		"type":       string(event.Type),
	})

	if s := event.Snapshot; s != nil {
		log = log.WithFields(logrus.Fields{
			"hand":   s.HandNumber,
			"street": s.Street.String(),
			"pot":    s.Pot,
		})
	}

	switch event.Type {
	case EventGameState:
		log.Debug(event.Message)
	default:
		log.Info(event.Message)
	}

	return nil
}

// JSONSink writes each event as a line of JSON
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONSink returns a sink that writes to w
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// Emit encodes the event
func (j *JSONSink) Emit(_ context.Context, event Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.enc.Encode(event)
}
