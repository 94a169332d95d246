package eventdef

import (
	"context"

	"github.com/mjdesu1/intramurals-engine/internal/engine"
	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// EventInfo implements engine.EntrantSource.
func (l *Loader) EventInfo(_ context.Context, eventID string) (engine.EventInfo, error) {
	ev, err := l.Load(eventID)
	if err != nil {
		return engine.EventInfo{}, err
	}
	return engine.EventInfo{
		EventID:   ev.ID,
		Title:     ev.Title,
		Venues:    ev.Venues,
		StartDate: ev.StartDate,
	}, nil
}

// ListEntrants implements engine.EntrantSource.
func (l *Loader) ListEntrants(_ context.Context, eventID string) ([]tournament.Entrant, error) {
	ev, err := l.Load(eventID)
	if err != nil {
		return nil, err
	}
	return ev.Tournament(), nil
}
