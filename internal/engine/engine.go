package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mjdesu1/intramurals-engine/internal/bracket"
	"github.com/mjdesu1/intramurals-engine/internal/ics"
	"github.com/mjdesu1/intramurals-engine/internal/schedule"
	"github.com/mjdesu1/intramurals-engine/internal/store"
	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// EventInfo is the event metadata the engine consumes from the event
// management collaborator.
type EventInfo struct {
	EventID   string
	Title     string
	Venues    []string
	StartDate string // RFC3339 date, first day of play
}

// Start parses the event's first day of play. An event with no start date
// follows the historical default of opening three days out.
func (i EventInfo) Start() (time.Time, error) {
	if i.StartDate == "" {
		return time.Now().AddDate(0, 0, 3), nil
	}
	t, err := time.ParseInLocation("2006-01-02", i.StartDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s: bad start date %q: %w", i.EventID, i.StartDate, err)
	}
	return t, nil
}

// EntrantSource supplies event metadata and the teams registered for an
// event. Implemented by the eventdef loader in production and by stubs in
// tests. The engine consumes it; it never writes back.
type EntrantSource interface {
	EventInfo(ctx context.Context, eventID string) (EventInfo, error)
	ListEntrants(ctx context.Context, eventID string) ([]tournament.Entrant, error)
}

// Engine exposes the bracket and schedule operations to the surrounding
// admin surface. All mutating operations replace the event's whole persisted
// state atomically.
type Engine struct {
	store  *store.Store
	source EntrantSource
	cfg    schedule.Config
	revGen RevisionGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithRevisionGenerator overrides the revision token generator.
// Tests use this with a FixedGenerator for deterministic saved state.
func WithRevisionGenerator(gen RevisionGenerator) Option {
	return func(e *Engine) {
		e.revGen = gen
	}
}

// New creates an Engine over the given store and entrant source.
func New(st *store.Store, source EntrantSource, cfg schedule.Config, opts ...Option) *Engine {
	e := &Engine{
		store:  st,
		source: source,
		cfg:    cfg,
		revGen: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateOrLoad returns the event's current tournament state, building and
// persisting a fresh bracket and schedule on first access.
func (e *Engine) GenerateOrLoad(ctx context.Context, eventID string) (*tournament.TournamentState, error) {
	state, err := e.store.Load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}
	return e.regenerate(ctx, eventID)
}

// RecordResult applies a result update to one match, propagates the winner,
// regenerates the affected schedule entries, and persists the new state
// atomically. The event's state is generated first if it does not exist yet.
func (e *Engine) RecordResult(ctx context.Context, eventID, matchID string, res Result) (*tournament.TournamentState, error) {
	if !tournament.ValidStatus(res.Status) {
		return nil, fmt.Errorf("invalid match status %q", res.Status)
	}

	state, err := e.GenerateOrLoad(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := applyResult(state, matchID, res); err != nil {
		return nil, err
	}

	// The schedule carries no independent truth; rebuild it wholesale from
	// the mutated bracket rather than patching individual entries.
	state.Schedule = schedule.Project(&state.Bracket)
	state.Revision = e.revGen.Next()

	if err := e.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("result recorded",
		"event_id", eventID,
		"match_id", matchID,
		"status", res.Status,
		"revision", state.Revision,
	)
	return state, nil
}

// ResetBracket discards the event's state, including all recorded results,
// and rebuilds bracket and schedule from the current entrant list.
func (e *Engine) ResetBracket(ctx context.Context, eventID string) (*tournament.TournamentState, error) {
	return e.regenerate(ctx, eventID)
}

// EventInfo returns the definition metadata for an event.
func (e *Engine) EventInfo(ctx context.Context, eventID string) (EventInfo, error) {
	return e.source.EventInfo(ctx, eventID)
}

// ExportCalendar renders the event's schedule as an iCalendar blob,
// generating the state first if needed.
func (e *Engine) ExportCalendar(ctx context.Context, eventID string) (string, error) {
	state, err := e.GenerateOrLoad(ctx, eventID)
	if err != nil {
		return "", err
	}
	info, err := e.source.EventInfo(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("event info for %s: %w", eventID, err)
	}
	return ics.Encode(state.Schedule, info.Title, e.cfg.SlotDuration()), nil
}

// regenerate builds a fresh state from the entrant source and replaces
// whatever was stored.
func (e *Engine) regenerate(ctx context.Context, eventID string) (*tournament.TournamentState, error) {
	info, err := e.source.EventInfo(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event info for %s: %w", eventID, err)
	}
	entrants, err := e.source.ListEntrants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list entrants for %s: %w", eventID, err)
	}

	b, err := bracket.Build(eventID, entrants)
	if err != nil {
		return nil, err
	}

	start, err := info.Start()
	if err != nil {
		return nil, err
	}
	entries := schedule.Plan(&b, start, info.Venues, e.cfg)

	state := &tournament.TournamentState{
		EventID:  eventID,
		Revision: e.revGen.Next(),
		Bracket:  b,
		Schedule: entries,
	}
	if err := e.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("bracket generated",
		"event_id", eventID,
		"entrants", len(entrants),
		"rounds", b.NumRounds(),
		"matches", b.TotalMatches(),
		"revision", state.Revision,
	)
	return state, nil
}
