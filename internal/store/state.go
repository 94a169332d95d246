package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// Load returns the persisted state for an event, or nil if none exists.
//
// A row that fails to unmarshal is treated as absent: Load logs a warning and
// returns nil so the caller can fall back to regenerating the bracket. Only
// genuine database failures surface as errors.
func (s *Store) Load(ctx context.Context, eventID string) (*tournament.TournamentState, error) {
	var revision, bracketJSON, scheduleJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT revision, bracket, schedule
		FROM tournament_states
		WHERE event_id = ?
	`, eventID).Scan(&revision, &bracketJSON, &scheduleJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state for event %s: %w", eventID, err)
	}

	state := &tournament.TournamentState{
		EventID:  eventID,
		Revision: revision,
	}
	if err := json.Unmarshal([]byte(bracketJSON), &state.Bracket); err != nil {
		slog.Warn("stored bracket is malformed, treating as absent",
			"event_id", eventID,
			"revision", revision,
			"error", err,
		)
		return nil, nil
	}
	if err := json.Unmarshal([]byte(scheduleJSON), &state.Schedule); err != nil {
		slog.Warn("stored schedule is malformed, treating as absent",
			"event_id", eventID,
			"revision", revision,
			"error", err,
		)
		return nil, nil
	}

	return state, nil
}

// Save replaces the persisted state for the event with the given state.
//
// The bracket and schedule are written together in a single whole-row upsert:
// a reader can never observe a bracket from a newer revision alongside a
// schedule computed from an older one.
func (s *Store) Save(ctx context.Context, state *tournament.TournamentState) error {
	bracketJSON, err := json.Marshal(state.Bracket)
	if err != nil {
		return fmt.Errorf("save state: marshal bracket: %w", err)
	}
	scheduleJSON, err := json.Marshal(state.Schedule)
	if err != nil {
		return fmt.Errorf("save state: marshal schedule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tournament_states (event_id, revision, bracket, schedule, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET
			revision   = excluded.revision,
			bracket    = excluded.bracket,
			schedule   = excluded.schedule,
			updated_at = excluded.updated_at
	`,
		state.EventID,
		state.Revision,
		string(bracketJSON),
		string(scheduleJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save state for event %s: %w", state.EventID, err)
	}

	return nil
}

// Delete removes the persisted state for an event. Deleting an absent event
// is a no-op. Only the named event's row is affected.
func (s *Store) Delete(ctx context.Context, eventID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM tournament_states WHERE event_id = ?
	`, eventID)
	if err != nil {
		return fmt.Errorf("delete state for event %s: %w", eventID, err)
	}
	return nil
}
