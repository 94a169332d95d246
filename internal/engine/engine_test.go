package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjdesu1/intramurals-engine/internal/schedule"
	"github.com/mjdesu1/intramurals-engine/internal/store"
	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// stubSource is a fixed in-memory EntrantSource.
type stubSource struct {
	info     EventInfo
	entrants []tournament.Entrant
}

func (s stubSource) EventInfo(_ context.Context, _ string) (EventInfo, error) {
	return s.info, nil
}

func (s stubSource) ListEntrants(_ context.Context, _ string) ([]tournament.Entrant, error) {
	return s.entrants, nil
}

func teams(names ...string) []tournament.Entrant {
	out := make([]tournament.Entrant, 0, len(names))
	for i, name := range names {
		out = append(out, tournament.Entrant{
			ID:          fmt.Sprintf("t%d", i+1),
			DisplayName: name,
		})
	}
	return out
}

func setupTestEngine(t *testing.T, entrants []tournament.Entrant, tokens ...string) *Engine {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	src := stubSource{
		info: EventInfo{
			EventID:   "basketball",
			Title:     "Basketball 3x3",
			Venues:    []string{"Gym A", "Gym B"},
			StartDate: "2026-03-02",
		},
		entrants: entrants,
	}
	return New(st, src, schedule.DefaultConfig(),
		WithRevisionGenerator(NewFixedGenerator(tokens...)))
}

func TestGenerateOrLoad_BuildsAndPersists(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1")
	ctx := context.Background()

	state, err := eng.GenerateOrLoad(ctx, "basketball")
	require.NoError(t, err)

	assert.Equal(t, "basketball", state.EventID)
	assert.Equal(t, "rev-1", state.Revision)
	assert.Equal(t, 2, state.Bracket.NumRounds())
	assert.Equal(t, 3, state.Bracket.TotalMatches())
	assert.Len(t, state.Schedule, 3)
}

func TestGenerateOrLoad_SecondCallLoadsStoredState(t *testing.T) {
	// A single token: a second generation would panic the FixedGenerator.
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1")
	ctx := context.Background()

	first, err := eng.GenerateOrLoad(ctx, "basketball")
	require.NoError(t, err)
	second, err := eng.GenerateOrLoad(ctx, "basketball")
	require.NoError(t, err)

	assert.Equal(t, first.Revision, second.Revision)
}

func TestGenerateOrLoad_InsufficientEntrants(t *testing.T) {
	eng := setupTestEngine(t, teams("A"))
	_, err := eng.GenerateOrLoad(context.Background(), "basketball")
	require.Error(t, err)
	assert.True(t, tournament.IsInsufficientEntrants(err))
}

func TestRecordResult_WinnerPropagatesIntoFinal(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1", "rev-2", "rev-3")
	ctx := context.Background()

	state, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	m := state.Bracket.FindMatch("match-r1-1")
	require.NotNil(t, m.Winner)
	assert.Equal(t, "A", m.Winner.DisplayName)

	final := state.Bracket.Final()
	assert.True(t, final.SlotA.IsResolved(), "final slot A should hold the winner")
	assert.Equal(t, "A", final.SlotA.Label())
	assert.Equal(t, "match-r1-1", final.SlotA.SourceMatchID, "provenance must survive resolution")
	assert.True(t, final.SlotB.IsForward(), "final slot B still awaits its feeder")

	// Revision advances on every save.
	assert.Equal(t, "rev-2", state.Revision)
}

func TestRecordResult_TieRevertsToInProgress(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B"), "rev-1", "rev-2")
	ctx := context.Background()

	state, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 10, ScoreB: 10, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	m := state.Bracket.FindMatch("match-r1-1")
	assert.Equal(t, tournament.StatusInProgress, m.Status)
	assert.Nil(t, m.Winner)
	assert.Equal(t, 10, m.ScoreA)
	assert.Equal(t, 10, m.ScoreB)
}

func TestRecordResult_UnresolvedOpponentRejected(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1")
	ctx := context.Background()

	_, err := eng.RecordResult(ctx, "basketball", "match-r2-1", Result{
		ScoreA: 21, ScoreB: 19, Status: tournament.StatusCompleted,
	})
	require.Error(t, err)
	assert.True(t, tournament.IsUnresolvedOpponent(err))
}

func TestRecordResult_UnknownMatch(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B"), "rev-1")
	ctx := context.Background()

	_, err := eng.RecordResult(ctx, "basketball", "match-r9-9", Result{
		Status: tournament.StatusInProgress,
	})
	require.Error(t, err)
	assert.True(t, tournament.IsMatchNotFound(err))
}

func TestRecordResult_InvalidStatusRejected(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B"), "rev-1")
	_, err := eng.RecordResult(context.Background(), "basketball", "match-r1-1", Result{
		Status: "finished",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid match status")
}

func TestRecordResult_ByeOpponentConcedes(t *testing.T) {
	// Three entrants: match-r1-2 is C against a bye.
	eng := setupTestEngine(t, teams("A", "B", "C"), "rev-1", "rev-2")
	ctx := context.Background()

	state, err := eng.RecordResult(ctx, "basketball", "match-r1-2", Result{
		ScoreA: 0, ScoreB: 0, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	m := state.Bracket.FindMatch("match-r1-2")
	require.NotNil(t, m.Winner)
	assert.Equal(t, "C", m.Winner.DisplayName, "the lone entrant advances whatever the scores")

	final := state.Bracket.Final()
	assert.Equal(t, "C", final.SlotB.Label())
}

func TestRecordResult_ReopeningCascadesReversal(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"),
		"rev-1", "rev-2", "rev-3", "rev-4", "rev-5")
	ctx := context.Background()

	// Play the whole tournament: A and D reach the final, A wins it.
	_, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)
	_, err = eng.RecordResult(ctx, "basketball", "match-r1-2", Result{
		ScoreA: 12, ScoreB: 20, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)
	state, err := eng.RecordResult(ctx, "basketball", "match-r2-1", Result{
		ScoreA: 25, ScoreB: 23, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, state.Bracket.Final().Winner)
	assert.Equal(t, "A", state.Bracket.Final().Winner.DisplayName)

	// An admin correction reopens the first semifinal.
	state, err = eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusInProgress,
	})
	require.NoError(t, err)

	reopened := state.Bracket.FindMatch("match-r1-1")
	assert.Equal(t, tournament.StatusInProgress, reopened.Status)
	assert.Nil(t, reopened.Winner)

	// The final loses its resolved slot, its winner, and its completion.
	final := state.Bracket.Final()
	assert.True(t, final.SlotA.IsForward(), "final slot A must revert to a forward reference")
	assert.Equal(t, "match-r1-1", final.SlotA.SourceMatchID)
	assert.Nil(t, final.Winner)
	assert.Equal(t, tournament.StatusInProgress, final.Status)

	// The untouched side survives.
	assert.True(t, final.SlotB.IsResolved())
	assert.Equal(t, "D", final.SlotB.Label())
}

func TestRecordResult_ChangedWinnerRewritesDependents(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1", "rev-2", "rev-3")
	ctx := context.Background()

	_, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	// Correction: B actually won.
	state, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 15, ScoreB: 21, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	final := state.Bracket.Final()
	assert.True(t, final.SlotA.IsResolved())
	assert.Equal(t, "B", final.SlotA.Label())
}

func TestRecordResult_ScheduleReprojected(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1", "rev-2")
	ctx := context.Background()

	state, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	var entry *tournament.ScheduleEntry
	for i := range state.Schedule {
		if state.Schedule[i].MatchID == "match-r2-1" {
			entry = &state.Schedule[i]
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, "A", entry.SlotA.Label(), "schedule must reflect the propagated winner")
}

func TestRecordResult_TimeOverride(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B"), "rev-1", "rev-2")
	ctx := context.Background()

	override := time.Date(2026, 3, 5, 14, 0, 0, 0, time.Local)
	state, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		Status:        tournament.StatusScheduled,
		ScheduledTime: &override,
	})
	require.NoError(t, err)

	m := state.Bracket.FindMatch("match-r1-1")
	assert.True(t, m.ScheduledTime.Equal(override))
}

func TestResetBracket_DiscardsResults(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1", "rev-2", "rev-3")
	ctx := context.Background()

	_, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	state, err := eng.ResetBracket(ctx, "basketball")
	require.NoError(t, err)

	m := state.Bracket.FindMatch("match-r1-1")
	assert.Equal(t, tournament.StatusScheduled, m.Status)
	assert.Nil(t, m.Winner)
	assert.Equal(t, 0, m.ScoreA)
	assert.Equal(t, "rev-3", state.Revision, "reset produces a new revision")
}

func TestExportCalendar(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B"), "rev-1")
	ctx := context.Background()

	cal, err := eng.ExportCalendar(ctx, "basketball")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cal, "BEGIN:VCALENDAR"))
	assert.Contains(t, cal, "PRODID:-//ASSCAT Intramurals//EN")
	assert.Contains(t, cal, "SUMMARY:A vs B")
	assert.Contains(t, cal, "DESCRIPTION:Finals - Match 1 for Basketball 3x3")
	assert.Contains(t, cal, "LOCATION:Gym A")
}

func TestSnapshotModel(t *testing.T) {
	eng := setupTestEngine(t, teams("A", "B", "C", "D"), "rev-1", "rev-2")
	ctx := context.Background()

	_, err := eng.RecordResult(ctx, "basketball", "match-r1-1", Result{
		ScoreA: 21, ScoreB: 15, Status: tournament.StatusCompleted,
	})
	require.NoError(t, err)

	model, err := eng.SnapshotModel(ctx, "basketball")
	require.NoError(t, err)

	assert.Equal(t, "Basketball 3x3", model.EventTitle)
	assert.Equal(t, "rev-2", model.Revision)
	require.Len(t, model.Bracket.Rounds, 2)
	assert.Equal(t, "Semi Finals", model.Bracket.Rounds[0].Label)
	assert.Equal(t, "Finals", model.Bracket.Rounds[1].Label)
	assert.Equal(t, "A", model.Bracket.Rounds[0].Matches[0].Winner)
	require.NotEmpty(t, model.Schedule.Days)
}
