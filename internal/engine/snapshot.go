package engine

import (
	"context"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// SnapshotModel is the structured data handed to the snapshot renderer
// collaborator (document/image output). The engine supplies the data only;
// all rasterization is the renderer's business.
type SnapshotModel struct {
	EventID    string       `json:"event_id"`
	EventTitle string       `json:"event_title"`
	Revision   string       `json:"revision"`
	Bracket    BracketView  `json:"bracket"`
	Schedule   ScheduleView `json:"schedule"`
}

// BracketView groups matches by round under their tier labels.
type BracketView struct {
	Rounds []RoundView `json:"rounds"`
}

// RoundView is one labelled tier of the bracket.
type RoundView struct {
	Round   int         `json:"round"`
	Label   string      `json:"label"`
	Matches []MatchView `json:"matches"`
}

// MatchView is the display form of one match.
type MatchView struct {
	MatchID   string `json:"match_id"`
	TeamA     string `json:"team_a"`
	TeamB     string `json:"team_b"`
	ScoreA    int    `json:"score_a"`
	ScoreB    int    `json:"score_b"`
	Status    string `json:"status"`
	Winner    string `json:"winner,omitempty"`
	Scheduled string `json:"scheduled"`
	Venue     string `json:"venue"`
}

// ScheduleView groups schedule entries by day of play.
type ScheduleView struct {
	Days []DayView `json:"days"`
}

// DayView is one day of scheduled matches, in start order.
type DayView struct {
	Date    string      `json:"date"`
	Entries []EntryView `json:"entries"`
}

// EntryView is the display form of one schedule entry.
type EntryView struct {
	MatchID string `json:"match_id"`
	Label   string `json:"label"`
	TeamA   string `json:"team_a"`
	TeamB   string `json:"team_b"`
	Time    string `json:"time"`
	Venue   string `json:"venue"`
	Status  string `json:"status"`
}

// SnapshotModel builds the render model for an event, generating its state
// first if needed.
func (e *Engine) SnapshotModel(ctx context.Context, eventID string) (*SnapshotModel, error) {
	state, err := e.GenerateOrLoad(ctx, eventID)
	if err != nil {
		return nil, err
	}
	info, err := e.source.EventInfo(ctx, eventID)
	if err != nil {
		return nil, err
	}

	model := &SnapshotModel{
		EventID:    eventID,
		EventTitle: info.Title,
		Revision:   state.Revision,
	}

	numRounds := state.Bracket.NumRounds()
	for r, round := range state.Bracket.Rounds {
		rv := RoundView{
			Round: r + 1,
			Label: tournament.RoundLabel(r+1, numRounds, state.Bracket.EntrantCount),
		}
		for _, m := range round {
			mv := MatchView{
				MatchID:   m.ID,
				TeamA:     m.SlotA.Label(),
				TeamB:     m.SlotB.Label(),
				ScoreA:    m.ScoreA,
				ScoreB:    m.ScoreB,
				Status:    string(m.Status),
				Scheduled: m.ScheduledTime.Format("2006-01-02 15:04"),
				Venue:     m.Venue,
			}
			if m.Winner != nil {
				mv.Winner = m.Winner.DisplayName
			}
			rv.Matches = append(rv.Matches, mv)
		}
		model.Bracket.Rounds = append(model.Bracket.Rounds, rv)
	}

	var day *DayView
	for _, entry := range state.Schedule {
		date := entry.Start.Format("2006-01-02")
		if day == nil || day.Date != date {
			model.Schedule.Days = append(model.Schedule.Days, DayView{Date: date})
			day = &model.Schedule.Days[len(model.Schedule.Days)-1]
		}
		day.Entries = append(day.Entries, EntryView{
			MatchID: entry.MatchID,
			Label:   entry.Label,
			TeamA:   entry.SlotA.Label(),
			TeamB:   entry.SlotB.Label(),
			Time:    entry.Start.Format("15:04"),
			Venue:   entry.Venue,
			Status:  string(entry.Status),
		})
	}

	return model, nil
}
