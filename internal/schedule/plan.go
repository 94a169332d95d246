package schedule

import (
	"sort"
	"time"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

// Plan assigns a scheduled time and venue to every match in the bracket and
// returns the resulting schedule projection.
//
// Round r plays on startDate + (r-1) days. Slots within a round advance at
// the configured interval from the baseline hour, cycling after SlotsPerDay
// so concurrent matches land on alternating venues rather than spilling into
// the next day. The final round always takes the last slot of its day
// regardless of round size. Venues rotate round-robin across the matches of
// a round; with a single venue every match shares it.
//
// Plan is total: a bracket with zero matches yields an empty schedule.
func Plan(b *tournament.Bracket, startDate time.Time, venues []string, cfg Config) []tournament.ScheduleEntry {
	day := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	numRounds := b.NumRounds()

	for r := range b.Rounds {
		roundDay := day.AddDate(0, 0, r)
		isFinal := r == numRounds-1
		for i := range b.Rounds[r] {
			m := &b.Rounds[r][i]

			hour := cfg.BaselineHour
			if isFinal {
				hour = cfg.FinalHour
			} else if cfg.SlotsPerDay > 0 {
				hour += (i % cfg.SlotsPerDay) * cfg.SlotIntervalHours
			}
			m.ScheduledTime = roundDay.Add(time.Duration(hour) * time.Hour)

			if len(venues) > 0 {
				m.Venue = venues[i%len(venues)]
			} else {
				m.Venue = ""
			}
		}
	}

	return Project(b)
}

// Project derives the flat, time-sorted schedule from the bracket's matches.
// One entry is produced per match. Entries are ordered by start time, then
// round, then index, which keeps the order deterministic when concurrent
// matches share a slot.
func Project(b *tournament.Bracket) []tournament.ScheduleEntry {
	numRounds := b.NumRounds()
	entries := make([]tournament.ScheduleEntry, 0, b.TotalMatches())
	for r := range b.Rounds {
		for i := range b.Rounds[r] {
			m := b.Rounds[r][i]
			entries = append(entries, tournament.ScheduleEntry{
				MatchID:      m.ID,
				EventID:      m.EventID,
				Round:        m.Round,
				IndexInRound: m.IndexInRound,
				Label:        tournament.MatchLabel(m, numRounds, b.EntrantCount),
				SlotA:        m.SlotA,
				SlotB:        m.SlotB,
				Start:        m.ScheduledTime,
				Venue:        m.Venue,
				Status:       m.Status,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Start.Equal(entries[j].Start) {
			return entries[i].Start.Before(entries[j].Start)
		}
		if entries[i].Round != entries[j].Round {
			return entries[i].Round < entries[j].Round
		}
		return entries[i].IndexInRound < entries[j].IndexInRound
	})

	return entries
}
