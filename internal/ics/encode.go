// Package ics serializes tournament schedules to the iCalendar interchange
// format and parses them back.
//
// The exporter is a pure function over schedule entries; it never consults
// the store. Times are written in the format's floating local-time
// representation (yyyymmddThhmmss, no zone suffix), matching how the admin
// tool has always published schedules.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

const (
	// ProdID identifies this system in exported calendars.
	ProdID = "-//ASSCAT Intramurals//EN"

	timeLayout = "20060102T150405"
)

// Encode renders the schedule as an iCalendar blob. Each entry becomes one
// VEVENT: summary "A vs B", a start at the scheduled time, an end one slot
// interval later, the venue as location, and a description referencing the
// match label and event title.
func Encode(entries []tournament.ScheduleEntry, eventTitle string, slotDuration time.Duration) string {
	var sb strings.Builder
	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:" + ProdID + "\r\n")

	for _, e := range entries {
		summary := fmt.Sprintf("%s vs %s", e.SlotA.Label(), e.SlotB.Label())
		description := fmt.Sprintf("%s for %s", e.Label, eventTitle)

		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString("UID:" + escapeText(e.EventID+"/"+e.MatchID) + "\r\n")
		sb.WriteString("SUMMARY:" + escapeText(summary) + "\r\n")
		sb.WriteString("DTSTART:" + e.Start.Format(timeLayout) + "\r\n")
		sb.WriteString("DTEND:" + e.Start.Add(slotDuration).Format(timeLayout) + "\r\n")
		sb.WriteString("LOCATION:" + escapeText(e.Venue) + "\r\n")
		sb.WriteString("DESCRIPTION:" + escapeText(description) + "\r\n")
		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return sb.String()
}

// FileName returns the conventional download name for an exported schedule,
// e.g. "Basketball-Finals-schedule.ics".
func FileName(eventTitle string) string {
	dashed := strings.Join(strings.Fields(eventTitle), "-")
	if dashed == "" {
		dashed = "event"
	}
	return dashed + "-schedule.ics"
}

// escapeText applies the TEXT escaping the format mandates: backslash,
// semicolon, comma, and newline. Venue and team names get no additional
// encoding beyond this.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
