package ics

import (
	"fmt"
	"strings"
	"time"
)

// Event is one calendar event recovered from an encoded blob.
type Event struct {
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
}

// Decode parses a blob produced by Encode back into its events. It is a
// minimal reader for this system's own output, not a general iCalendar
// parser: it understands the properties Encode writes and the TEXT escaping
// the format mandates.
func Decode(blob string) ([]Event, error) {
	var events []Event
	var cur *Event

	for lineNo, line := range strings.Split(blob, "\r\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		switch {
		case line == "BEGIN:VEVENT":
			if cur != nil {
				return nil, fmt.Errorf("line %d: nested BEGIN:VEVENT", lineNo+1)
			}
			cur = &Event{}
		case line == "END:VEVENT":
			if cur == nil {
				return nil, fmt.Errorf("line %d: END:VEVENT without BEGIN", lineNo+1)
			}
			events = append(events, *cur)
			cur = nil
		case cur != nil:
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: malformed property %q", lineNo+1, line)
			}
			if err := cur.setProperty(name, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
		}
	}

	if cur != nil {
		return nil, fmt.Errorf("unterminated VEVENT")
	}
	return events, nil
}

func (e *Event) setProperty(name, value string) error {
	switch name {
	case "UID":
		e.UID = unescapeText(value)
	case "SUMMARY":
		e.Summary = unescapeText(value)
	case "LOCATION":
		e.Location = unescapeText(value)
	case "DESCRIPTION":
		e.Description = unescapeText(value)
	case "DTSTART", "DTEND":
		t, err := time.ParseInLocation(timeLayout, value, time.Local)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		if name == "DTSTART" {
			e.Start = t
		} else {
			e.End = t
		}
	}
	// Unknown properties are ignored.
	return nil
}

func unescapeText(s string) string {
	var sb strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 'n', 'N':
				sb.WriteRune('\n')
			default:
				sb.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
