package encoder

import (
	"strings"
	"time"

	"github.com/iudanet/qrninja/internal/models"
)

const icalDateLayout = "20060102T150405Z"

// zonedLayouts carry their own offset; localLayouts are datetime-local style
// values interpreted in the caller's location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
)

// ParseEventTime parses an ISO 8601 / datetime-local value. Values without a
// zone are interpreted in loc.
func ParseEventTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatEventTime formats a date as UTC YYYYMMDDTHHMMSSZ. Unparsable input
// falls back to the textual rule: strip '-' and ':', drop the sub-second
// part and append 'Z'.
func FormatEventTime(value string, loc *time.Location) string {
	if t, ok := ParseEventTime(value, loc); ok {
		return t.UTC().Format(icalDateLayout)
	}

	s := strings.NewReplacer("-", "", ":", "").Replace(strings.TrimSpace(value))
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "Z") + "Z"
}

// Event encodes a calendar event as an iCalendar VEVENT wrapped in a
// VCALENDAR, lines joined with "\n". Zone-less dates use local time.
func Event(f models.EventForm) string {
	return EventIn(f, time.Local)
}

// EventIn is Event with an explicit location for zone-less dates.
func EventIn(f models.EventForm, loc *time.Location) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
	}

	if f.Title != "" {
		lines = append(lines, "SUMMARY:"+f.Title)
	}
	if f.StartDate != "" {
		lines = append(lines, "DTSTART:"+FormatEventTime(f.StartDate, loc))
	}
	if f.EndDate != "" {
		lines = append(lines, "DTEND:"+FormatEventTime(f.EndDate, loc))
	}
	if f.Location != "" {
		lines = append(lines, "LOCATION:"+f.Location)
	}
	if f.Description != "" {
		lines = append(lines, "DESCRIPTION:"+f.Description)
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	return strings.Join(lines, "\n")
}
