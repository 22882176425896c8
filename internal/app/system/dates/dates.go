// Package dates converts between the stored form of a date and the
// dd/mm/yyyy form shown to users.
//
// Storage keeps dates raw and parseable (BSON datetimes in Mongo, ISO
// strings at the form/LLM boundary); formatting happens only at render
// time. A missing date stays nil end to end; it is never turned into an
// empty string or a zero-time rendered as "01/01/0001".
package dates

import (
	"strings"
	"time"
)

// DisplayLayout is the presentation form: dd/mm/yyyy.
const DisplayLayout = "02/01/2006"

// storedLayouts are the raw forms accepted at the input boundary, tried in
// order. Form inputs submit "2006-01-02"; collaborator payloads sometimes
// carry a full RFC 3339 timestamp.
var storedLayouts = []string{"2006-01-02", time.RFC3339}

// Display formats a date as dd/mm/yyyy.
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}

// DisplayPtr formats an optional date, preserving nil.
func DisplayPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DisplayLayout)
	return &s
}

// ParseStored parses a date in one of the accepted raw forms.
func ParseStored(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range storedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ParseStoredPtr parses an optional raw date: an empty string means "no
// date" and comes back as nil, not as an error and not as a zero time.
func ParseStoredPtr(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseStored(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
