package parser

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Provider exports are inconsistently timestamped, so both converters
// below degrade to nil instead of returning an error. Structural fields
// (ids, roles, content) are never handled this way; keeping the leniency
// in these two functions makes the policy testable on its own.

// timeFromEpoch converts a Unix-epoch seconds value (possibly fractional)
// to a timestamp. Absent or zero values yield nil.
func timeFromEpoch(v *float64) *time.Time {
	if v == nil || *v == 0 {
		return nil
	}
	sec := math.Floor(*v)
	t := time.Unix(int64(sec), int64((*v-sec)*float64(time.Second)))
	return &t
}

// timeFromISO parses an ISO-8601 string out of a raw JSON value. A "Z"
// suffix is rewritten to an explicit "+00:00" offset first. Wrong types,
// malformed strings, and absent values all yield nil.
func timeFromISO(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.ReplaceAll(s, "Z", "+00:00")
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Tolerate timestamps with no offset at all.
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return nil
		}
	}
	return &t
}
