// Package clock converts between colon-delimited duration text, minute counts and HH:MM:SS clock strings
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for negative, non-finite or out of range second counts
var ErrInvalidDuration = errors.New("invalid duration")

// warning reasons
const (
	ReasonMissing       = "missing"
	ReasonNotNumber     = "not a number"
	ReasonTrailingChars = "trailing characters"
	ReasonExtraSegment  = "extra segment"
	ReasonOutOfRange    = "out of time.Duration range"
)

// segments of H:M:S text, in order
const (
	segHours = iota
	segMinutes
	segSeconds
	segCount
)

// ParseWarning describes a segment of duration text that was not a clean integer
type ParseWarning struct {
	Segment int    `json:"segment"`
	Text    string `json:"text"`
	Reason  string `json:"reason"`
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("segment %d %q: %s", w.Segment, w.Text, w.Reason)
}

// Result is a parsed duration with warnings for every segment that was zero-filled or truncated
type Result struct {
	Hours    int            `json:"hours"`
	Minutes  int            `json:"minutes"`
	Seconds  int            `json:"seconds"`
	Total    float64        `json:"total_minutes"`
	Warnings []ParseWarning `json:"warnings,omitempty"`
}

// Duration returns the parsed value as time.Duration, clamped to the time.Duration range
func (r Result) Duration() time.Duration {
	secs := r.totalSeconds()
	switch {
	case secs >= maxDurationSeconds:
		return time.Duration(math.MaxInt64)
	case secs <= -maxDurationSeconds:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(secs) * time.Second
}

// maxDurationSeconds is the first whole second count time.Duration can't hold
var maxDurationSeconds = math.Floor(float64(math.MaxInt64)/float64(time.Second)) + 1

func (r Result) totalSeconds() float64 {
	return float64(r.Hours)*3600 + float64(r.Minutes)*60 + float64(r.Seconds)
}

// Parse splits text on ":" and reads hours, minutes and seconds from the first three segments.
// The parser is permissive: a missing or non-numeric segment counts as zero and is reported
// as a warning, never as an error. Empty text gives a zero result without warnings.
func Parse(text string) Result {
	res := Result{}
	if strings.TrimSpace(text) == "" {
		return res
	}

	parts := strings.Split(text, ":")
	values := [segCount]int{}
	for i := range segCount {
		if i >= len(parts) {
			res.Warnings = append(res.Warnings, ParseWarning{Segment: i, Reason: ReasonMissing})
			continue
		}
		v, reason := parseSegment(parts[i])
		values[i] = v
		if reason != "" {
			res.Warnings = append(res.Warnings, ParseWarning{Segment: i, Text: parts[i], Reason: reason})
		}
	}
	for i := segCount; i < len(parts); i++ {
		res.Warnings = append(res.Warnings, ParseWarning{Segment: i, Text: parts[i], Reason: ReasonExtraSegment})
	}

	res.Hours, res.Minutes, res.Seconds = values[segHours], values[segMinutes], values[segSeconds]
	res.Total = float64(res.Hours)*60 + float64(res.Minutes) + float64(res.Seconds)/60
	if secs := res.totalSeconds(); secs >= maxDurationSeconds || secs <= -maxDurationSeconds {
		res.Warnings = append(res.Warnings, ParseWarning{Segment: segHours, Text: parts[segHours], Reason: ReasonOutOfRange})
	}
	return res
}

// ParseMinutes returns hours*60 + minutes + seconds/60 for H:M:S text, 0 for empty text
func ParseMinutes(text string) float64 {
	return Parse(text).Total
}

// ParseDuration is ParseMinutes as time.Duration
func ParseDuration(text string) time.Duration {
	return Parse(text).Duration()
}

// parseSegment reads the leading integer of s. Surrounding spaces and an optional sign are accepted,
// anything after the leading digits is dropped and reported.
func parseSegment(s string) (value int, reason string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ReasonMissing
	}

	start := 0
	if trimmed[0] == '+' || trimmed[0] == '-' {
		start = 1
	}
	end := start
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == start {
		return 0, ReasonNotNumber
	}

	v, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0, ReasonNotNumber // overflow
	}
	if end < len(trimmed) {
		return v, ReasonTrailingChars
	}
	return v, ""
}

// FormatSeconds renders a second count as HH:MM:SS. Each component is padded to two digits,
// hours are never truncated. A fractional part is dropped.
func FormatSeconds(totalSeconds float64) (string, error) {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		return "", fmt.Errorf("%w: %v seconds is not finite", ErrInvalidDuration, totalSeconds)
	}
	if totalSeconds < 0 {
		return "", fmt.Errorf("%w: %v seconds is negative", ErrInvalidDuration, totalSeconds)
	}
	if totalSeconds >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v seconds is out of range", ErrInvalidDuration, totalSeconds)
	}
	return formatClock(int64(totalSeconds)), nil
}

// FormatDuration renders whole seconds of d as HH:MM:SS
func FormatDuration(d time.Duration) (string, error) {
	if d < 0 {
		return "", fmt.Errorf("%w: %v is negative", ErrInvalidDuration, d)
	}
	return formatClock(int64(d / time.Second)), nil
}

func formatClock(total int64) string {
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
