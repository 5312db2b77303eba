// Package datemath resolves reminder target dates. It accepts
// absolute "2006-01-02" dates and a small set of relative phrases
// ("today", "tomorrow", "in 3 days", "next monday").
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const absoluteFormat = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts date strings, absolute or relative, to time.Time
// values anchored in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone
// string, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a date string against baseTime (usually time.Now()).
// The result is always midnight of the target day in the parser's
// timezone. Unrecognized input is an error, not silently today.
func (p *Parser) Parse(input string, baseTime time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if t, err := time.ParseInLocation(absoluteFormat, s, p.location); err == nil {
		return t, nil
	}

	switch s {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, baseTime)
	}
	if strings.HasPrefix(s, "next ") {
		return p.parseNextWeekday(s, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", input)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(s string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", s)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday" through "next sunday". The
// result is always in the future, never baseTime's own day.
func (p *Parser) parseNextWeekday(s string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(s, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
