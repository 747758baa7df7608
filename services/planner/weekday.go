package planner

import (
	"strconv"
	"strings"
	"time"
)

// TokenKind tags the shape of a weekday descriptor.
type TokenKind int

const (
	TokenNamed TokenKind = iota + 1
	TokenNumeric
	TokenRange
)

// WeekdayToken is one parsed weekday descriptor. Start is the day for Named
// and Numeric tokens; Range tokens also carry End.
type WeekdayToken struct {
	Kind  TokenKind
	Start time.Weekday
	End   time.Weekday
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWeekdayToken classifies s. The second result is false when s is not a
// recognisable day, number or range.
func ParseWeekdayToken(s string) (WeekdayToken, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WeekdayToken{}, false
	}
	if i := strings.Index(s, "-"); i > 0 {
		start, ok := parseSingleDay(s[:i])
		if !ok {
			return WeekdayToken{}, false
		}
		end, ok := parseSingleDay(s[i+1:])
		if !ok {
			return WeekdayToken{}, false
		}
		return WeekdayToken{Kind: TokenRange, Start: start.Start, End: end.Start}, true
	}
	return parseSingleDay(s)
}

func parseSingleDay(s string) (WeekdayToken, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	if d, ok := weekdayNames[s]; ok {
		return WeekdayToken{Kind: TokenNamed, Start: d, End: d}, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 7 {
		return WeekdayToken{}, false
	}
	d := time.Weekday(n % 7)
	return WeekdayToken{Kind: TokenNumeric, Start: d, End: d}, true
}

// Days expands the token. Ranges walk forward modulo 7 so "Sat-Mon" wraps.
func (t WeekdayToken) Days() []time.Weekday {
	switch t.Kind {
	case TokenNamed, TokenNumeric:
		return []time.Weekday{t.Start}
	case TokenRange:
		days := []time.Weekday{t.Start}
		for d := t.Start; d != t.End; {
			d = (d + 1) % 7
			days = append(days, d)
		}
		return days
	}
	return nil
}

// WeekdaySet is a set of weekdays stored as a bitmask, bit 0 = Sunday.
type WeekdaySet uint8

// NewWeekdaySet builds a set from days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday && s&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsEmpty() bool { return s == 0 }

func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days lists members in Sunday..Saturday order.
func (s WeekdaySet) Days() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Allows reports whether d is bookable. An empty set places no restriction.
func (s WeekdaySet) Allows(d time.Weekday) bool {
	return s.IsEmpty() || s.Has(d)
}

// NormalizeWeekdays folds raw descriptors into a set. Unrecognised entries
// are skipped without error.
func NormalizeWeekdays(descriptors []string) WeekdaySet {
	var set WeekdaySet
	for _, raw := range descriptors {
		tok, ok := ParseWeekdayToken(raw)
		if !ok {
			continue
		}
		for _, d := range tok.Days() {
			set = set.With(d)
		}
	}
	return set
}
