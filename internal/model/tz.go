package model

import (
	"strconv"
	"strings"
	"time"
)

// haystackTZAreas are the IANA area prefixes tried, in order, when
// resolving a bare Haystack zone word like "Los_Angeles" or "Denver" that
// carries no area of its own (spec.md §3 invariant 5).
var haystackTZAreas = []string{
	"", "America/", "Europe/", "Asia/", "Africa/", "Australia/",
	"Pacific/", "Atlantic/", "Indian/", "Antarctica/", "Arctic/",
}

// Zone resolves a Datetime's bare timezone word against the IANA tz
// database, trying common area prefixes in turn, and handles the
// GMT±N extension by building a fixed-offset location directly. It is
// only meaningful when HasTZ reports true.
func (s Scalar) Zone() (*time.Location, error) {
	word := s.tz
	if word == "" {
		return time.UTC, nil
	}
	if loc, ok := parseGMTOffset(word); ok {
		return loc, nil
	}
	var lastErr error
	for _, area := range haystackTZAreas {
		loc, err := time.LoadLocation(area + word)
		if err == nil {
			return loc, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// parseGMTOffset handles words of the form "GMT", "GMT+10", "GMT-10". Per
// the IANA Etc/GMT±N convention Haystack follows here, the sign is inverted
// from its everyday reading: "GMT-10" names the zone that is 10 hours AHEAD
// of UTC (spec.md §8 S4 pairs the instant offset "+10:00" with tz "GMT-10").
func parseGMTOffset(word string) (*time.Location, bool) {
	if word == "GMT" || word == "UTC" {
		return time.FixedZone(word, 0), true
	}
	if !strings.HasPrefix(word, "GMT") {
		return nil, false
	}
	rest := word[len("GMT"):]
	if rest == "" {
		return nil, false
	}
	sign := 1
	switch rest[0] {
	case '+':
		sign = -1
		rest = rest[1:]
	case '-':
		rest = rest[1:]
	default:
		return nil, false
	}
	hours, err := strconv.Atoi(rest)
	if err != nil {
		return nil, false
	}
	return time.FixedZone(word, sign*hours*3600), true
}
