package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScalarZoneGMTOffsetSignIsInverted(t *testing.T) {
	instant := time.Date(2018, 3, 21, 15, 45, 0, 0, time.UTC)
	s := Datetime(instant, "GMT-10")
	loc, err := s.Zone()
	if err != nil {
		t.Fatalf("Zone() error: %v", err)
	}
	_, offset := instant.In(loc).Zone()
	assert.Equal(t, 10*3600, offset, "GMT-10 names the zone 10 hours ahead of UTC, matching the +10:00 instant offset in spec.md S4")
}

func TestScalarZonePlainOffset(t *testing.T) {
	instant := time.Now().UTC()
	loc, err := Datetime(instant, "GMT+5").Zone()
	if err != nil {
		t.Fatalf("Zone() error: %v", err)
	}
	_, offset := instant.In(loc).Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestScalarZoneAreaPrefixSearch(t *testing.T) {
	loc, err := Datetime(time.Now(), "Los_Angeles").Zone()
	if err != nil {
		t.Fatalf("Zone() error: %v", err)
	}
	assert.Equal(t, "America/Los_Angeles", loc.String())
}

func TestScalarZoneNoTZIsUTC(t *testing.T) {
	loc, err := Datetime(time.Now(), "").Zone()
	if err != nil {
		t.Fatalf("Zone() error: %v", err)
	}
	assert.Equal(t, time.UTC, loc)
}
