package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScalarEqualNaNNeverEqual(t *testing.T) {
	a := NaN()
	b := NaN()
	if a.Equal(b) {
		t.Fatalf("NaN.Equal(NaN) must be false per IEEE-754")
	}
	if !a.IsNaN() || !b.IsNaN() {
		t.Fatalf("IsNaN should report true for both NaN scalars")
	}
}

func TestScalarIsMissing(t *testing.T) {
	cases := []struct {
		name string
		s    Scalar
		want bool
	}{
		{"null", Null(), true},
		{"na", NA(), true},
		{"marker", Marker(), false},
		{"remove", Remove(), false},
		{"bool", Bool(true), false},
		{"int", Int(3, ""), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.s.IsMissing())
		})
	}
}

func TestScalarStringNumberVariants(t *testing.T) {
	cases := []struct {
		name string
		s    Scalar
		want string
	}{
		{"int", Int(42, ""), "42"},
		{"float unit", Float(98.6, "°F"), "98.6°F"},
		{"posinf", PosInf(), "INF"},
		{"neginf", NegInf(), "-INF"},
		{"nan", NaN(), "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.s.String())
		})
	}
}

func TestScalarStringQuotesStr(t *testing.T) {
	if got := Str(`hi "there"`).String(); got != `"hi \"there\""` {
		t.Fatalf("Str.String() = %q, want escaped quoted form", got)
	}
}

func TestScalarStringPreservesPassthroughEscapeOnReEmit(t *testing.T) {
	// Simulates what the tokenizer hands the parser for `"line1\nend"`:
	// the backslash-n stays a literal two-character sequence in the Str
	// payload (spec.md §9), so re-emitting it must not double the
	// backslash the way strconv.Quote would.
	s := Str(`line1\nend`)
	want := `"line1\nend"`
	if got := s.String(); got != want {
		t.Fatalf("String() = %q, want %q (backslash must not be doubled)", got, want)
	}
}

func TestScalarRefPrintedForm(t *testing.T) {
	assert.Equal(t, "@abc-123", NewRef("abc-123").String())
	assert.Equal(t, `@abc-123 "Meter A"`, NewRefDisplay("abc-123", "Meter A").String())
}

func TestScalarDatetimeWithZone(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	s := Datetime(instant, "Los_Angeles")
	if !s.HasTZ() || s.TZ() != "Los_Angeles" {
		t.Fatalf("expected zone word to round trip")
	}
}

func TestScalarEqualIgnoresUnrelatedFields(t *testing.T) {
	a := NewDate(2024, 1, 1)
	b := NewDate(2024, 1, 1)
	c := NewDate(2024, 1, 2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestScalarIntAndFloatNumberNeverEqual(t *testing.T) {
	assert.False(t, Int(1, "").Equal(Float(1, "")))
}

func TestScalarNumberFloatPayload(t *testing.T) {
	f := Float(3.5, "")
	if f.IsInt() {
		t.Fatalf("Float scalar must report IsInt() == false")
	}
	if math.Abs(f.Float64()-3.5) > 1e-9 {
		t.Fatalf("Float64() = %v, want 3.5", f.Float64())
	}
}
