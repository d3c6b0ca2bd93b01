package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the closed tag of a Scalar's shape.
type Kind int

const (
	KindMarker Kind = iota
	KindNull
	KindRemove
	KindNA
	KindBool
	KindNumber
	KindStr
	KindUri
	KindRef
	KindDatetime
	KindDate
	KindTime
	KindCoord
	KindXStr
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "Marker"
	case KindNull:
		return "Null"
	case KindRemove:
		return "Remove"
	case KindNA:
		return "NA"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindStr:
		return "Str"
	case KindUri:
		return "Uri"
	case KindRef:
		return "Ref"
	case KindDatetime:
		return "Datetime"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindCoord:
		return "Coord"
	case KindXStr:
		return "XStr"
	default:
		return "Unknown"
	}
}

// Ref is a Haystack reference: a uid with an optional quoted display name.
type Ref struct {
	UID        string
	Display    string
	HasDisplay bool
}

// Date is a dateless-of-time calendar date (no zone, no time-of-day).
type Date struct {
	Year, Month, Day int
}

// Time is a dateless time-of-day, to nanosecond precision.
type Time struct {
	Hour, Min, Sec, Nsec int
}

// Coord is a decimal-degree latitude/longitude pair.
type Coord struct {
	Lat, Lng float64
}

// Scalar is the tagged-variant Zinc value type. It is a single closed sum
// rather than an interface hierarchy: sentinel kinds (Marker, Null, Remove,
// NA) carry no payload, and every other kind uses exactly one of the
// payload fields below. Use the Kind method to discriminate and the
// matching accessor (Float64, StrVal, RefVal, ...) to read the payload.
type Scalar struct {
	kind Kind

	boolVal bool

	numFloat float64
	numInt   int64
	numIsInt bool
	unit     string

	str string // Str and Uri text, XStr raw value

	xstrKind string

	ref Ref

	dt   time.Time
	tz   string
	hasZ bool

	date Date
	tm   Time

	coord Coord
}

// Kind reports which variant this Scalar holds.
func (s Scalar) Kind() Kind { return s.kind }

// Marker is the presence sentinel (bare tag name in a dict).
func Marker() Scalar { return Scalar{kind: KindMarker} }

// Null is the distinct absence indicator ("N").
func Null() Scalar { return Scalar{kind: KindNull} }

// Remove is the tombstone sentinel ("R").
func Remove() Scalar { return Scalar{kind: KindRemove} }

// NA is the "not available" sentinel, distinct from Null.
func NA() Scalar { return Scalar{kind: KindNA} }

// Bool constructs a boolean scalar.
func Bool(v bool) Scalar { return Scalar{kind: KindBool, boolVal: v} }

// Int constructs an integer-valued Number with an optional unit.
func Int(v int64, unit string) Scalar {
	return Scalar{kind: KindNumber, numInt: v, numIsInt: true, unit: unit}
}

// Float constructs a floating-point Number with an optional unit.
func Float(v float64, unit string) Scalar {
	return Scalar{kind: KindNumber, numFloat: v, unit: unit}
}

// PosInf is the reserved "+Inf" Number sentinel.
func PosInf() Scalar { return Float(math.Inf(1), "") }

// NegInf is the "-Inf" Number sentinel (spec.md Open Question 1/2: this
// implementation fully supports it rather than panicking).
func NegInf() Scalar { return Float(math.Inf(-1), "") }

// NaN is the reserved "NaN" Number sentinel. Per IEEE-754, NaN != NaN; use
// Scalar.IsNaN to test for it rather than Equal.
func NaN() Scalar { return Float(math.NaN(), "") }

// Str constructs a string scalar. The text is already unescaped.
func Str(v string) Scalar { return Scalar{kind: KindStr, str: v} }

// Uri constructs a URI scalar from the content of a backtick literal.
func Uri(v string) Scalar { return Scalar{kind: KindUri, str: v} }

// NewRef constructs a reference scalar with no display name; use
// NewRefDisplay for one that carries a display name.
func NewRef(uid string) Scalar { return Scalar{kind: KindRef, ref: Ref{UID: uid}} }

// NewRefDisplay constructs a reference scalar with a display name.
func NewRefDisplay(uid, display string) Scalar {
	return Scalar{kind: KindRef, ref: Ref{UID: uid, Display: display, HasDisplay: true}}
}

// Datetime constructs a datetime scalar. tz is the bare timezone word
// following the ISO-8601 instant, or "" if absent.
func Datetime(instant time.Time, tz string) Scalar {
	return Scalar{kind: KindDatetime, dt: instant, tz: tz, hasZ: tz != ""}
}

// NewDate constructs a Date scalar (a calendar date with no time-of-day).
func NewDate(year, month, day int) Scalar {
	return Scalar{kind: KindDate, date: Date{Year: year, Month: month, Day: day}}
}

// NewTime constructs a Time scalar (a time-of-day with no date).
func NewTime(hour, min, sec, nsec int) Scalar {
	return Scalar{kind: KindTime, tm: Time{Hour: hour, Min: min, Sec: sec, Nsec: nsec}}
}

// NewCoord constructs a Coord scalar.
func NewCoord(lat, lng float64) Scalar {
	return Scalar{kind: KindCoord, coord: Coord{Lat: lat, Lng: lng}}
}

// NewXStr constructs an XStr scalar. The parser currently rejects these
// with Unsupported (spec.md §1); the constructor exists so the type is
// representable for callers building grids programmatically.
func NewXStr(kind, value string) Scalar {
	return Scalar{kind: KindXStr, xstrKind: kind, str: value}
}

// Bool accessors ------------------------------------------------------

// BoolVal returns the boolean payload; only valid when Kind() == KindBool.
func (s Scalar) BoolVal() bool { return s.boolVal }

// Number accessors ------------------------------------------------------

// Float64 returns the numeric payload as a float64.
func (s Scalar) Float64() float64 {
	if s.numIsInt {
		return float64(s.numInt)
	}
	return s.numFloat
}

// Int64 returns the numeric payload as an int64, truncating if it was
// parsed as a float.
func (s Scalar) Int64() int64 {
	if s.numIsInt {
		return s.numInt
	}
	return int64(s.numFloat)
}

// IsInt reports whether the Number was parsed as an integer literal
// (no '.' or exponent in its numeric prefix).
func (s Scalar) IsInt() bool { return s.numIsInt }

// Unit returns the Number's unit suffix, or "" if none.
func (s Scalar) Unit() string { return s.unit }

// IsNaN reports whether this Number is the IEEE-754 NaN sentinel.
func (s Scalar) IsNaN() bool { return s.kind == KindNumber && !s.numIsInt && math.IsNaN(s.numFloat) }

// Str/Uri accessors ------------------------------------------------------

// StrVal returns the Str or Uri text payload.
func (s Scalar) StrVal() string { return s.str }

// Ref accessors ------------------------------------------------------

// RefVal returns the Ref payload.
func (s Scalar) RefVal() Ref { return s.ref }

// Datetime accessors ------------------------------------------------------

// Time returns the instant payload for a Datetime scalar.
func (s Scalar) Time() time.Time { return s.dt }

// TZ returns the bare timezone word following a Datetime's instant, or ""
// if none was present.
func (s Scalar) TZ() string { return s.tz }

// HasTZ reports whether a timezone word was present.
func (s Scalar) HasTZ() bool { return s.hasZ }

// Date/Time partial accessors ------------------------------------------

// DateVal returns the Date payload.
func (s Scalar) DateVal() Date { return s.date }

// TimeVal returns the Time payload.
func (s Scalar) TimeVal() Time { return s.tm }

// Coord accessor ------------------------------------------------------

// CoordVal returns the Coord payload.
func (s Scalar) CoordVal() Coord { return s.coord }

// XStr accessors ------------------------------------------------------

// XStrKind returns the XStr type tag.
func (s Scalar) XStrKind() string { return s.xstrKind }

// String renders the scalar in canonical Zinc form, the same
// representation the emitter writes for a tag value (spec.md §4.5.4).
func (s Scalar) String() string {
	switch s.kind {
	case KindMarker:
		return "M"
	case KindNull:
		return "N"
	case KindRemove:
		return "R"
	case KindNA:
		return "NA"
	case KindBool:
		if s.boolVal {
			return "T"
		}
		return "F"
	case KindNumber:
		return s.numberString()
	case KindStr:
		return quoteZincStr(s.str)
	case KindUri:
		return "`" + s.str + "`"
	case KindRef:
		if s.ref.HasDisplay {
			return "@" + s.ref.UID + " " + strconv.Quote(s.ref.Display)
		}
		return "@" + s.ref.UID
	case KindDatetime:
		out := s.dt.Format(time.RFC3339Nano)
		if s.hasZ {
			out += " " + s.tz
		}
		return out
	case KindDate:
		return fmt.Sprintf("%04d-%02d-%02d", s.date.Year, s.date.Month, s.date.Day)
	case KindTime:
		if s.tm.Nsec == 0 {
			return fmt.Sprintf("%02d:%02d:%02d", s.tm.Hour, s.tm.Min, s.tm.Sec)
		}
		return fmt.Sprintf("%02d:%02d:%02d.%09d", s.tm.Hour, s.tm.Min, s.tm.Sec, s.tm.Nsec)
	case KindCoord:
		return fmt.Sprintf("C(%v,%v)", s.coord.Lat, s.coord.Lng)
	case KindXStr:
		return s.xstrKind + "(" + strconv.Quote(s.str) + ")"
	default:
		return "?"
	}
}

// quoteZincStr wraps s in double quotes for Zinc output. s may already hold
// pass-through escape sequences verbatim (backslash followed by one of
// b f n r t " $ ' ` \\, spec.md §9) the way the tokenizer leaves them; those
// are copied through as-is rather than re-escaped, so a parsed Str round
// trips without doubling its backslashes. A bare '"' not already part of
// such a pair (e.g. in a Str built programmatically, not by parsing) is
// escaped so the output stays a legal Zinc string literal.
func quoteZincStr(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\\' && i+1 < len(s) {
			b.WriteByte(ch)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if ch == '"' {
			b.WriteString(`\"`)
			continue
		}
		b.WriteByte(ch)
	}
	b.WriteByte('"')
	return b.String()
}

func (s Scalar) numberString() string {
	var out string
	switch {
	case !s.numIsInt && math.IsNaN(s.numFloat):
		out = "NaN"
	case !s.numIsInt && math.IsInf(s.numFloat, 1):
		out = "INF"
	case !s.numIsInt && math.IsInf(s.numFloat, -1):
		out = "-INF"
	case s.numIsInt:
		out = strconv.FormatInt(s.numInt, 10)
	default:
		out = strconv.FormatFloat(s.numFloat, 'g', -1, 64)
	}
	if s.unit != "" {
		out += s.unit
	}
	return out
}

// Equal reports whether two scalars hold the same kind and payload.
// Per IEEE-754, two NaN Numbers are never Equal; use IsNaN to test for
// NaN specifically (spec.md §8).
func (a Scalar) Equal(b Scalar) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindMarker, KindNull, KindRemove, KindNA:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		if a.numIsInt != b.numIsInt {
			return false
		}
		if a.unit != b.unit {
			return false
		}
		if a.numIsInt {
			return a.numInt == b.numInt
		}
		return a.numFloat == b.numFloat // NaN != NaN falls out naturally
	case KindStr, KindUri:
		return a.str == b.str
	case KindRef:
		return a.ref == b.ref
	case KindDatetime:
		return a.dt.Equal(b.dt) && a.tz == b.tz
	case KindDate:
		return a.date == b.date
	case KindTime:
		return a.tm == b.tm
	case KindCoord:
		return a.coord == b.coord
	case KindXStr:
		return a.xstrKind == b.xstrKind && a.str == b.str
	default:
		return false
	}
}

// IsMissing reports whether the scalar represents an absent value (Null or
// NA), the two distinct absence indicators spec.md §3 defines.
func (s Scalar) IsMissing() bool { return s.kind == KindNull || s.kind == KindNA }
