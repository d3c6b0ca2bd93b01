// Package zinc reads and writes Project Haystack's Zinc text format: a
// compact, line-oriented serialization of a Grid (tabular data plus
// grid-level and per-column metadata). It is built for embedding in
// data-ingest and analytics tools that consume time-series telemetry from
// building-automation gateways.
//
// # Basic usage
//
// Parse a Zinc document and read it back:
//
//	g, err := zinc.Parse(`ver:"3.0"
//	ts,v0
//	2024-01-01T00:00:00+00:00 UTC,68.5
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range g.Rows() {
//	    fmt.Println(row)
//	}
//
// # Reading from a stream or file
//
//	g, err := zinc.Read(r)
//	g, err := zinc.ReadFile("export.zinc")
//
// # Writing
//
//	text, err := g.ToZinc()
//	err = g.WriteZinc("export.zinc")
//
// # Errors
//
// Every failure is a *zinc.Error carrying a closed Kind (IoError,
// ScanError, ParseError, ErrorGrid, Unsupported), the offending line, and
// lexeme where known. Use errors.As or zinc.KindOf to inspect it.
package zinc

import (
	"io"
	"os"

	"github.com/bacnetic/zinc/internal/codec"
	"github.com/bacnetic/zinc/internal/model"
)

// Grid is the immutable result of a successful parse.
type Grid = model.Grid

// ColumnInfo pairs a column name with its metadata dict.
type ColumnInfo = model.ColumnInfo

// Dict is an insertion-ordered tag name -> Scalar mapping.
type Dict = model.Dict

// Scalar is the tagged-variant Zinc value type.
type Scalar = model.Scalar

// Kind discriminates a Scalar's variant.
type Kind = model.Kind

// Ref, Date, Time, and Coord are the structured payloads of the
// corresponding Scalar kinds.
type (
	Ref   = model.Ref
	Date  = model.Date
	Time  = model.Time
	Coord = model.Coord
)

// Error is returned by every failed Parse/Read/ToZinc call.
type Error = model.ZincError

// ErrorKind is the closed set of error categories an Error can carry.
type ErrorKind = model.ErrorKind

const (
	IoError     = model.IoError
	ScanError   = model.ScanError
	ParseError  = model.ParseError
	ErrorGrid   = model.ErrorGrid
	Unsupported = model.Unsupported
)

// Scalar constructors re-exported for callers building grids
// programmatically rather than by parsing Zinc text.
var (
	Marker         = model.Marker
	Null           = model.Null
	Remove         = model.Remove
	NA             = model.NA
	Bool           = model.Bool
	Int            = model.Int
	Float          = model.Float
	PosInf         = model.PosInf
	NegInf         = model.NegInf
	NaN            = model.NaN
	Str            = model.Str
	Uri            = model.Uri
	NewRef         = model.NewRef
	NewRefDisplay  = model.NewRefDisplay
	Datetime       = model.Datetime
	NewDate        = model.NewDate
	NewTime        = model.NewTime
	NewCoord       = model.NewCoord
	NewXStr        = model.NewXStr
	NewDict        = model.NewDict
	NewGridBuilder = model.NewGridBuilder
	NewGridID      = model.NewGridID
)

// KindOf reports whether err is a *Error of the given kind. It unwraps
// through github.com/pkg/errors-style causes as well as the standard
// library's.
func KindOf(err error, kind ErrorKind) bool { return model.IsKind(err, kind) }

// Parse parses a complete Zinc document held in memory.
func Parse(text string) (*Grid, error) {
	return codec.Parse(text)
}

// Read parses a complete Zinc document from an opened byte stream.
func Read(r io.Reader) (*Grid, error) {
	return codec.ParseReader(r)
}

// ReadFile opens path and parses it as a Zinc document.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewError(model.IoError, 0, path, err)
	}
	defer f.Close()
	return codec.ParseReader(f)
}

// ToZinc renders g as Zinc text held in memory. It is a thin wrapper
// around (*Grid).ToZinc for callers who prefer a free function.
func ToZinc(g *Grid) (string, error) {
	return g.ToZinc()
}

// WriteZinc creates or truncates path and writes g to it as UTF-8 Zinc
// text. It is a thin wrapper around (*Grid).WriteZinc.
func WriteZinc(g *Grid, path string) error {
	return g.WriteZinc(path)
}
