// Package codec turns a byte stream into a Grid. It is organized as three
// pull-based layers, each consumed by the one above it: CharCursor (rune
// lookahead), Tokenizer (token stream), and Parser (recursive descent,
// consuming tokens two at a time via its own cur/peek fields). Emitting a
// Grid back to Zinc text is done by methods on model.Grid, not here.
//
// What: CharCursor, Token/Tokenizer, Parser.
// How: single-threaded, synchronous, pull-based — a call to Parse blocks
// until the stream is exhausted or an error surfaces.
// Why: the source format is line-oriented and context-sensitive (numbers,
// dates, and datetimes share a scan path); a cursor-based scanner makes the
// lookahead explicit instead of hiding it in regex backtracking.
package codec

import (
	"bufio"
	"io"
)

// EOF is the sentinel rune CharCursor reports once the stream is exhausted
// or has failed.
const EOF rune = -1

// CharCursor exposes one rune of lookahead (Cur, Peek) over a UTF-8 byte
// stream and tracks the current line number. An \r\n pair advances the
// line counter once (spec-mandated CRLF handling).
type CharCursor struct {
	r    *bufio.Reader
	cur  rune
	peek rune
	line int
	err  error
}

// NewCharCursor wraps r and primes the first two runes.
func NewCharCursor(r io.Reader) *CharCursor {
	c := &CharCursor{r: bufio.NewReader(r), line: 1}
	c.cur = c.readRune()
	c.peek = c.readRune()
	return c
}

func (c *CharCursor) readRune() rune {
	if c.err != nil {
		return EOF
	}
	ch, _, err := c.r.ReadRune()
	if err != nil {
		c.err = err
		return EOF
	}
	return ch
}

// Cur returns the current rune, or EOF.
func (c *CharCursor) Cur() rune { return c.cur }

// Peek returns the rune after the current one, or EOF.
func (c *CharCursor) Peek() rune { return c.peek }

// Line returns the 1-based line number of the current rune.
func (c *CharCursor) Line() int { return c.line }

// Err returns the underlying read error, if advancing past the stream's
// end was caused by one rather than a clean EOF.
func (c *CharCursor) Err() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}

// Advance shifts peek into cur and reads the next rune into peek.
func (c *CharCursor) Advance() {
	if c.cur == '\n' {
		c.line++
	}
	c.cur = c.peek
	c.peek = c.readRune()
}
