package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bacnetic/zinc/internal/model"
)

// Parser is a recursive-descent parser with a two-token lookahead (cur,
// peek) over a Tokenizer. It owns the tokenizer for its lifetime and
// fails fast: no error path returns a partial Grid.
type Parser struct {
	t    *Tokenizer
	cur  Token
	peek Token
}

// NewParser primes cur/peek from t.
func NewParser(t *Tokenizer) (*Parser, error) {
	p := &Parser{t: t}
	if err := p.prime(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) prime() error {
	var err error
	p.cur, err = p.t.Next()
	if err != nil {
		return err
	}
	p.peek, err = p.t.Next()
	return err
}

func (p *Parser) advance() error {
	p.cur = p.peek
	var err error
	p.peek, err = p.t.Next()
	return err
}

// ParseGrid runs the full grid production and returns a built Grid.
func (p *Parser) ParseGrid() (*model.Grid, error) {
	version, meta, err := p.parseGridHeader()
	if err != nil {
		return nil, err
	}
	b := model.NewGridBuilder(version)
	b.AddMeta(meta)

	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	if err := p.parseColspecs(b); err != nil {
		return nil, err
	}
	if err := p.parseRows(b); err != nil {
		return nil, err
	}
	return b.Build()
}

func (p *Parser) parseGridHeader() (int, *model.Dict, error) {
	raw, err := p.parseDictTags()
	if err != nil {
		return 0, nil, err
	}
	verScalar, ok := raw.Get("ver")
	if !ok {
		return 0, nil, parseErr(p.cur.Line, "", fmt.Errorf("grid-info missing required ver tag"))
	}
	if verScalar.Kind() != model.KindStr {
		return 0, nil, parseErr(p.cur.Line, "ver", fmt.Errorf("ver tag must be a string"))
	}
	var version int
	switch verScalar.StrVal() {
	case "2.0":
		version = 2
	case "3.0":
		version = 3
	default:
		return 0, nil, parseErr(p.cur.Line, verScalar.StrVal(), fmt.Errorf("unsupported zinc version"))
	}

	if _, hasErr := raw.Get("err"); hasErr {
		return 0, nil, p.buildErrorGridError(raw)
	}

	meta := model.NewDict()
	for _, k := range raw.Keys() {
		if k == "ver" {
			continue
		}
		v, _ := raw.Get(k)
		meta.Set(k, v)
	}
	return version, meta, nil
}

func (p *Parser) buildErrorGridError(info *model.Dict) *model.ZincError {
	msg := "grid-info carries err tag"
	if dis, ok := info.Get("dis"); ok && dis.Kind() == model.KindStr {
		msg = dis.StrVal()
	}
	var cause error = fmt.Errorf("%s", msg)
	if trace, ok := info.Get("errTrace"); ok && trace.Kind() == model.KindStr {
		cause = fmt.Errorf("%s: %s", msg, trace.StrVal())
	}
	return model.NewError(model.ErrorGrid, p.cur.Line, "err", cause)
}

// parseDictTags parses `ID [":" value]` repeatedly, stopping at any token
// that cannot start another tag (Newline, Eof, Comma).
func (p *Parser) parseDictTags() (*model.Dict, error) {
	d := model.NewDict()
	for p.cur.Kind == TId {
		name := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == TColon {
			if err := p.advance(); err != nil {
				return nil, err
			}
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			d.Set(name, val)
		} else {
			d.Set(name, model.Marker())
		}
	}
	return d, nil
}

func (p *Parser) expectNewline() error {
	if p.cur.Kind != TNewline {
		return parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("expected newline"))
	}
	return p.advance()
}

func (p *Parser) parseColspecs(b *model.GridBuilder) error {
	count := 0
	for {
		if p.cur.Kind != TId {
			return parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("expected column name"))
		}
		name := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return err
		}
		meta, err := p.parseDictTags()
		if err != nil {
			return err
		}
		if err := b.AddCol(name, meta); err != nil {
			return err
		}
		count++
		if p.cur.Kind == TComma {
			if err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	if count == 0 {
		return parseErr(p.cur.Line, "", fmt.Errorf("grid has no columns"))
	}
	return p.expectNewline()
}

func (p *Parser) parseRows(b *model.GridBuilder) error {
	for p.cur.Kind != TEOF {
		if p.cur.Kind == TNewline {
			return p.advance() // blank line terminates the row section
		}
		row, err := p.parseRow()
		if err != nil {
			return err
		}
		if err := b.AddRow(row); err != nil {
			return err
		}
		switch p.cur.Kind {
		case TNewline:
			if err := p.advance(); err != nil {
				return err
			}
		case TEOF:
			return nil
		default:
			return parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("expected newline after row"))
		}
	}
	return nil
}

func (p *Parser) parseRow() ([]model.Scalar, error) {
	var cells []model.Scalar
	for {
		cell, err := p.parseCell()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
		if p.cur.Kind == TComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return cells, nil
}

func (p *Parser) parseCell() (model.Scalar, error) {
	switch p.cur.Kind {
	case TComma, TNewline, TEOF:
		return model.Null(), nil
	default:
		return p.parseValue()
	}
}

func (p *Parser) parseValue() (model.Scalar, error) {
	switch p.cur.Kind {
	case TReserved:
		return p.parseReserved()
	case TNumber:
		return p.parseNumber()
	case TRef:
		return p.parseRef()
	case TString:
		s := model.Str(p.cur.Lexeme)
		return s, p.advance()
	case TUri:
		s := model.Uri(p.cur.Lexeme)
		return s, p.advance()
	case TCoord:
		return p.parseCoord()
	case TDate:
		return p.parseDate()
	case TTime:
		return p.parseTime()
	case TDatetime:
		return p.parseDatetime()
	case TMinus:
		return p.parseNegInf()
	case TLBracket:
		return model.Scalar{}, unsupportedErr(p.cur.Line, p.cur.Lexeme, errNestedList)
	case TLBrace:
		return model.Scalar{}, unsupportedErr(p.cur.Line, p.cur.Lexeme, errNestedDict)
	case TXStr:
		return model.Scalar{}, unsupportedErr(p.cur.Line, p.cur.Lexeme, errXStr)
	case TDoubleLt:
		return model.Scalar{}, unsupportedErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("nested grid values"))
	default:
		return model.Scalar{}, parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("unexpected token in value position"))
	}
}

func (p *Parser) parseReserved() (model.Scalar, error) {
	var s model.Scalar
	switch p.cur.Lexeme {
	case "Null":
		s = model.Null()
	case "Marker":
		s = model.Marker()
	case "Remove":
		s = model.Remove()
	case "Na":
		s = model.NA()
	case "NaN":
		s = model.NaN()
	case "True":
		s = model.Bool(true)
	case "False":
		s = model.Bool(false)
	case "+Inf":
		s = model.PosInf()
	default:
		return model.Scalar{}, parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("unknown reserved sentinel"))
	}
	return s, p.advance()
}

// parseNegInf handles the "- INF" two-token combination (spec.md §4.3
// tie-break: a Minus followed by the +Inf sentinel is -Inf).
func (p *Parser) parseNegInf() (model.Scalar, error) {
	if p.peek.Kind != TReserved || p.peek.Lexeme != "+Inf" {
		return model.Scalar{}, parseErr(p.cur.Line, p.cur.Lexeme, fmt.Errorf("unexpected '-' in value position"))
	}
	if err := p.advance(); err != nil { // consume Minus
		return model.Scalar{}, err
	}
	if err := p.advance(); err != nil { // consume +Inf
		return model.Scalar{}, err
	}
	return model.NegInf(), nil
}

func isHexLiteral(lexeme string) bool {
	if len(lexeme) < 3 || lexeme[0] != '0' || (lexeme[1] != 'x' && lexeme[1] != 'X') {
		return false
	}
	for _, ch := range lexeme[2:] {
		if !isHexDigit(ch) {
			return false
		}
	}
	return true
}

func (p *Parser) parseNumber() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	line := p.cur.Line
	if isHexLiteral(lexeme) {
		return model.Scalar{}, unsupportedErr(line, lexeme, errHexLiteral)
	}
	ui := p.cur.UnitIndex
	numPart := lexeme
	unit := ""
	if ui > 0 && ui <= len(lexeme) {
		numPart = lexeme[:ui]
		unit = lexeme[ui:]
	}
	isFloat := strings.ContainsAny(numPart, ".eE")
	var s model.Scalar
	if isFloat {
		f, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return model.Scalar{}, parseErr(line, lexeme, err)
		}
		s = model.Float(f, unit)
	} else {
		i, err := strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return model.Scalar{}, parseErr(line, lexeme, err)
		}
		s = model.Int(i, unit)
	}
	return s, p.advance()
}

func (p *Parser) parseRef() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	spaceIdx := strings.IndexByte(lexeme, ' ')
	if spaceIdx < 0 {
		return model.NewRef(lexeme), p.advance()
	}
	uid := lexeme[:spaceIdx]
	displayQuoted := lexeme[spaceIdx+1:]
	display := strings.TrimSuffix(strings.TrimPrefix(displayQuoted, "\""), "\"")
	return model.NewRefDisplay(uid, display), p.advance()
}

func (p *Parser) parseCoord() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	line := p.cur.Line
	inner := strings.TrimSuffix(strings.TrimPrefix(lexeme, "C("), ")")
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return model.Scalar{}, parseErr(line, lexeme, fmt.Errorf("malformed coord"))
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return model.Scalar{}, parseErr(line, lexeme, err)
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.Scalar{}, parseErr(line, lexeme, err)
	}
	return model.NewCoord(lat, lng), p.advance()
}

func (p *Parser) parseDate() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	line := p.cur.Line
	var y, m, d int
	if _, err := fmt.Sscanf(lexeme, "%04d-%02d-%02d", &y, &m, &d); err != nil {
		return model.Scalar{}, parseErr(line, lexeme, err)
	}
	return model.NewDate(y, m, d), p.advance()
}

func (p *Parser) parseTime() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	line := p.cur.Line
	timePart := lexeme
	if idx := strings.IndexByte(lexeme, ' '); idx >= 0 {
		timePart = lexeme[:idx]
	}
	var h, mi, sec, nsec int
	if strings.Contains(timePart, ".") {
		whole := strings.SplitN(timePart, ".", 2)
		if _, err := fmt.Sscanf(whole[0], "%02d:%02d:%02d", &h, &mi, &sec); err != nil {
			return model.Scalar{}, parseErr(line, lexeme, err)
		}
		frac := whole[1]
		for len(frac) < 9 {
			frac += "0"
		}
		fmt.Sscanf(frac[:9], "%09d", &nsec)
	} else if _, err := fmt.Sscanf(timePart, "%02d:%02d:%02d", &h, &mi, &sec); err != nil {
		return model.Scalar{}, parseErr(line, lexeme, err)
	}
	return model.NewTime(h, mi, sec, nsec), p.advance()
}

func (p *Parser) parseDatetime() (model.Scalar, error) {
	lexeme := p.cur.Lexeme
	line := p.cur.Line
	instantPart := lexeme
	tz := ""
	if idx := strings.IndexByte(lexeme, ' '); idx >= 0 {
		instantPart = lexeme[:idx]
		tz = lexeme[idx+1:]
	}
	instant, err := time.Parse(time.RFC3339Nano, instantPart)
	if err != nil {
		return model.Scalar{}, parseErr(line, lexeme, err)
	}
	return model.Datetime(instant, tz), p.advance()
}

// Parse parses a complete Zinc document from an in-memory string.
func Parse(text string) (*model.Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader parses a complete Zinc document from r. An underlying read
// failure surfaces as an IoError.
func ParseReader(r io.Reader) (*model.Grid, error) {
	cursor := NewCharCursor(r)
	p, err := NewParser(NewTokenizer(cursor))
	if err != nil {
		return nil, wrapIOIfNeeded(cursor, err)
	}
	g, err := p.ParseGrid()
	if err != nil {
		return nil, wrapIOIfNeeded(cursor, err)
	}
	return g, nil
}

func wrapIOIfNeeded(c *CharCursor, err error) error {
	if ioErr := c.Err(); ioErr != nil {
		return model.NewError(model.IoError, c.Line(), "", ioErr)
	}
	return err
}
