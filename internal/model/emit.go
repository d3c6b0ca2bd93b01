package model

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// ToZinc renders the grid as Zinc text (spec.md §4.5).
func (g *Grid) ToZinc() (string, error) {
	var b strings.Builder
	if err := g.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteZinc creates or truncates path and writes the grid to it as UTF-8
// Zinc text.
func (g *Grid) WriteZinc(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewError(IoError, 0, path, err)
	}
	defer f.Close()
	return g.WriteTo(f)
}

// WriteTo writes the grid to w in Zinc text form. Emission is infallible
// given a valid Grid unless the sink itself fails, in which case the
// write error is wrapped as an IoError.
func (g *Grid) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("ver:" + strconv.Quote(versionString(g.version))); err != nil {
		return ioErr(err)
	}
	if g.meta.Len() > 0 {
		if _, err := bw.WriteString(" " + g.meta.String()); err != nil {
			return ioErr(err)
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return ioErr(err)
	}

	for i, col := range g.columns {
		if i > 0 {
			if _, err := bw.WriteString(","); err != nil {
				return ioErr(err)
			}
		}
		if _, err := bw.WriteString(col.Name); err != nil {
			return ioErr(err)
		}
		if col.Meta.Len() > 0 {
			if _, err := bw.WriteString(" " + col.Meta.String()); err != nil {
				return ioErr(err)
			}
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return ioErr(err)
	}

	for _, row := range g.rows {
		for i, cell := range row {
			if i > 0 {
				if _, err := bw.WriteString(","); err != nil {
					return ioErr(err)
				}
			}
			if _, err := bw.WriteString(cellString(cell)); err != nil {
				return ioErr(err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return ioErr(err)
		}
	}

	return ioErr(bw.Flush())
}

func versionString(v int) string {
	return strconv.Itoa(v) + ".0"
}

// cellString renders a single row cell. Strings print raw and unquoted at
// row level (spec.md §4.5 step 3); every other kind uses its own Scalar
// canonical form, which already carries any unit suffix the cell holds.
func cellString(s Scalar) string {
	switch {
	case s.IsMissing():
		return ""
	case s.Kind() == KindStr:
		return s.StrVal()
	default:
		return s.String()
	}
}

func ioErr(err error) error {
	if err == nil {
		return nil
	}
	return NewError(IoError, 0, "", err)
}
