package codec

import (
	"errors"

	"github.com/bacnetic/zinc/internal/model"
)

var (
	errUnterminatedString = errors.New("unterminated string literal")
	errUnknownEscape      = errors.New("unknown escape sequence")
	errUnterminatedURI    = errors.New("unterminated uri literal")
	errMalformedCoord     = errors.New("malformed coord literal")
	errUnknownReserved    = errors.New("unrecognized reserved word")
	errUnexpectedSymbol   = errors.New("unexpected symbol")
	errHexLiteral         = errors.New("hexadecimal numeric literals")
	errNestedList         = errors.New("list values")
	errNestedDict         = errors.New("inline dict values")
	errXStr               = errors.New("xstr values")
)

func scanErr(line int, lexeme string, cause error) *model.ZincError {
	return model.NewError(model.ScanError, line, lexeme, cause)
}

func parseErr(line int, lexeme string, cause error) *model.ZincError {
	return model.NewError(model.ParseError, line, lexeme, cause)
}

func unsupportedErr(line int, lexeme string, cause error) *model.ZincError {
	return model.NewError(model.Unsupported, line, lexeme, cause)
}
