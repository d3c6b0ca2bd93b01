package codec

// TokenKind is the closed set of lexical token categories the tokenizer
// produces.
type TokenKind int

const (
	TEOF TokenKind = iota
	TNewline
	TComma
	TColon
	TSemicolon
	TLBracket
	TRBracket
	TLBrace
	TRBrace
	TLParen
	TRParen
	TLt
	TLtEq
	TDoubleLt
	TGt
	TGtEq
	TDoubleGt
	TArrow
	TMinus
	TEq
	TNotEq
	TAssign
	TBang
	TSlash
	TId
	TReserved
	TString
	TRef
	TDate
	TTime
	TDatetime
	TCoord
	TUri
	TXStr
	TNumber
)

var tokenKindNames = map[TokenKind]string{
	TEOF: "Eof", TNewline: "Newline", TComma: "Comma", TColon: "Colon",
	TSemicolon: "Semicolon", TLBracket: "LBracket", TRBracket: "RBracket",
	TLBrace: "LBrace", TRBrace: "RBrace", TLParen: "LParen", TRParen: "RParen",
	TLt: "Lt", TLtEq: "LtEq", TDoubleLt: "DoubleLt", TGt: "Gt", TGtEq: "GtEq",
	TDoubleGt: "DoubleGt", TArrow: "Arrow", TMinus: "Minus", TEq: "Eq",
	TNotEq: "NotEq", TAssign: "Assign", TBang: "Bang", TSlash: "Slash",
	TId: "Id", TReserved: "Reserved", TString: "String", TRef: "Ref",
	TDate: "Date", TTime: "Time", TDatetime: "Datetime", TCoord: "Coord",
	TUri: "Uri", TXStr: "XStr", TNumber: "Number",
}

func (k TokenKind) String() string {
	if n, ok := tokenKindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Token is one lexical unit. Lexeme holds the raw or decoded text depending
// on kind (string, ref display and URI bodies keep backslash escapes
// verbatim and decode \uXXXX; see scanString and scanURI); UnitIndex is
// meaningful only for
// TNumber, naming the byte offset in Lexeme where a unit suffix begins (0
// when there is none).
type Token struct {
	Kind      TokenKind
	Lexeme    string
	Line      int
	UnitIndex int
}
