package compiler

// Lexer holds all mutable state for a single scanning pass over src.
// Scanning is byte-oriented: positions count bytes, which keeps Offset in
// step with the raw source even when commentary contains multi-byte runes.
type Lexer struct {
	src  string
	pos  int // index of the next byte to consume
	line int // current 1-based source line
	col  int // current 1-based column within the line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// advance consumes one byte and returns it together with the position it
// occupied.
func (l *Lexer) advance() (byte, Position) {
	b := l.src[l.pos]
	pos := Position{Line: l.line, Col: l.col, Offset: l.pos + 1}
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b, pos
}

// Lex scans src and returns the command tokens in source order. Every byte
// that is not one of the eight command glyphs is commentary and produces no
// token, so lexing never fails; the empty program is a valid (nil) result.
func Lex(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for l.pos < len(l.src) {
		b, pos := l.advance()
		if cmd, ok := commandForGlyph(b); ok {
			tokens = append(tokens, Token{Cmd: cmd, Pos: pos})
		}
	}
	return tokens
}
