package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for the two ways delimiter matching can fail. Callers test
// them with errors.Is; the source position travels on the wrapping
// ParseError.
var (
	ErrUnmatchedClose = errors.New("unmatched ']'")
	ErrUnmatchedOpen  = errors.New("unmatched '['")
)

// ParseError reports a structural error at a specific source position.
type ParseError struct {
	Pos     Position
	Snippet string // trimmed source line containing the offending glyph
	Err     error  // ErrUnmatchedClose or ErrUnmatchedOpen
}

func (e *ParseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("line %d: %v", e.Pos.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v\n  |> %s", e.Pos.Line, e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser validates the structural well-formedness of a token sequence.
type Parser struct {
	tokens      []Token
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps cause with the source line where the token appears.
func (p *Parser) fmtError(tok Token, cause error) error {
	lineIdx := tok.Pos.Line - 1 // lines are 1-based
	snippet := ""
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}
	return &ParseError{Pos: tok.Pos, Snippet: snippet, Err: cause}
}

// parse walks the tokens once with an explicit stack of '[' indices, so loop
// nesting depth is bounded by available memory rather than stack frames.
func (p *Parser) parse() error {
	var open []int // indices of '[' tokens not yet closed
	for i, tok := range p.tokens {
		switch tok.Cmd {
		case OpOpen:
			open = append(open, i)
		case OpClose:
			if len(open) == 0 {
				return p.fmtError(tok, ErrUnmatchedClose)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		// Report the innermost delimiter still waiting for its ']'.
		top := p.tokens[open[len(open)-1]]
		return p.fmtError(top, ErrUnmatchedOpen)
	}
	return nil
}

// Parse checks that every ']' closes an earlier '[' and that every '[' is
// closed by the end of input. It is a pure validation gate: on success the
// token sequence is returned unchanged for the code generator. src is the
// raw source Lex scanned, used to quote the offending line in errors.
func Parse(tokens []Token, src string) ([]Token, error) {
	if err := NewParser(tokens, src).parse(); err != nil {
		return nil, err
	}
	return tokens, nil
}
