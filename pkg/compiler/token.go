package compiler

import "fmt"

// Command identifies one of the eight primitive operations of the language.
type Command byte

const (
	OpRight Command = iota // '>' move the data pointer one cell to the right
	OpLeft                 // '<' move the data pointer one cell to the left
	OpInc                  // '+' increment the byte at the data pointer
	OpDec                  // '-' decrement the byte at the data pointer
	OpOut                  // '.' write the byte at the data pointer to output
	OpIn                   // ',' read one byte of input into the cell at the data pointer
	OpOpen                 // '[' if the cell is zero, jump past the matching ']'
	OpClose                // ']' if the cell is nonzero, jump back behind the matching '['
)

// commandNames is indexed by Command.
var commandNames = [...]string{
	OpRight: "RIGHT",
	OpLeft:  "LEFT",
	OpInc:   "INC",
	OpDec:   "DEC",
	OpOut:   "OUT",
	OpIn:    "IN",
	OpOpen:  "OPEN",
	OpClose: "CLOSE",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// commandGlyphs is indexed by Command.
var commandGlyphs = [...]byte{
	OpRight: '>',
	OpLeft:  '<',
	OpInc:   '+',
	OpDec:   '-',
	OpOut:   '.',
	OpIn:    ',',
	OpOpen:  '[',
	OpClose: ']',
}

// Glyph returns the source character that spells the command.
func (c Command) Glyph() byte {
	if int(c) < len(commandGlyphs) {
		return commandGlyphs[c]
	}
	return '?'
}

// commandForGlyph maps a source byte to its Command. The second return is
// false for every byte that is not one of the eight command glyphs.
func commandForGlyph(b byte) (Command, bool) {
	switch b {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOut, true
	case ',':
		return OpIn, true
	case '[':
		return OpOpen, true
	case ']':
		return OpClose, true
	}
	return 0, false
}

// Position locates a token in the source text. Line and Col are 1-based and
// counted in bytes; Offset is the 1-based byte offset from the start of the
// source, so the first character of a file is Offset 1.
type Position struct {
	Line   int
	Col    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexed Command paired with the source position it was
// scanned at. Positions exist for error reporting only; the code generator
// discards them once jump targets are resolved.
type Token struct {
	Cmd Command
	Pos Position
}

func (t Token) String() string {
	return fmt.Sprintf("%-5s %c  %s", t.Cmd, t.Cmd.Glyph(), t.Pos)
}
