package compiler

import (
	"fmt"
	"strings"
)

// Unparse converts tokens back to canonical source text: one glyph per
// command with all commentary stripped. Lexing the result reproduces the
// same command sequence.
func Unparse(tokens []Token) string {
	var b strings.Builder
	b.Grow(len(tokens))
	for _, t := range tokens {
		b.WriteByte(t.Cmd.Glyph())
	}
	return b.String()
}

// Listing renders prog as a human-readable table, one instruction per line,
// with resolved jump targets annotated on the loop delimiters. The CLI's
// -dump flag prints this instead of executing.
func Listing(prog Program) string {
	var b strings.Builder
	for i, in := range prog {
		switch in.Cmd {
		case OpOpen, OpClose:
			fmt.Fprintf(&b, "%04d  %-5s %c  -> %04d\n", i, in.Cmd, in.Cmd.Glyph(), in.Target)
		default:
			fmt.Fprintf(&b, "%04d  %-5s %c\n", i, in.Cmd, in.Cmd.Glyph())
		}
	}
	return b.String()
}
