package compiler

// Instruction is a Command plus, for OpOpen/OpClose only, the index of its
// structural counterpart in the flat program. Target is zero for the other
// six commands and must be ignored for them.
type Instruction struct {
	Cmd    Command
	Target int
}

// Program is the flat, randomly-addressable instruction sequence the machine
// executes. Its length is fixed once Generate returns; instructions are
// never rewritten afterwards.
type Program []Instruction

// Generate resolves loop delimiters into jump targets and emits the flat
// program, one instruction per token. Tokens must already have passed Parse;
// Generate trusts that precondition and performs no validation of its own.
//
// The pairing pass mirrors the parser's: push the emitted index of each '[',
// pop on ']', and point the two instructions at each other. Because the
// parser has proven balance, the stack can neither underflow nor end
// non-empty.
func Generate(tokens []Token) Program {
	prog := make(Program, len(tokens))
	var open []int // indices of '[' instructions awaiting their ']'
	for i, tok := range tokens {
		prog[i] = Instruction{Cmd: tok.Cmd}
		switch tok.Cmd {
		case OpOpen:
			open = append(open, i)
		case OpClose:
			j := open[len(open)-1]
			open = open[:len(open)-1]
			prog[j].Target = i
			prog[i].Target = j
		}
	}
	return prog
}
