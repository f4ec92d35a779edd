package compiler

import (
	"reflect"
	"testing"
)

// mustGenerate lexes, validates and generates in one step for test setup.
func mustGenerate(t *testing.T, src string) Program {
	t.Helper()
	tokens, err := Parse(Lex(src), src)
	if err != nil {
		t.Fatalf("setup: Parse(%q) failed: %v", src, err)
	}
	return Generate(tokens)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Program
	}{
		{
			name:     "Empty",
			input:    "",
			expected: Program{},
		},
		{
			name:  "Straight Line",
			input: "+-><.,",
			expected: Program{
				{Cmd: OpInc},
				{Cmd: OpDec},
				{Cmd: OpRight},
				{Cmd: OpLeft},
				{Cmd: OpOut},
				{Cmd: OpIn},
			},
		},
		{
			name:  "Single Loop",
			input: "[-]",
			expected: Program{
				{Cmd: OpOpen, Target: 2},
				{Cmd: OpDec},
				{Cmd: OpClose, Target: 0},
			},
		},
		{
			name:  "Nested Loops",
			input: "[[]]",
			expected: Program{
				{Cmd: OpOpen, Target: 3},
				{Cmd: OpOpen, Target: 2},
				{Cmd: OpClose, Target: 1},
				{Cmd: OpClose, Target: 0},
			},
		},
		{
			name:  "Sibling Loops",
			input: "[][]",
			expected: Program{
				{Cmd: OpOpen, Target: 1},
				{Cmd: OpClose, Target: 0},
				{Cmd: OpOpen, Target: 3},
				{Cmd: OpClose, Target: 2},
			},
		},
		{
			name:  "Loop Between Commands",
			input: "+[>-]<",
			expected: Program{
				{Cmd: OpInc},
				{Cmd: OpOpen, Target: 4},
				{Cmd: OpRight},
				{Cmd: OpDec},
				{Cmd: OpClose, Target: 1},
				{Cmd: OpLeft},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustGenerate(t, tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Generate(%q) = %v; want %v", tc.input, got, tc.expected)
			}
		})
	}
}

// Every '[' must point at a ']' that points straight back, and vice versa.
func TestGenerateTargetSymmetry(t *testing.T) {
	prog := mustGenerate(t, "++[->+[->+<]<[+]]--[[][,.]]")
	opens := 0
	for i, ins := range prog {
		switch ins.Cmd {
		case OpOpen:
			opens++
			back := prog[ins.Target]
			if back.Cmd != OpClose {
				t.Errorf("instruction %d: '[' targets %v at %d; want ']'", i, back.Cmd, ins.Target)
			}
			if back.Target != i {
				t.Errorf("instruction %d: ']' at %d points back to %d", i, ins.Target, back.Target)
			}
		case OpClose:
			if fwd := prog[ins.Target]; fwd.Cmd != OpOpen {
				t.Errorf("instruction %d: ']' targets %v at %d; want '['", i, fwd.Cmd, ins.Target)
			}
		}
	}
	if opens == 0 {
		t.Fatal("setup: program has no loops to check")
	}
}

func TestGeneratePreservesLength(t *testing.T) {
	src := "commentary + more [ text - here ] end ."
	tokens := Lex(src)
	if prog := Generate(tokens); len(prog) != len(tokens) {
		t.Errorf("Generate produced %d instructions from %d tokens", len(prog), len(tokens))
	}
}
