package compiler

import (
	"errors"
	"reflect"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Program
		wantErr  error
	}{
		{
			name:     "Empty Source",
			input:    "",
			expected: Program{},
		},
		{
			name:     "Commentary Only",
			input:    "nothing to run here",
			expected: Program{},
		},
		{
			name:  "Clear Cell",
			input: "+[-]",
			expected: Program{
				{Cmd: OpInc},
				{Cmd: OpOpen, Target: 3},
				{Cmd: OpDec},
				{Cmd: OpClose, Target: 1},
			},
		},
		{
			name:    "Unmatched Close",
			input:   "+]",
			wantErr: ErrUnmatchedClose,
		},
		{
			name:    "Unmatched Open",
			input:   "[+",
			wantErr: ErrUnmatchedOpen,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compile(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Compile(%q) error = %v; want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile(%q) returned error: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Compile(%q) = %v; want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCompileErrorCarriesPosition(t *testing.T) {
	_, err := Compile("line one is fine\n+ ] +\n")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Compile error is %T; want *ParseError", err)
	}
	want := Position{Line: 2, Col: 3, Offset: 20}
	if perr.Pos != want {
		t.Errorf("error position = %+v; want %+v", perr.Pos, want)
	}
}
