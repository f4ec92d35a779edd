package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gobf/pkg/compiler"
	"gobf/pkg/machine"
)

func TestRunProgram(t *testing.T) {
	prog, err := compiler.Compile(",+.")
	if err != nil {
		t.Fatalf("setup: Compile failed: %v", err)
	}

	var out bytes.Buffer
	if err := runProgram(prog, machine.DefaultTapeSize, strings.NewReader("A"), &out); err != nil {
		t.Fatalf("runProgram failed: %v", err)
	}
	if got := out.String(); got != "B" {
		t.Errorf("output = %q; want %q", got, "B")
	}
}

func TestRunProgramTapeSize(t *testing.T) {
	// Three cells of travel on a two-cell tape has to fault.
	prog, err := compiler.Compile(">>")
	if err != nil {
		t.Fatalf("setup: Compile failed: %v", err)
	}

	var out bytes.Buffer
	err = runProgram(prog, 2, strings.NewReader(""), &out)
	if !errors.Is(err, machine.ErrTapeBounds) {
		t.Errorf("runProgram error = %v; want %v", err, machine.ErrTapeBounds)
	}

	if err := runProgram(prog, 3, strings.NewReader(""), &out); err != nil {
		t.Errorf("runProgram on a wide enough tape failed: %v", err)
	}
}
