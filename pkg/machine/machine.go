package machine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gobf/pkg/compiler"
)

// DefaultTapeSize is the number of cells a machine allocates when no
// explicit size is requested; the classic convention for the language.
const DefaultTapeSize = 30000

// ErrTapeBounds reports the data pointer leaving the tape. The tape is fixed
// size: moving left of cell 0 or right of the last cell is a fault, never a
// grow.
var ErrTapeBounds = errors.New("machine: tape bounds exceeded")

// Fault decorates a run-time error with the instruction and cell it occurred
// at. errors.Is sees through it to the underlying cause (ErrTapeBounds or a
// propagated I/O error).
type Fault struct {
	IP  int // index of the offending instruction
	DP  int // data pointer at the time of the fault
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v (instruction %d, cell %d)", f.Err, f.IP, f.DP)
}

func (f *Fault) Unwrap() error { return f.Err }

// Machine executes a compiled program against a linear byte tape. One
// Machine serves exactly one run: create it, point Input/Output somewhere if
// the process streams are not wanted, call Run, and discard it.
type Machine struct {
	Program compiler.Program // read-only; never modified during a run

	Tape []byte // fixed-size cell array, zero-initialized
	DP   int    // data pointer: index of the current cell
	IP   int    // instruction pointer: index of the next instruction

	// Halted is set once IP runs past the end of Program or a fault stops
	// the run. A halted machine steps to no effect.
	Halted bool

	// Input supplies bytes for ',' and Output receives bytes from '.'.
	// If nil, os.Stdin and os.Stdout are used.
	Input  io.Reader
	Output io.Writer
}

// New creates a machine for prog with the default 30000-cell tape.
func New(prog compiler.Program) *Machine {
	return NewWithTapeSize(prog, DefaultTapeSize)
}

// NewWithTapeSize creates a machine with a tape of size cells. Sizes below 1
// are raised to 1 so the data pointer always starts on a valid cell.
func NewWithTapeSize(prog compiler.Program, size int) *Machine {
	if size < 1 {
		size = 1
	}
	return &Machine{Program: prog, Tape: make([]byte, size)}
}

func (m *Machine) inputSource() io.Reader {
	if m.Input != nil {
		return m.Input
	}
	return os.Stdin
}

func (m *Machine) outputSink() io.Writer {
	if m.Output != nil {
		return m.Output
	}
	return os.Stdout
}

// fault stops the machine and records err against the current instruction.
// IP stays on the offending instruction; output already written stays
// written.
func (m *Machine) fault(err error) error {
	m.Halted = true
	return &Fault{IP: m.IP, DP: m.DP, Err: err}
}

// Step interprets the instruction at IP, then advances or redirects IP.
func (m *Machine) Step() error {
	if m.Halted {
		return nil
	}
	if m.IP >= len(m.Program) {
		m.Halted = true
		return nil
	}

	in := m.Program[m.IP]
	next := m.IP + 1

	switch in.Cmd {
	case compiler.OpRight:
		if m.DP == len(m.Tape)-1 {
			return m.fault(ErrTapeBounds)
		}
		m.DP++

	case compiler.OpLeft:
		if m.DP == 0 {
			return m.fault(ErrTapeBounds)
		}
		m.DP--

	case compiler.OpInc:
		m.Tape[m.DP]++ // byte arithmetic wraps modulo 256 by definition

	case compiler.OpDec:
		m.Tape[m.DP]--

	case compiler.OpOut:
		buf := [1]byte{m.Tape[m.DP]}
		if _, err := m.outputSink().Write(buf[:]); err != nil {
			return m.fault(err)
		}

	case compiler.OpIn:
		// Blocks until the source yields a byte or reports end of input.
		var buf [1]byte
		_, err := io.ReadFull(m.inputSource(), buf[:])
		switch {
		case err == io.EOF:
			m.Tape[m.DP] = 0 // end of input clears the cell
		case err != nil:
			return m.fault(err)
		default:
			m.Tape[m.DP] = buf[0]
		}

	case compiler.OpOpen:
		if m.Tape[m.DP] == 0 {
			next = in.Target + 1 // skip the loop body entirely
		}

	case compiler.OpClose:
		if m.Tape[m.DP] != 0 {
			next = in.Target + 1 // back to the first instruction of the body
		}
	}

	m.IP = next
	if m.IP >= len(m.Program) {
		m.Halted = true
	}
	return nil
}

// Run steps the machine until the program completes or a fault stops it.
// Completion is reaching the end of the program; there is no halt
// instruction and no step limit, so a non-terminating program runs forever.
func (m *Machine) Run() error {
	for !m.Halted {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
