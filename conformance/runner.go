package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gobf/pkg/compiler"
	"gobf/pkg/machine"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes fixture tests against the compiler and machine
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	tc := test.Test
	if skipped, reason := tc.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	prog, err := compiler.Compile(tc.Source)
	if err != nil {
		passed, cerr := checkCompileError(tc.Expect, err)
		return TestResult{Test: test, Passed: passed, Error: cerr}
	}

	size := tc.TapeSize
	if size == 0 {
		size = machine.DefaultTapeSize
	}
	m := machine.NewWithTapeSize(prog, size)
	m.Input = strings.NewReader(tc.Input)
	var output bytes.Buffer
	m.Output = &output

	var runErr error
	if tc.MaxSteps > 0 {
		// Bounded run for programs that are not meant to halt.
		for i := 0; i < tc.MaxSteps && !m.Halted && runErr == nil; i++ {
			runErr = m.Step()
		}
	} else {
		runErr = m.Run()
	}

	passed, cerr := checkRunResult(tc.Expect, output.String(), m, runErr)
	return TestResult{Test: test, Passed: passed, Error: cerr}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// errorForName maps a fixture error class to the sentinel it stands for
func errorForName(name string) (error, bool) {
	switch name {
	case "unmatched-open":
		return compiler.ErrUnmatchedOpen, true
	case "unmatched-close":
		return compiler.ErrUnmatchedClose, true
	case "tape-bounds":
		return machine.ErrTapeBounds, true
	default:
		return nil, false
	}
}

// checkCompileError matches a compile failure against the expectation
func checkCompileError(expect Expectation, err error) (bool, error) {
	if expect.Error == "" {
		return false, fmt.Errorf("unexpected compile error: %w", err)
	}
	want, ok := errorForName(expect.Error)
	if !ok {
		return false, fmt.Errorf("unknown error class: %s", expect.Error)
	}
	if !errors.Is(err, want) {
		return false, fmt.Errorf("expected error %s, got: %w", expect.Error, err)
	}

	if expect.Offset != nil {
		var perr *compiler.ParseError
		if !errors.As(err, &perr) {
			return false, fmt.Errorf("error %v carries no source position", err)
		}
		if perr.Pos.Offset != *expect.Offset {
			return false, fmt.Errorf("error reported at offset %d, expected %d", perr.Pos.Offset, *expect.Offset)
		}
	}
	return true, nil
}

// checkRunResult matches a completed or faulted run against the expectation
func checkRunResult(expect Expectation, output string, m *machine.Machine, runErr error) (bool, error) {
	if expect.Error != "" {
		want, ok := errorForName(expect.Error)
		if !ok {
			return false, fmt.Errorf("unknown error class: %s", expect.Error)
		}
		if runErr == nil {
			return false, fmt.Errorf("expected error %s, program ran clean", expect.Error)
		}
		if !errors.Is(runErr, want) {
			return false, fmt.Errorf("expected error %s, got: %w", expect.Error, runErr)
		}
		if expect.IP != nil {
			var f *machine.Fault
			if !errors.As(runErr, &f) {
				return false, fmt.Errorf("error %v carries no fault state", runErr)
			}
			if f.IP != *expect.IP {
				return false, fmt.Errorf("fault at instruction %d, expected %d", f.IP, *expect.IP)
			}
		}
	} else if runErr != nil {
		return false, fmt.Errorf("unexpected fault: %w", runErr)
	}

	// Output already written survives a fault, so it is checked either way.
	if output != expect.Output {
		return false, fmt.Errorf("output %q, expected %q", output, expect.Output)
	}

	for idx, want := range expect.Cells {
		if idx < 0 || idx >= len(m.Tape) {
			return false, fmt.Errorf("cell %d is outside the %d-cell tape", idx, len(m.Tape))
		}
		if got := m.Tape[idx]; got != byte(want) {
			return false, fmt.Errorf("cell %d = %d, expected %d", idx, got, want)
		}
	}
	return true, nil
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
