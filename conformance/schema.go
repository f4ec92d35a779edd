package conformance

// TestSuite represents a complete YAML fixture file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program run within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string reason
	Source      string      `yaml:"source"`
	Input       string      `yaml:"input,omitempty"`
	TapeSize    int         `yaml:"tape_size,omitempty"` // 0 = default size
	MaxSteps    int         `yaml:"max_steps,omitempty"` // 0 = run until halt
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what outcome is expected from a test.
//
// Error names the expected failure class: unmatched-open, unmatched-close or
// tape-bounds. Offset and IP pin down where the failure is reported; they
// are pointers because position 0 is a legitimate expectation. Expected
// output is restricted to ASCII so the YAML string survives as raw bytes;
// cell values above 127 are asserted through Cells instead.
type Expectation struct {
	Output string      `yaml:"output,omitempty"`
	Error  string      `yaml:"error,omitempty"`
	Offset *int        `yaml:"offset,omitempty"` // source byte offset, compile errors
	IP     *int        `yaml:"ip,omitempty"`     // faulting instruction, run errors
	Cells  map[int]int `yaml:"cells,omitempty"`  // tape cells to inspect after the run
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
