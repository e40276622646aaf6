package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Expected verdicts.
const (
	ExpectPass = "pass"
	ExpectFail = "fail"
)

// Scenario is a named set of cases for one catalogue check.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Check is the catalogue name of the check under test.
	Check string `yaml:"check"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`

	// BaseDir resolves relative case files. LoadScenario sets it to the
	// directory holding the scenario file.
	BaseDir string `yaml:"-"`
}

// Case is one value and the verdict the check must reach on it.
type Case struct {
	// Name identifies the case within its scenario.
	Name string `yaml:"name"`

	// Value is the inline value. An explicit null is a value (nil), which
	// is different from leaving the field out.
	Value yaml.Node `yaml:"value"`

	// File is a JSON, YAML or CUE document holding the value.
	File string `yaml:"file,omitempty"`

	// Expect is "pass" or "fail".
	Expect string `yaml:"expect"`

	// Path, when set, is the expected failure path (e.g. ".tags[1]").
	// The empty string means the root value.
	Path *string `yaml:"path,omitempty"`

	// Reason, when set, must occur in the failure message.
	Reason string `yaml:"reason,omitempty"`
}

// HasValue reports whether the case carries an inline value.
func (c *Case) HasValue() bool {
	return c.Value.Kind != 0
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	scenario.BaseDir = filepath.Dir(path)
	return scenario, nil
}

// ParseScenario parses scenario YAML. Relative case files resolve against
// the working directory unless BaseDir is set afterwards.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Check == "" {
		return fmt.Errorf("check is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.HasValue() == (c.File != "") {
			return fmt.Errorf("cases[%d]: exactly one of value or file is required", i)
		}

		switch c.Expect {
		case ExpectPass:
			if c.Path != nil || c.Reason != "" {
				return fmt.Errorf("cases[%d]: path and reason only apply to expect: fail", i)
			}
		case ExpectFail:
		case "":
			return fmt.Errorf("cases[%d]: expect is required", i)
		default:
			return fmt.Errorf("cases[%d]: expect must be %q or %q, got %q", i, ExpectPass, ExpectFail, c.Expect)
		}
	}

	return nil
}
