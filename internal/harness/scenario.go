package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mizukyf/minque/internal/parser"
)

// Scenario defines a conformance scenario: records plus query cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Options overrides the lexical options for every case.
	Options parser.Config `yaml:"options,omitempty"`

	// Records is the record set every case runs against.
	Records []map[string]any `yaml:"records"`

	// Cases are executed in order.
	Cases []Case `yaml:"cases"`
}

// Case is one query and its expected outcome.
type Case struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`

	// Bind holds placeholder values. A nil Bind runs the query unbound.
	Bind []any `yaml:"bind,omitempty"`

	// Expect lists the ids SelectAll must return, in order.
	Expect []string `yaml:"expect,omitempty"`

	// Count is the value Count must return.
	Count *int `yaml:"count,omitempty"`

	// First is the id SelectFirst must return; "" means no match.
	First *string `yaml:"first,omitempty"`

	// Error is the error code the case must fail with.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
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
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}
	if _, err := s.Options.Options(); err != nil {
		return fmt.Errorf("options: %w", err)
	}

	for i, rec := range s.Records {
		if _, ok := rec["id"]; !ok {
			return fmt.Errorf("records[%d]: id is required", i)
		}
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Error != "" {
			if c.Expect != nil || c.Count != nil || c.First != nil {
				return fmt.Errorf("case %q: error cannot be combined with expect, count or first", c.Name)
			}
			continue
		}
		if c.Query == "" {
			return fmt.Errorf("case %q: query is required", c.Name)
		}
		if c.Expect == nil && c.Count == nil && c.First == nil {
			return fmt.Errorf("case %q: one of expect, count, first or error is required", c.Name)
		}
	}
	return nil
}
