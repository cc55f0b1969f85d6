package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a store conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed selects the initial file content: "fixture" or "empty".
	// Defaults to "fixture".
	Seed string `yaml:"seed,omitempty"`

	// IDs are handed out in order to each create step.
	IDs []string `yaml:"ids,omitempty"`

	// Flow contains the operations to run, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the backing file after the flow.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// FlowStep is a single store operation.
type FlowStep struct {
	// Op is one of create, get, update, list.
	Op string `yaml:"op"`

	// ID is the lookup key for get.
	ID string `yaml:"id,omitempty"`

	// Subscription is the input for create and update.
	// A nil Subscription on update exercises the nil-input check.
	Subscription *SubscriptionArgs `yaml:"subscription,omitempty"`

	// Expect specifies the expected outcome. If nil, the step must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// SubscriptionArgs mirrors subscription.Subscription with YAML tags.
type SubscriptionArgs struct {
	ID         string `yaml:"id"`
	CustomerID string `yaml:"customer_id"`
	ASIN       string `yaml:"asin"`
	Frequency  int    `yaml:"frequency"`
}

// ExpectClause specifies expected step behavior.
type ExpectClause struct {
	// Error is the expected error kind; empty means success.
	Error string `yaml:"error,omitempty"`

	// Result contains expected field values of the returned record.
	// Subset match: only specified fields are validated.
	Result map[string]interface{} `yaml:"result,omitempty"`

	// Count is the expected number of records returned by list.
	Count *int `yaml:"count,omitempty"`
}

// Assertion validates the backing file after the flow.
type Assertion struct {
	// Type is "record_count" or "final_state".
	Type string `yaml:"type"`

	// Count is the expected number of records (record_count).
	Count int `yaml:"count,omitempty"`

	// ID selects the record to check (final_state).
	ID string `yaml:"id,omitempty"`

	// Expect contains expected field values (final_state).
	// Subset match: only specified fields are validated.
	Expect map[string]interface{} `yaml:"expect,omitempty"`
}

// Operation names.
const (
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpList   = "list"
)

// Seed names.
const (
	SeedFixture = "fixture"
	SeedEmpty   = "empty"
)

// Assertion type constants.
const (
	AssertRecordCount = "record_count"
	AssertFinalState  = "final_state"
)

// Error kinds accepted in expect.error.
const (
	ErrKindInvalidArgument = "invalid_argument"
	ErrKindNotFound        = "not_found"
	ErrKindMalformed       = "malformed"
	ErrKindDuplicateID     = "duplicate_id"
)

var validErrorKinds = map[string]bool{
	ErrKindInvalidArgument: true,
	ErrKindNotFound:        true,
	ErrKindMalformed:       true,
	ErrKindDuplicateID:     true,
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

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Seed == "" {
		scenario.Seed = SeedFixture
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks required fields and enumerated values.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Seed != SeedFixture && s.Seed != SeedEmpty {
		return fmt.Errorf("seed must be %q or %q, got %q", SeedFixture, SeedEmpty, s.Seed)
	}
	if len(s.Flow) == 0 {
		return errors.New("flow must have at least one step")
	}

	creates := 0
	for i, step := range s.Flow {
		switch step.Op {
		case OpCreate:
			creates++
			if step.Subscription == nil {
				return fmt.Errorf("flow[%d]: create requires subscription", i)
			}
		case OpGet, OpUpdate, OpList:
		default:
			return fmt.Errorf("flow[%d]: unknown op %q", i, step.Op)
		}
		if step.Expect != nil && step.Expect.Error != "" && !validErrorKinds[step.Expect.Error] {
			return fmt.Errorf("flow[%d]: unknown error kind %q", i, step.Expect.Error)
		}
	}
	if creates > len(s.IDs) {
		return fmt.Errorf("flow has %d create steps but only %d ids", creates, len(s.IDs))
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertRecordCount:
		case AssertFinalState:
			if a.ID == "" {
				return fmt.Errorf("assertions[%d]: final_state requires id", i)
			}
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}
	return nil
}
