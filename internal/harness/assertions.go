package harness

import (
	"fmt"
	"sort"

	"github.com/roach88/subsave/internal/subscription"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("Assertion failed: %s\n  Expected: %s\n  Actual: %s", e.Type, e.Expected, e.Actual)
}

// EvaluateAssertions checks every assertion against the final record set
// and returns one message per failure.
func EvaluateAssertions(records []subscription.Subscription, assertions []Assertion) []string {
	var failures []string
	for _, a := range assertions {
		var err error
		switch a.Type {
		case AssertRecordCount:
			err = assertRecordCount(records, a)
		case AssertFinalState:
			err = assertFinalState(records, a)
		default:
			err = fmt.Errorf("unknown assertion type: %s", a.Type)
		}
		if err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

func assertRecordCount(records []subscription.Subscription, a Assertion) error {
	if len(records) != a.Count {
		return &AssertionError{
			Type:     AssertRecordCount,
			Expected: fmt.Sprintf("%d records", a.Count),
			Actual:   fmt.Sprintf("%d records", len(records)),
		}
	}
	return nil
}

func assertFinalState(records []subscription.Subscription, a Assertion) error {
	for _, r := range records {
		if r.ID != a.ID {
			continue
		}
		if mismatches := matchRecord(r, a.Expect); len(mismatches) > 0 {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("record %s with %v", a.ID, a.Expect),
				Actual:   fmt.Sprintf("%v (%v)", r, mismatches),
			}
		}
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalState,
		Expected: fmt.Sprintf("record %s", a.ID),
		Actual:   "no such record",
	}
}

// checkExpect compares a step outcome with its expect clause.
// A nil clause means the step must succeed.
func checkExpect(expect *ExpectClause, event TraceEvent) []string {
	want := ""
	if expect != nil {
		want = expect.Error
	}
	if event.Error != want {
		return []string{fmt.Sprintf("expected error %q, got %q", want, event.Error)}
	}
	if expect == nil {
		return nil
	}

	var msgs []string
	if expect.Result != nil {
		if event.Record == nil {
			msgs = append(msgs, "expected a record, got none")
		} else {
			msgs = append(msgs, matchRecord(*event.Record, expect.Result)...)
		}
	}
	if expect.Count != nil && len(event.Records) != *expect.Count {
		msgs = append(msgs, fmt.Sprintf("expected %d records, got %d", *expect.Count, len(event.Records)))
	}
	return msgs
}

// matchRecord performs a subset match of expected field values against r.
// Keys are id, customer_id, asin, frequency. Returns one message per
// mismatch, sorted by field name.
func matchRecord(r subscription.Subscription, expected map[string]interface{}) []string {
	actual := map[string]interface{}{
		"id":          r.ID,
		"customer_id": r.CustomerID,
		"asin":        r.ASIN,
		"frequency":   r.Frequency,
	}

	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msgs []string
	for _, k := range keys {
		got, ok := actual[k]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("unknown field %q", k))
			continue
		}
		if fmt.Sprint(got) != fmt.Sprint(expected[k]) {
			msgs = append(msgs, fmt.Sprintf("%s: expected %v, got %v", k, expected[k], got))
		}
	}
	return msgs
}
