package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/subsave/internal/store"
	"github.com/roach88/subsave/internal/subscription"
	"github.com/roach88/subsave/internal/testutil"
)

// Harness executes scenario steps against one backing file.
type Harness struct {
	store *store.FileStore
}

// Run executes a scenario in a fresh backing file under dir and returns the
// result.
//
// Execution flow:
//  1. Seed dir/subscriptions.csv from the fixture (or leave it empty)
//  2. Execute flow steps, checking each against its expect clause
//  3. Evaluate assertions against the final file content
//
// An error is returned only when the scenario cannot be executed at all;
// expectation failures are reported in Result.Errors.
func Run(scenario *Scenario, dir string) (*Result, error) {
	path := filepath.Join(dir, "subscriptions.csv")
	var seed []byte
	if scenario.Seed != SeedEmpty {
		seed = testutil.SubscriptionsFixture()
	}
	if err := os.WriteFile(path, seed, 0o644); err != nil {
		return nil, fmt.Errorf("failed to seed backing file: %w", err)
	}

	h := &Harness{
		store: store.New(path,
			store.WithIDGenerator(subscription.NewFixedGenerator(scenario.IDs...)),
			store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
		),
	}

	result := newResult()
	for i, step := range scenario.Flow {
		event := h.execute(step)
		result.AddTrace(event)
		for _, msg := range checkExpect(step.Expect, event) {
			result.Fail("flow[%d] %s: %s", i, step.Op, msg)
		}
	}

	final, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backing file: %w", err)
	}
	result.FinalFile = string(final)

	records, err := h.store.ListSubscriptions()
	if err != nil {
		result.Fail("final state: %v", err)
		return result, nil
	}
	for _, msg := range EvaluateAssertions(records, scenario.Assertions) {
		result.Fail("%s", msg)
	}

	return result, nil
}

// execute runs one step and captures its outcome.
func (h *Harness) execute(step FlowStep) TraceEvent {
	event := TraceEvent{Op: step.Op}

	var (
		rec subscription.Subscription
		err error
	)
	switch step.Op {
	case OpCreate:
		rec, err = h.store.CreateSubscription(step.Subscription.toSubscription())
	case OpGet:
		event.ID = step.ID
		rec, err = h.store.GetSubscriptionByID(step.ID)
	case OpUpdate:
		var sub *subscription.Subscription
		if step.Subscription != nil {
			s := step.Subscription.toSubscription()
			sub = &s
			event.ID = s.ID
		}
		rec, err = h.store.UpdateSubscription(sub)
	case OpList:
		var records []subscription.Subscription
		records, err = h.store.ListSubscriptions()
		if err == nil {
			event.Records = records
		}
		event.Error = errorKind(err)
		return event
	}

	if err != nil {
		event.Error = errorKind(err)
		return event
	}
	event.Record = &rec
	return event
}

func (a *SubscriptionArgs) toSubscription() subscription.Subscription {
	return subscription.Subscription{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		ASIN:       a.ASIN,
		Frequency:  a.Frequency,
	}
}

// errorKind maps a store error to its scenario name. Invalid argument wins
// over not found, matching how update reports an unknown id.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrInvalidArgument):
		return ErrKindInvalidArgument
	case errors.Is(err, store.ErrNotFound):
		return ErrKindNotFound
	case errors.Is(err, store.ErrMalformed):
		return ErrKindMalformed
	case errors.Is(err, store.ErrDuplicateID):
		return ErrKindDuplicateID
	default:
		return "error: " + err.Error()
	}
}
