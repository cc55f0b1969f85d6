package harness

import (
	"fmt"

	"github.com/roach88/subsave/internal/subscription"
)

// TraceEvent records the outcome of one flow step.
type TraceEvent struct {
	Seq     int                         `json:"seq"`             // 1-based step number
	Op      string                      `json:"op"`              // create, get, update, list
	ID      string                      `json:"id,omitempty"`    // lookup or update id
	Error   string                      `json:"error,omitempty"` // error kind, empty on success
	Record  *subscription.Subscription  `json:"record,omitempty"`
	Records []subscription.Subscription `json:"records,omitempty"`
}

// Result is what a scenario run produced and whether it met expectations.
type Result struct {
	Pass   bool         `json:"pass"`  // no expect clause or assertion failed
	Trace  []TraceEvent `json:"trace"` // one event per flow step
	Errors []string     `json:"errors,omitempty"`

	// FinalFile is the backing file content after the last step.
	FinalFile string `json:"final_file"`
}

func newResult() *Result {
	return &Result{Pass: true, Trace: []TraceEvent{}}
}

// Fail records an unmet expectation.
func (r *Result) Fail(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// AddTrace appends a step outcome to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	event.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, event)
}
