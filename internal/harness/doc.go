// Package harness runs YAML scenarios against a file-backed subscription
// store and checks the outcome of every step.
//
// Each scenario runs in its own backing file, seeded from the canonical
// fixture or left empty, with predetermined ids for created records so the
// resulting trace is deterministic and can be compared to a golden file.
//
// # Scenario Format
//
//	name: update_frequency
//	description: "Updating a seeded record keeps its id"
//	seed: fixture            # fixture (default) | empty
//	ids: [sub-0001]          # ids handed out by create, in order
//	flow:
//	  - op: update
//	    subscription:
//	      id: 1fe240f4-3296-4827-8c0e-7fa571b6f49f
//	      customer_id: amzn1.account.AEZI3A09486461G3DRR0VQPQHQ9I
//	      asin: B01BMDAVIY
//	      frequency: 2
//	    expect:
//	      result: { frequency: 2 }
//	  - op: get
//	    id: unknown-id
//	    expect:
//	      error: not_found
//	assertions:
//	  - type: record_count
//	    count: 4
//	  - type: final_state
//	    id: 1fe240f4-3296-4827-8c0e-7fa571b6f49f
//	    expect: { frequency: 2 }
//
// # Operations
//
//   - create: subscription fields (id ignored)
//   - get: id
//   - update: subscription (omit it entirely to update with nil)
//   - list: no arguments
//
// # Error Kinds
//
// expect.error names the store error a step must fail with:
// invalid_argument, not_found, malformed, duplicate_id. An empty or missing
// expect.error means the step must succeed.
//
// # Golden Files
//
// RunWithGolden writes the trace and the final backing file as indented JSON
// and compares them with testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
