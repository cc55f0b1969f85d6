// Package store provides file-backed durable storage for subscriptions.
//
// The backing file is a flat, human-auditable text file with one record per
// line:
//
//	id,customerId,asin,frequency
//
// # Critical Patterns
//
// The file is the only source of truth:
//   - Every operation loads the file, scans it linearly, and (for mutations)
//     rewrites the whole record set before returning
//   - Nothing is cached between calls, so a write is visible to the next read
//
// Mutations are all-or-nothing:
//   - The new record set is written to a temp file in the same directory,
//     synced, and renamed over the backing file
//   - Validation happens before any I/O; a rejected call never touches disk
//
// Loading fails fast:
//   - A malformed line or a duplicate id aborts the load with a *ParseError
//   - Nothing is skipped or coerced
//
// # Concurrency
//
// A FileStore assumes exclusive ownership of its file for the duration of
// each call. There is no locking and no coordination between processes.
package store
