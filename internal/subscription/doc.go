// Package subscription defines the subscription record persisted by the
// file-backed store, plus the identifier generators the store uses when a
// record is created.
//
// This package contains no I/O. The store imports subscription;
// subscription imports nothing internal.
//
// Key constraints:
//   - ID is assigned once, at creation, and never changes afterwards
//   - CustomerID and ASIN are opaque strings, never interpreted
//   - Frequency is only checked for presence (non-zero), not range
//   - Equality is field-wise, so two records compare with ==
package subscription
