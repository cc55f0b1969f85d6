package subscription

import (
	"errors"
	"fmt"
	"strings"
)

// Subscription is a single subscribe-and-save entry: a customer receiving a
// product every Frequency delivery intervals.
type Subscription struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	ASIN       string `json:"asin"`
	Frequency  int    `json:"frequency"`
}

// forbidden are the characters that cannot appear in a field value because
// they delimit fields and records in the backing file.
const forbidden = ",\r\n"

var (
	// ErrMissingField is returned by Validate when a required field is empty.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned by Validate when a field holds a value the
	// backing file cannot represent.
	ErrInvalidField = errors.New("invalid field")
)

// New returns a subscription without an ID. The store assigns the ID on
// create.
func New(customerID, asin string, frequency int) Subscription {
	return Subscription{
		CustomerID: customerID,
		ASIN:       asin,
		Frequency:  frequency,
	}
}

// WithID returns a copy of s carrying the given identifier.
func (s Subscription) WithID(id string) Subscription {
	s.ID = id
	return s
}

// Validate checks the mutable fields: CustomerID and ASIN must be present,
// Frequency must be non-zero, and no field may contain a separator.
// The ID is not checked; callers decide whether one is required.
func (s Subscription) Validate() error {
	if s.CustomerID == "" {
		return fmt.Errorf("%w: customer id", ErrMissingField)
	}
	if s.ASIN == "" {
		return fmt.Errorf("%w: asin", ErrMissingField)
	}
	if s.Frequency == 0 {
		return fmt.Errorf("%w: frequency", ErrMissingField)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"id", s.ID},
		{"customer id", s.CustomerID},
		{"asin", s.ASIN},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, forbidden) {
			return fmt.Errorf("%w: %s %q contains a separator", ErrInvalidField, f.name, f.value)
		}
	}
	return nil
}

// String returns a compact human-readable form used by the CLI text output.
func (s Subscription) String() string {
	return fmt.Sprintf("%s customer=%s asin=%s frequency=%d", s.ID, s.CustomerID, s.ASIN, s.Frequency)
}
