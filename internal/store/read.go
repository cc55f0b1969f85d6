package store

import (
	"fmt"

	"github.com/roach88/subsave/internal/subscription"
)

// GetSubscriptionByID returns the subscription with the given id.
//
// Returns an error matching ErrNotFound if no record has that id.
func (s *FileStore) GetSubscriptionByID(id string) (subscription.Subscription, error) {
	records, err := s.load()
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("get subscription: %w", err)
	}

	i := indexOf(records, id)
	if i < 0 {
		return subscription.Subscription{}, fmt.Errorf("get subscription %q: %w", id, ErrNotFound)
	}
	return records[i], nil
}

// ListSubscriptions returns every subscription in file order.
//
// Returns an empty slice (not nil) for an empty file.
func (s *FileStore) ListSubscriptions() ([]subscription.Subscription, error) {
	records, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return records, nil
}

// indexOf returns the position of the record with id, or -1.
// An empty id never matches since decoding rejects empty ids.
func indexOf(records []subscription.Subscription, id string) int {
	if id == "" {
		return -1
	}
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
