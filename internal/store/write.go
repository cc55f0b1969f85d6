package store

import (
	"fmt"

	"github.com/roach88/subsave/internal/subscription"
)

// CreateSubscription assigns a new id to sub, appends it to the backing file
// and returns the stored record. Any id already set on sub is ignored.
//
// A missing backing file is created. Returns an error matching
// ErrInvalidArgument if sub has a missing or unrepresentable field.
func (s *FileStore) CreateSubscription(sub subscription.Subscription) (subscription.Subscription, error) {
	sub.ID = ""
	if err := sub.Validate(); err != nil {
		return subscription.Subscription{}, fmt.Errorf("create subscription: %w: %w", ErrInvalidArgument, err)
	}

	records, err := s.loadOrEmpty()
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("create subscription: %w", err)
	}

	created := sub.WithID(s.ids.Generate())
	if created.ID == "" {
		return subscription.Subscription{}, fmt.Errorf("create subscription: generated id is empty")
	}
	if err := created.Validate(); err != nil {
		return subscription.Subscription{}, fmt.Errorf("create subscription: generated id: %w", err)
	}
	if indexOf(records, created.ID) >= 0 {
		return subscription.Subscription{}, fmt.Errorf("create subscription %q: %w", created.ID, ErrDuplicateID)
	}

	records = append(records, created)
	if err := s.persist(records); err != nil {
		return subscription.Subscription{}, fmt.Errorf("create subscription: %w", err)
	}

	s.logger.Info("subscription created", "id", created.ID, "customer_id", created.CustomerID, "asin", created.ASIN)
	return created, nil
}

// UpdateSubscription replaces the customer id, asin and frequency of the
// stored record with sub.ID and returns the updated record. The id itself
// never changes.
//
// Checks run in order before any mutation: sub must be non-nil, sub.ID must
// be non-empty, the fields must be valid, and the id must exist. Every
// failure matches ErrInvalidArgument; an unknown id also matches
// ErrNotFound.
func (s *FileStore) UpdateSubscription(sub *subscription.Subscription) (subscription.Subscription, error) {
	if sub == nil {
		return subscription.Subscription{}, fmt.Errorf("update subscription: %w: subscription is nil", ErrInvalidArgument)
	}
	if sub.ID == "" {
		return subscription.Subscription{}, fmt.Errorf("update subscription: %w: id is empty", ErrInvalidArgument)
	}
	if err := sub.Validate(); err != nil {
		return subscription.Subscription{}, fmt.Errorf("update subscription %q: %w: %w", sub.ID, ErrInvalidArgument, err)
	}

	records, err := s.load()
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("update subscription %q: %w", sub.ID, err)
	}

	i := indexOf(records, sub.ID)
	if i < 0 {
		return subscription.Subscription{}, fmt.Errorf("update subscription: %w", &unknownIDError{id: sub.ID})
	}

	records[i].CustomerID = sub.CustomerID
	records[i].ASIN = sub.ASIN
	records[i].Frequency = sub.Frequency
	if err := s.persist(records); err != nil {
		return subscription.Subscription{}, fmt.Errorf("update subscription %q: %w", sub.ID, err)
	}

	s.logger.Info("subscription updated", "id", records[i].ID, "frequency", records[i].Frequency)
	return records[i], nil
}
