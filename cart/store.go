package cart

import (
	"encoding/json"
	"errors"
	"sync"
)

const storageKey = "cart"

// ErrEmptyCart is returned by Checkout when there is nothing to submit.
var ErrEmptyCart = errors.New("cart is empty")

// Storage is the browser-local persistence a Store writes through. Get
// returns the empty string when the key has never been set.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store holds the in-memory cart, persists a JSON snapshot to Storage
// after every mutation and notifies subscribers of the new state. It is
// the single source of truth for one storage scope; a mutation that
// fails to persist leaves the in-memory state unchanged.
type Store struct {
	mu      sync.Mutex
	storage Storage
	items   []LineItem
	subs    []func([]LineItem)
}

// NewStore loads any previously persisted cart from storage.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{storage: storage}
	raw, err := storage.Get(storageKey)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Items returns a copy of the current line items.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// Subscribe registers fn to be called with the new item list after
// every successful mutation.
func (s *Store) Subscribe(fn func([]LineItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) Add(item LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(AddItem(s.items, item))
}

func (s *Store) UpdateQuantity(productID uint, size string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(UpdateQuantity(s.items, productID, size, delta))
}

func (s *Store) Remove(productID uint, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(RemoveItem(s.items, productID, size))
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(nil)
}

// Totals computes the current totals with the given shipping charge.
func (s *Store) Totals(shipping float64) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.items, shipping)
}

// Checkout hands the current items to submit exactly once. On success
// the cart is cleared and subscribers are notified; on failure the cart
// is left untouched so the user can retry.
func (s *Store) Checkout(submit func([]LineItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return ErrEmptyCart
	}
	if err := submit(clone(s.items)); err != nil {
		return err
	}
	return s.apply(nil)
}

// apply persists items and, only then, swaps them in and broadcasts.
// Callers must hold s.mu.
func (s *Store) apply(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.storage.Set(storageKey, string(data)); err != nil {
		return err
	}
	s.items = items
	for _, fn := range s.subs {
		fn(clone(items))
	}
	return nil
}
