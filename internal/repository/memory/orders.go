// Package memory holds an in-memory order store with the same contract as
// the Mongo adapter. It backs the server's demo mode (no MONGO_URI
// configured) and the service/tracker/API tests.
package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

type Store struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	ids    []string // insertion order, so List stays stable
}

func NewStore() *Store {
	return &Store{
		orders: make(map[string]domain.Order),
	}
}

// NewRepositories wires the in-memory store as the full repository set.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{Order: NewStore()}
}

func (s *Store) Insert(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now

	id := order.ID.Hex()
	s.orders[id] = order.Clone()
	s.ids = append(s.ids, id)
	return nil
}

func (s *Store) Replace(_ context.Context, id string, order *domain.Order) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &errors.ErrValidation{Message: "invalid order id", Fields: map[string]string{"id": id}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}

	order.ID = oid
	order.CreatedAt = existing.CreatedAt
	order.UpdatedAt = time.Now().UTC()
	s.orders[id] = order.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}
	delete(s.orders, id)
	for i, known := range s.ids {
		if known == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) List(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		orders = append(orders, s.orders[id].Clone())
	}
	return orders, nil
}
