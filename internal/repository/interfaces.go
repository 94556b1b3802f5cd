package repository

import (
	"context"

	"github.com/darazdesk/ledgerapi/internal/domain"
)

// OrderRepository defines order data access methods. These are exactly the
// four operations the backing document collection offers: insert with a
// store-generated id, overwrite by id, delete by id, and list all.
type OrderRepository interface {
	// Insert stores the order as a new record. The store assigns the id and
	// the creation/update timestamps and fills them in on the passed order.
	Insert(ctx context.Context, order *domain.Order) error
	// Replace overwrites the record addressed by id, setting a fresh update
	// timestamp and preserving the original creation timestamp.
	Replace(ctx context.Context, id string, order *domain.Order) error
	// Delete removes the record addressed by id. No soft delete, no undo.
	Delete(ctx context.Context, id string) error
	// List fetches the full collection. Ordering is whatever the backing
	// store returns.
	List(ctx context.Context) ([]domain.Order, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Order OrderRepository
}
