package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

// OrderService orchestrates the order CRUD contract: every write runs the
// calculator, validates the draft, snapshots it, and delegates durability to
// the repository. It holds no state of its own.
type OrderService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *OrderService {
	return &OrderService{
		repos:  repos,
		logger: logger,
	}
}

// List fetches the full collection.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repos.Order.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Create normalizes the draft and inserts it as a new record. The store
// assigns the id and the creation timestamp; any id on the draft is ignored.
func (s *OrderService) Create(ctx context.Context, draft domain.Order) (*domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	order := domain.Calculate(draft)
	// Ids come from the store; whatever the client sent is dropped here.
	order.ID = primitive.NilObjectID

	if err := s.repos.Order.Insert(ctx, &order); err != nil {
		s.logger.Error("Failed to create order", zap.String("order_label", draft.OrderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("order_label", order.OrderID),
	)
	return &order, nil
}

// Update normalizes the draft and overwrites the record addressed by id.
// The order's id never changes on update.
func (s *OrderService) Update(ctx context.Context, id string, draft domain.Order) (*domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	order := domain.Calculate(draft)

	if err := s.repos.Order.Replace(ctx, id, &order); err != nil {
		s.logger.Error("Failed to update order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order updated", zap.String("order_id", id))
	return &order, nil
}

// Delete removes the record addressed by id. It refuses to touch the store
// until the caller has explicitly confirmed the delete.
func (s *OrderService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return &errors.ErrConfirmationRequired{Resource: "order", ID: id}
	}

	if err := s.repos.Order.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete order", zap.String("order_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Order deleted", zap.String("order_id", id))
	return nil
}

// Summarize aggregates the financial position across the given orders.
func (s *OrderService) Summarize(orders []domain.Order) domain.Summary {
	return domain.Summarize(orders)
}

func validateDraft(draft domain.Order) error {
	if len(draft.Products) == 0 {
		return &errors.ErrValidation{
			Message: "order must have at least one product",
			Fields:  map[string]string{"products": "empty"},
		}
	}
	return nil
}
