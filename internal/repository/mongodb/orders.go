package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

type orderRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewOrderRepository creates a new Mongo-backed order repository
func NewOrderRepository(collection *mongo.Collection, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *orderRepository) Insert(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	order.ID = primitive.NilObjectID
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error("Failed to insert order", zap.Error(err))
		return &errors.ErrPersistence{Op: "insert", Err: err}
	}

	// The store assigns the identity; hand it back to the caller.
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return nil
}

func (r *orderRepository) Replace(ctx context.Context, id string, order *domain.Order) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &errors.ErrValidation{Message: "invalid order id", Fields: map[string]string{"id": id}}
	}

	order.UpdatedAt = time.Now().UTC()

	// $set everything except createdAt, so the original creation timestamp
	// survives an overwrite.
	update := bson.M{"$set": bson.M{
		"dateTime":        order.DateTime,
		"orderId":         order.OrderID,
		"products":        order.Products,
		"grossSale":       order.GrossSale,
		"netSales":        order.NetSales,
		"darazCommission": order.DarazCommission,
		"profit":          order.Profit,
		"loss":            order.Loss,
		"payment":         order.Payment,
		"updatedAt":       order.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		r.logger.Error("Failed to replace order", zap.String("order_id", id), zap.Error(err))
		return &errors.ErrPersistence{Op: "replace", Err: err}
	}
	if result.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}

	order.ID = oid
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &errors.ErrValidation{Message: "invalid order id", Fields: map[string]string{"id": id}}
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Failed to delete order", zap.String("order_id", id), zap.Error(err))
		return &errors.ErrPersistence{Op: "delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}

	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &errors.ErrPersistence{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0)
	for cursor.Next(ctx) {
		var order domain.Order
		if err := cursor.Decode(&order); err != nil {
			r.logger.Error("Failed to decode order", zap.Error(err))
			return nil, &errors.ErrPersistence{Op: "list", Err: err}
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, &errors.ErrPersistence{Op: "list", Err: err}
	}

	return orders, nil
}
