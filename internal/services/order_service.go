// internal/services/order_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/metrics"
	"github.com/javajoker/storefront-backend/internal/models"
)

// itemFetchConcurrency bounds the per-order item queries of one request.
const itemFetchConcurrency = 4

type OrderService struct {
	db       *gorm.DB
	sessions SessionResolver
	metrics  *metrics.Metrics
}

func NewOrderService(db *gorm.DB, sessions SessionResolver, m *metrics.Metrics) *OrderService {
	return &OrderService{
		db:       db,
		sessions: sessions,
		metrics:  m,
	}
}

// ListOrdersForSession returns the purchase history of the session's user.
// No order query runs until the credential has resolved to a live session.
func (s *OrderService) ListOrdersForSession(ctx context.Context, credential string) ([]models.Order, error) {
	identity, err := s.sessions.Resolve(ctx, credential)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeInternal) {
			return nil, err
		}
		return nil, apperrors.Unauthorized("no valid session")
	}

	return s.ListOrdersForUser(ctx, identity.User.ID)
}

// ListOrdersForUser returns the user's orders, oldest first, each with its
// items. A failure fetching any order's items fails the whole call.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, apperrors.StoreError(err, "list orders")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(itemFetchConcurrency)
	for i := range orders {
		order := &orders[i]
		g.Go(func() error {
			items := []models.OrderItem{}
			if err := s.db.WithContext(gctx).Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
				return apperrors.StoreError(err, "list order items")
			}
			order.Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.ObserveOrderHistory(len(orders))
	return orders, nil
}
