// internal/services/resource_service.go
package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/models"
)

// ResourceService serves the files, links and documents a customer unlocks by
// completing a purchase.
type ResourceService struct {
	db       *gorm.DB
	sessions SessionResolver
	storage  *StorageService
}

func NewResourceService(db *gorm.DB, sessions SessionResolver, storage *StorageService) *ResourceService {
	return &ResourceService{
		db:       db,
		sessions: sessions,
		storage:  storage,
	}
}

func (s *ResourceService) ListResourcesForSession(ctx context.Context, credential, productSlug string) ([]models.ProductResource, error) {
	identity, err := s.sessions.Resolve(ctx, credential)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeInternal) {
			return nil, err
		}
		return nil, apperrors.Unauthorized("no valid session")
	}

	var product models.Product
	if err := s.db.WithContext(ctx).Where("slug = ?", productSlug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(i18n.KeyProductNotFound, "product not found: "+productSlug)
		}
		return nil, apperrors.StoreError(err, "get product")
	}

	purchased, err := s.hasCompletedPurchase(ctx, identity.User, &product)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, apperrors.Forbidden(i18n.KeyOrderPurchaseRequired, "product not purchased")
	}

	resources := []models.ProductResource{}
	err = s.db.WithContext(ctx).
		Where("product_id = ?", product.ID).
		Order("created_at ASC, name ASC").
		Find(&resources).Error
	if err != nil {
		return nil, apperrors.StoreError(err, "list product resources")
	}

	for i := range resources {
		if !resources[i].ResourceType.Downloadable() {
			continue
		}
		signed, err := s.storage.SignedURL(ctx, resources[i].FileURL)
		if err != nil {
			logrus.WithError(err).WithField("resource_id", resources[i].ID).Error("Failed to sign resource URL")
			return nil, apperrors.Wrap(apperrors.CodeInternal, err, "sign resource url")
		}
		resources[i].FileURL = signed
	}

	return resources, nil
}

// hasCompletedPurchase reports whether the user holds a completed order with
// an item that still references the product.
func (s *ResourceService) hasCompletedPurchase(ctx context.Context, user *models.User, product *models.Product) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			user.ID, models.OrderStatusCompleted, product.ID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.StoreError(err, "check purchase")
	}
	return count > 0, nil
}
