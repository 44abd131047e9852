// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/models"
)

const displayOrdering = "display_order ASC, name ASC"

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order(displayOrdering).Find(&categories).Error; err != nil {
		return nil, apperrors.StoreError(err, "list categories")
	}
	return categories, nil
}

// ListActiveProducts returns every product with active = true. Inactive
// products never appear in listings.
func (s *CatalogService) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order(displayOrdering).
		Find(&products).Error
	if err != nil {
		return nil, apperrors.StoreError(err, "list active products")
	}
	return products, nil
}

func (s *CatalogService) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Where("active = ? AND featured = ?", true, true).
		Order(displayOrdering).
		Find(&products).Error
	if err != nil {
		return nil, apperrors.StoreError(err, "list featured products")
	}
	return products, nil
}

// ListProductsByCategory returns the active products of the category with the
// given slug.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, categorySlug string) ([]models.Product, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", categorySlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(i18n.KeyCategoryNotFound, "category not found: "+categorySlug)
		}
		return nil, apperrors.StoreError(err, "get category")
	}

	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Where("category_id = ? AND active = ?", category.ID, true).
		Order(displayOrdering).
		Find(&products).Error
	if err != nil {
		return nil, apperrors.StoreError(err, "list category products")
	}
	return products, nil
}

// GetProductBySlug matches the slug exactly. Unlike the listings it does not
// filter on active, so an inactive product stays reachable by its slug.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(i18n.KeyProductNotFound, "product not found: "+slug)
		}
		return nil, apperrors.StoreError(err, "get product")
	}
	return &product, nil
}
