package services

import (
	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/models"
)

func productSlugs(products []models.Product) []string {
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func (suite *ServiceTestSuite) TestListCategoriesOrdersByDisplayOrder() {
	suite.createCategory("third", 3)
	suite.createCategory("first", 1)
	suite.createCategory("second", 2)

	categories, err := NewCatalogService(suite.db).ListCategories(suite.ctx)
	suite.Require().NoError(err)

	slugs := []string{}
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	suite.Equal([]string{"first", "second", "third"}, slugs)
}

func (suite *ServiceTestSuite) TestListCategoriesEmptyIsNotNil() {
	categories, err := NewCatalogService(suite.db).ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func (suite *ServiceTestSuite) TestListActiveProductsExcludesInactive() {
	category := suite.createCategory("hosting", 1)
	suite.createProduct(category, "retired-plan", "10.00", false, 1)
	suite.createProduct(category, "enterprise", "199.00", true, 2)
	suite.createProduct(category, "professional", "49.00", true, 1)

	products, err := NewCatalogService(suite.db).ListActiveProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"professional", "enterprise"}, productSlugs(products))
	for _, p := range products {
		suite.True(p.Active)
	}
}

func (suite *ServiceTestSuite) TestListFeaturedProducts() {
	category := suite.createCategory("ai", 1)
	featured := suite.createProduct(category, "assistant", "299.00", true, 1)
	suite.Require().NoError(suite.db.Model(featured).Update("featured", true).Error)
	hidden := suite.createProduct(category, "hidden", "1.00", false, 2)
	suite.Require().NoError(suite.db.Model(hidden).Update("featured", true).Error)
	suite.createProduct(category, "plain", "1.00", true, 3)

	products, err := NewCatalogService(suite.db).ListFeaturedProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"assistant"}, productSlugs(products))
}

func (suite *ServiceTestSuite) TestListProductsByCategory() {
	hosting := suite.createCategory("hosting", 1)
	content := suite.createCategory("content", 2)
	suite.createProduct(hosting, "professional", "49.00", true, 1)
	suite.createProduct(hosting, "legacy", "9.00", false, 2)
	suite.createProduct(content, "writer", "149.00", true, 1)

	svc := NewCatalogService(suite.db)
	products, err := svc.ListProductsByCategory(suite.ctx, "hosting")
	suite.Require().NoError(err)
	suite.Equal([]string{"professional"}, productSlugs(products))

	_, err = svc.ListProductsByCategory(suite.ctx, "missing")
	suite.True(apperrors.Is(err, apperrors.CodeNotFound))
}

func (suite *ServiceTestSuite) TestGetProductBySlug() {
	category := suite.createCategory("hosting", 1)
	suite.createProduct(category, "professional", "49.00", true, 1)
	suite.createProduct(category, "retired", "5.00", false, 2)

	svc := NewCatalogService(suite.db)

	product, err := svc.GetProductBySlug(suite.ctx, "professional")
	suite.Require().NoError(err)
	suite.Equal("49.00", product.Price.String())

	// Direct lookup does not filter on active.
	product, err = svc.GetProductBySlug(suite.ctx, "retired")
	suite.Require().NoError(err)
	suite.False(product.Active)

	_, err = svc.GetProductBySlug(suite.ctx, "Professional")
	suite.True(apperrors.Is(err, apperrors.CodeNotFound))

	_, err = svc.GetProductBySlug(suite.ctx, "does-not-exist")
	suite.True(apperrors.Is(err, apperrors.CodeNotFound))
}

func (suite *ServiceTestSuite) TestCatalogStoreFailureIsInternal() {
	suite.Require().NoError(suite.db.Migrator().DropTable(&models.ProductResource{}, &models.Product{}))

	_, err := NewCatalogService(suite.db).ListActiveProducts(suite.ctx)
	suite.True(apperrors.Is(err, apperrors.CodeInternal))
}
