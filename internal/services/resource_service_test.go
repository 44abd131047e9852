package services

import (
	"net/url"
	"time"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/models"
)

func (suite *ServiceTestSuite) resourceFixture() (*models.User, *models.Product) {
	user := suite.createUser("ada@example.com")
	category := suite.createCategory("ai-automation", 1)
	product := suite.createProduct(category, "ai-email-assistant", "299.00", true, 1)

	resources := []models.ProductResource{
		{ProductID: product.ID, Name: "Installer", FileURL: "s3://downloads/email-assistant/installer.zip", ResourceType: models.ResourceTypeFile},
		{ProductID: product.ID, Name: "Docs", FileURL: "https://docs.example.com/email-assistant", ResourceType: models.ResourceTypeLink},
	}
	suite.Require().NoError(suite.db.Create(&resources).Error)
	return user, product
}

func byName(resources []models.ProductResource) map[string]models.ProductResource {
	named := make(map[string]models.ProductResource, len(resources))
	for _, r := range resources {
		named[r.Name] = r
	}
	return named
}

func (suite *ServiceTestSuite) TestResourcesRequireSession() {
	suite.resourceFixture()
	storage, err := NewStorageService(config.StorageConfig{})
	suite.Require().NoError(err)

	_, err = NewResourceService(suite.db, suite.sessions, storage).ListResourcesForSession(suite.ctx, "", "ai-email-assistant")
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))
}

func (suite *ServiceTestSuite) TestResourcesUnknownProduct() {
	user, _ := suite.resourceFixture()
	storage, _ := NewStorageService(config.StorageConfig{})

	_, err := NewResourceService(suite.db, suite.sessions, storage).ListResourcesForSession(suite.ctx, suite.signIn(user), "missing")
	suite.True(apperrors.Is(err, apperrors.CodeNotFound))
}

func (suite *ServiceTestSuite) TestResourcesRequireCompletedPurchase() {
	user, product := suite.resourceFixture()
	suite.createOrder(user, models.OrderStatusPending, "299.00", 1, product)
	storage, _ := NewStorageService(config.StorageConfig{})

	_, err := NewResourceService(suite.db, suite.sessions, storage).ListResourcesForSession(suite.ctx, suite.signIn(user), "ai-email-assistant")
	suite.True(apperrors.Is(err, apperrors.CodeForbidden))
}

func (suite *ServiceTestSuite) TestResourcesAfterPurchaseWithoutStorage() {
	user, product := suite.resourceFixture()
	suite.createOrder(user, models.OrderStatusCompleted, "299.00", 1, product)
	storage, _ := NewStorageService(config.StorageConfig{})

	resources, err := NewResourceService(suite.db, suite.sessions, storage).ListResourcesForSession(suite.ctx, suite.signIn(user), "ai-email-assistant")
	suite.Require().NoError(err)
	suite.Require().Len(resources, 2)
	suite.Equal("s3://downloads/email-assistant/installer.zip", byName(resources)["Installer"].FileURL)
}

func (suite *ServiceTestSuite) TestResourcesAreSignedWhenStorageConfigured() {
	user, product := suite.resourceFixture()
	suite.createOrder(user, models.OrderStatusCompleted, "299.00", 1, product)
	storage, err := NewStorageService(config.StorageConfig{
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		S3Bucket:        "storefront-resources",
		PresignTTL:      15 * time.Minute,
	})
	suite.Require().NoError(err)

	resources, err := NewResourceService(suite.db, suite.sessions, storage).ListResourcesForSession(suite.ctx, suite.signIn(user), "ai-email-assistant")
	suite.Require().NoError(err)
	suite.Require().Len(resources, 2)
	named := byName(resources)

	signed, err := url.Parse(named["Installer"].FileURL)
	suite.Require().NoError(err)
	suite.Equal("https", signed.Scheme)
	suite.Contains(signed.Host, "downloads")
	suite.Contains(signed.Path, "email-assistant/installer.zip")
	suite.NotEmpty(signed.Query().Get("X-Amz-Signature"))

	suite.Equal("https://docs.example.com/email-assistant", named["Docs"].FileURL)
}
