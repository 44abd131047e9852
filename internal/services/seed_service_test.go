package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/database/seeds"
	"github.com/javajoker/storefront-backend/internal/metrics"
	"github.com/javajoker/storefront-backend/internal/models"
)

func (suite *ServiceTestSuite) countRows(model interface{}) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func (suite *ServiceTestSuite) TestSeedPopulatesCatalog() {
	result, err := NewSeedService(suite.db, nil).Seed(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(SeedResult{Seeded: true, Categories: 4, Products: 9}, result)

	catalog := NewCatalogService(suite.db)

	categories, err := catalog.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	slugs := []string{}
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	suite.Equal([]string{"ai-automation", "hosting", "custom-automations", "content-creation"}, slugs)

	products, err := catalog.ListActiveProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(products, 9)
	for _, p := range products {
		suite.True(p.Active)
	}

	product, err := catalog.GetProductBySlug(suite.ctx, "ai-email-assistant")
	suite.Require().NoError(err)
	suite.Equal("299.00", product.Price.String())
	suite.True(product.Featured)

	_, err = catalog.GetProductBySlug(suite.ctx, "does-not-exist")
	suite.True(apperrors.Is(err, apperrors.CodeNotFound))

	featured, err := catalog.ListFeaturedProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(featured, 5)
}

func (suite *ServiceTestSuite) TestSeedTwiceIsNoop() {
	svc := NewSeedService(suite.db, nil)

	_, err := svc.Seed(suite.ctx)
	suite.Require().NoError(err)

	result, err := svc.Seed(suite.ctx)
	suite.Require().NoError(err)
	suite.False(result.Seeded)
	suite.Equal(int64(4), suite.countRows(&models.Category{}))
	suite.Equal(int64(9), suite.countRows(&models.Product{}))
	suite.Equal(int64(1), suite.countRows(&models.SeedRun{}))
}

func (suite *ServiceTestSuite) TestSeedSkipsStoreWithExistingCategories() {
	suite.createCategory("hand-made", 1)

	result, err := NewSeedService(suite.db, nil).Seed(suite.ctx)
	suite.Require().NoError(err)
	suite.False(result.Seeded)
	suite.Equal(int64(1), suite.countRows(&models.Category{}))
	suite.Zero(suite.countRows(&models.Product{}))

	// The skip is recorded, so later calls stop at the seed run.
	var run models.SeedRun
	suite.Require().NoError(suite.db.First(&run, "version = ?", seeds.CatalogVersion).Error)
}

func (suite *ServiceTestSuite) TestConcurrentSeedsInsertOnce() {
	reg := prometheus.NewRegistry()
	svc := NewSeedService(suite.db, metrics.New(reg))

	const callers = 5
	results := make([]SeedResult, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Seed(suite.ctx)
		}(i)
	}
	wg.Wait()

	seeded := 0
	for i := range results {
		suite.Require().NoError(errs[i])
		if results[i].Seeded {
			seeded++
		}
	}
	suite.Equal(1, seeded)
	suite.Equal(int64(4), suite.countRows(&models.Category{}))
	suite.Equal(int64(9), suite.countRows(&models.Product{}))
}

func (suite *ServiceTestSuite) TestSeedRollsBackOnInsertFailure() {
	suite.Require().NoError(suite.db.Migrator().DropTable(&models.ProductResource{}, &models.Product{}))

	_, err := NewSeedService(suite.db, nil).Seed(suite.ctx)
	suite.True(apperrors.Is(err, apperrors.CodeInternal))

	// Neither the categories nor the seed run survive, so a later call retries.
	suite.Zero(suite.countRows(&models.Category{}))
	suite.Zero(suite.countRows(&models.SeedRun{}))
}

func (suite *ServiceTestSuite) TestSeedRejectsInvalidFixtures() {
	svc := NewSeedService(suite.db, nil)
	svc.fixtures = func() []seeds.CategoryFixture {
		fixtures := seeds.Catalog()
		fixtures[1].Products[0].Price = "49.999"
		return fixtures
	}

	_, err := svc.Seed(suite.ctx)
	suite.Error(err)
	suite.Zero(suite.countRows(&models.SeedRun{}))
}
