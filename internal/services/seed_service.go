// internal/services/seed_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/database"
	"github.com/javajoker/storefront-backend/internal/database/seeds"
	"github.com/javajoker/storefront-backend/internal/metrics"
	"github.com/javajoker/storefront-backend/internal/models"
)

type SeedResult struct {
	Seeded     bool `json:"seeded"`
	Categories int  `json:"categories"`
	Products   int  `json:"products"`
}

type SeedService struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	fixtures func() []seeds.CategoryFixture
	now      func() time.Time
}

func NewSeedService(db *gorm.DB, m *metrics.Metrics) *SeedService {
	return &SeedService{
		db:       db,
		metrics:  m,
		fixtures: seeds.Catalog,
		now:      time.Now,
	}
}

// Seed inserts the reference catalog once. The seed_runs insert and the
// catalog inserts share one transaction, so concurrent callers race on the
// seed_runs primary key and exactly one of them inserts the catalog. A store
// that already holds categories is treated as seeded.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	categories, products, err := seeds.Build(s.fixtures())
	if err != nil {
		s.metrics.IncSeedRun(metrics.SeedResultFailed)
		return SeedResult{}, apperrors.Wrap(apperrors.CodeInternal, err, "build seed fixtures")
	}

	var result SeedResult
	err = database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		run := models.SeedRun{Version: seeds.CatalogVersion, AppliedAt: s.now()}
		claim := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&run)
		if claim.Error != nil {
			return apperrors.StoreError(claim.Error, "record seed run")
		}
		if claim.RowsAffected == 0 {
			return nil
		}

		var existing int64
		if err := tx.Model(&models.Category{}).Count(&existing).Error; err != nil {
			return apperrors.StoreError(err, "count categories")
		}
		if existing > 0 {
			return nil
		}

		if err := tx.Create(&categories).Error; err != nil {
			return apperrors.StoreError(err, "insert categories")
		}
		if err := tx.Create(&products).Error; err != nil {
			return apperrors.StoreError(err, "insert products")
		}

		result = SeedResult{Seeded: true, Categories: len(categories), Products: len(products)}
		return nil
	})
	if err != nil {
		s.metrics.IncSeedRun(metrics.SeedResultFailed)
		logrus.WithError(err).Error("Database seeding failed")
		return SeedResult{}, err
	}

	entry := logrus.WithField("version", seeds.CatalogVersion)
	if result.Seeded {
		s.metrics.IncSeedRun(metrics.SeedResultSeeded)
		entry.WithFields(logrus.Fields{
			"categories": result.Categories,
			"products":   result.Products,
		}).Info("Database seeded")
	} else {
		s.metrics.IncSeedRun(metrics.SeedResultSkipped)
		entry.Info("Database already seeded")
	}
	return result, nil
}
