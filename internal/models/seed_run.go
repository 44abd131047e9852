// internal/models/seed_run.go
package models

import "time"

// SeedRun records that a versioned seed set has been applied. The primary key
// on Version makes concurrent seeders race on a single insert.
type SeedRun struct {
	Version   string    `json:"version" gorm:"primaryKey;size:64"`
	AppliedAt time.Time `json:"applied_at" gorm:"not null"`
}
