// cmd/storefrontctl/commands/seed.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/database"
	"github.com/javajoker/storefront-backend/internal/services"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter catalog",
	Long: `Insert the starter categories and products. A database that has already been
seeded is left untouched.

Examples:
  storefrontctl seed              # Seed an existing schema
  storefrontctl seed --migrate    # Run migrations first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(_ *config.Config, db *gorm.DB) error {
			if seedMigrate {
				if err := database.RunMigrations(db); err != nil {
					return err
				}
			}

			result, err := services.NewSeedService(db, nil).Seed(cmd.Context())
			if err != nil {
				return err
			}

			text := "Database already seeded"
			if result.Seeded {
				text = fmt.Sprintf("Seeded %d categories and %d products", result.Categories, result.Products)
			}
			return printResult(cmd.OutOrStdout(), result, text)
		})
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Run migrations before seeding")
	rootCmd.AddCommand(seedCmd)
}
