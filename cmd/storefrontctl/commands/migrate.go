// cmd/storefrontctl/commands/migrate.go
package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update tables, foreign keys and indexes for every storefront model.
Running it repeatedly is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(_ *config.Config, db *gorm.DB) error {
			if err := database.RunMigrations(db); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(),
				map[string]interface{}{"migrated": true, "models": len(database.Models())},
				"Migrations complete")
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
