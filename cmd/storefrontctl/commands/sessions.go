// cmd/storefrontctl/commands/sessions.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/services"
)

var purgeSessionsCmd = &cobra.Command{
	Use:   "purge-sessions",
	Short: "Delete expired sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
			deleted, err := services.NewSessionService(db, cfg.Session).PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(),
				map[string]int64{"deleted": deleted},
				fmt.Sprintf("Deleted %d expired sessions", deleted))
		})
	},
}

func init() {
	rootCmd.AddCommand(purgeSessionsCmd)
}
