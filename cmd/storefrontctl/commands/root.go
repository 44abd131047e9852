// cmd/storefrontctl/commands/root.go
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/database"
	"github.com/javajoker/storefront-backend/internal/logging"
)

var (
	// Global flags
	logLevel   string
	jsonOutput bool
)

// Overridden in tests.
var (
	loadConfig   = config.Load
	openDatabase = func(cfg *config.Config) (*gorm.DB, error) {
		return database.Initialize(cfg.Database)
	}
	closeDatabase = database.Close
)

var rootCmd = &cobra.Command{
	Use:   "storefrontctl",
	Short: "Maintenance tasks for the storefront backend",
	Long: `storefrontctl runs one-off maintenance tasks against the storefront database
using the same environment configuration as the API server.

Commands:
  migrate          - Create or update the schema
  seed             - Load the starter catalog if it has not been loaded
  purge-sessions   - Delete expired sign-in sessions`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(false, logLevel)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// withDatabase loads configuration, opens the database and hands both to fn.
func withDatabase(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDatabase(db)

	return fn(cfg, db)
}

// printResult writes v as JSON when --json is set and the text line otherwise.
func printResult(out io.Writer, v interface{}, text string) error {
	if jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
