package cli

import (
	"github.com/spf13/cobra"

	"docadmin/internal/config"
	"docadmin/internal/database"
	"docadmin/internal/database/migration"
	"docadmin/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Record Store schema if it is missing",
	Long:  "Connects with the DB_* environment (or .env) and applies the schema. Safe to run repeatedly.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := database.NewPostgres(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host); err != nil {
			return err
		}
		cmd.Println("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
