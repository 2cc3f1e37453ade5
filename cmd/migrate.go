package cmd

import (
	"github.com/spf13/cobra"

	database "github.com/FACorreiaa/go-starwars-favorites/app/db"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
		if err != nil {
			return err
		}
		return database.RunMigrations(dbConfig.ConnectionURL, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
		if err != nil {
			return err
		}
		return database.RollbackMigrations(dbConfig.ConnectionURL, rollbackSteps, logger)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
