package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appLogger "github.com/FACorreiaa/go-starwars-favorites/app/logger"
	"github.com/FACorreiaa/go-starwars-favorites/config"
)

var (
	envFile string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "starwars-favorites",
	Short: "Star Wars favorites REST API",
	Long: `Serves CRUD endpoints for users, planets, characters and starships,
plus per-user favorites, backed by PostgreSQL.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading configuration")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// setupCommand loads the dotenv file, configuration and logger shared by every subcommand.
func setupCommand(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	logger = appLogger.New(cfg.Mode, cmd.OutOrStdout())
	slog.SetDefault(logger)
	return nil
}
