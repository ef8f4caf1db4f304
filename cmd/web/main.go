package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dono-tools/receipt-atlas/pkg/server"
	"github.com/dono-tools/receipt-atlas/pkg/services/config"
	"github.com/dono-tools/receipt-atlas/pkg/services/history"
	"github.com/dono-tools/receipt-atlas/pkg/services/receipt"
	"github.com/dono-tools/receipt-atlas/pkg/store/duckdb"
	"github.com/dono-tools/receipt-atlas/pkg/store/duckdb/campaign"
	"github.com/dono-tools/receipt-atlas/pkg/store/qbo"
)

var (
	profilesPath string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the receipt-atlas web server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.qbprofiles", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", defaultPath,
		"Path to the connection profiles file (default is $HOME/.qbprofiles)")
	rootCmd.Flags().StringVarP(&settingsPath, "config", "c", "",
		"Path to the server settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: settings.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	campaignStore, err := campaign.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create campaign store: %w", err)
	}

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Realm: `%s`", profile.Name, profile.RealmID)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            settings.Addr,
		ShutdownTimeout: settings.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Registry: registry,
			History:  history.NewService(campaignStore),
			// Profiles without an explicit page_size fall back to the
			// server-wide setting.
			Fetcher: func(ctx context.Context, cfg *qbo.Config) receipt.Fetcher {
				if cfg.PageSize <= 0 {
					cfg.PageSize = settings.CustomerPageSize
				}
				return qbo.NewClient(ctx, *cfg)
			},
		},
	})

	return api.Start()
}
