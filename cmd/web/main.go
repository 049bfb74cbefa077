package main

import (
	"fmt"
	"os"

	"github.com/boerenkompas/dashboard/pkg/config"
	"github.com/boerenkompas/dashboard/pkg/server"
	"github.com/boerenkompas/dashboard/pkg/services/kpi"
	"github.com/boerenkompas/dashboard/pkg/services/tenant"
	sqlstore "github.com/boerenkompas/dashboard/pkg/store/sql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the dashboard KPI API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).Level(cfg.Level()).With().
		Timestamp().
		Str("environment", cfg.Environment).
		Logger()

	db, dialect, err := sqlstore.Open(cfg.StoreSettings())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	counts, err := sqlstore.NewCountStore(db, dialect)
	if err != nil {
		return fmt.Errorf("failed to create count store: %w", err)
	}
	memberships, err := sqlstore.NewTenantStore(db, dialect)
	if err != nil {
		return fmt.Errorf("failed to create tenant store: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Bool("debug_endpoint", cfg.Debug.Enabled).
		Msg("store connected")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		UserHeader:      cfg.Auth.UserHeader,
		DebugEnabled:    cfg.Debug.Enabled,
		Dependencies: server.Dependencies{
			KPI:     kpi.NewService(counts, kpi.Options{Environment: cfg.Environment}),
			Tenants: tenant.NewResolver(memberships),
			Store:   counts,
			Logger:  logger,
		},
	})

	return api.Start()
}
