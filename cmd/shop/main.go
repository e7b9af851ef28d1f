// Package main is the entry point for the shopterm application. The root
// command opens the database, applies migrations and seed data, then runs
// the terminal UI; the seed subcommand loads fixture data and exits.
package main

import (
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"shopterm/internal/config"
	"shopterm/internal/database"
	"shopterm/internal/logger"
	"shopterm/internal/repositories"
	"shopterm/internal/services"
	"shopterm/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "shopterm",
		Short: "Terminal inventory and shopping application",
		Long: `shopterm is a terminal storefront backed by a local SQLite database.
Customers search products, manage a cart, check out and review past
orders; sales staff maintain inventory and read sales reports.

Configuration is read from the environment (a .env file is honored):
SHOP_DB_PATH, SHOP_PAGE_SIZE, SHOP_LOG_LEVEL, SHOP_LOG_TYPE, SHOP_LOG_FILE.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}

	rootCmd.AddCommand(newSeedCommand())

	return rootCmd.Execute()
}

func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := database.RunMigrations(db, logg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.Seed(db, logg, false); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	productRepo := repositories.NewProductRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	svc := tui.Services{
		Auth:      services.NewAuthService(userRepo, customerRepo, sessionRepo),
		Catalog:   services.NewCatalogService(productRepo, activityRepo, cfg.PageSize),
		Cart:      services.NewCartService(cartRepo, productRepo),
		Orders:    services.NewOrderService(orderRepo, cfg.PageSize),
		Inventory: services.NewInventoryService(productRepo),
		Reports:   services.NewReportService(reportRepo),
	}

	logg.Info("starting terminal ui", "db", cfg.DBPath)
	return tui.New(svc, logg).Run()
}

func newSeedCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logg, err := logger.New(config.LogConfig{
				Level: cfg.Log.Level,
				Type:  "console",
			})
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := database.RunMigrations(db, logg); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			return database.Seed(db, logg, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace existing data")
	return cmd
}
