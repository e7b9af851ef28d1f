package services

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopterm/internal/database"
	"shopterm/internal/repositories"
)

type testEnv struct {
	db        *sql.DB
	auth      *AuthService
	catalog   *CatalogService
	cart      *CartService
	orders    *OrderService
	inventory *InventoryService
	reports   *ReportService
}

// newTestEnv wires every service against a migrated, seeded temp database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "shop.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, database.RunMigrations(db, log))
	require.NoError(t, database.Seed(db, log, false))

	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	productRepo := repositories.NewProductRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	return &testEnv{
		db:        db,
		auth:      NewAuthService(userRepo, customerRepo, sessionRepo),
		catalog:   NewCatalogService(productRepo, activityRepo, DefaultPageSize),
		cart:      NewCartService(cartRepo, productRepo),
		orders:    NewOrderService(orderRepo, DefaultPageSize),
		inventory: NewInventoryService(productRepo),
		reports:   NewReportService(reportRepo),
	}
}

func (e *testEnv) startSession(t *testing.T, cid int) int {
	t.Helper()
	sessionNo, err := e.auth.StartSession(cid, time.Now())
	require.NoError(t, err)
	return sessionNo
}
