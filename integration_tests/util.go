package integration_tests

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/invoicehub/invoicehub.go/db"
	"github.com/invoicehub/invoicehub.go/db/migrations"
	"github.com/invoicehub/invoicehub.go/lib/logging"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/uptrace/bun/migrate"
)

// dashboardTestServiceInit connects to the database named by DATABASE_URI,
// runs migrations and returns a ready service. Tests are skipped when no
// database is configured.
func dashboardTestServiceInit(t *testing.T) *service.DashboardService {
	dbUri, ok := os.LookupEnv("DATABASE_URI")
	if !ok {
		t.Skip("DATABASE_URI not set, skipping database tests")
	}
	c := &service.Config{
		DatabaseUri:             dbUri,
		DatabaseMaxConns:        1,
		DatabaseMaxIdleConns:    1,
		DatabaseConnMaxLifetime: 10,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("failed to init migrations: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return &service.DashboardService{
		Config: c,
		DB:     dbConn,
		Logger: logging.Logger(c.LogFilePath),
	}
}

func clearTable(svc *service.DashboardService, tableName string) error {
	_, err := svc.DB.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	return err
}
