// Package dbtest opens throwaway sqlite databases with the production schema
// applied, for repository and service tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/angelmondragon/hotelops-backend/pkg/config"
	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/migrate"
	"github.com/pressly/goose/v3"
)

var seq atomic.Int64

// Open returns a migrated, uniquely named in-memory database. It is closed
// when the test finishes.
func Open(t testing.TB) *db.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, seq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn, Driver: config.DriverSQLite}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}

	goose.SetLogger(goose.NopLogger())
	if err := migrate.Run(context.Background(), sqlDB, migrate.Source{Driver: config.DriverSQLite}, "up"); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return client
}
