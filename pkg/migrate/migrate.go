package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/angelmondragon/hotelops-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

// DefaultRoot is the on-disk location of the migration sources, used by the
// create and validate commands.
const DefaultRoot = "pkg/migrate/migrations"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedded embed.FS

// DefaultDir returns the on-disk migrations directory for a driver.
func DefaultDir(driver string) string {
	return path.Join(DefaultRoot, dialectDir(driver))
}

// Embedded exposes the bundled migrations for a driver.
func Embedded(driver string) (fs.FS, error) {
	return fs.Sub(embedded, path.Join("migrations", dialectDir(driver)))
}

func dialectDir(driver string) string {
	if driver == config.DriverSQLite {
		return "sqlite"
	}
	return "postgres"
}

func gooseDialect(driver string) goose.Dialect {
	if driver == config.DriverSQLite {
		return goose.DialectSQLite3
	}
	return goose.DialectPostgres
}

// Source selects where goose reads migrations from. An empty Dir means the
// migrations bundled into the binary.
type Source struct {
	Driver string
	Dir    string
}

func (s Source) prepare() (string, error) {
	if err := goose.SetDialect(string(gooseDialect(s.Driver))); err != nil {
		return "", fmt.Errorf("set goose dialect: %w", err)
	}
	if s.Dir != "" {
		goose.SetBaseFS(nil)
		return s.Dir, nil
	}
	sub, err := Embedded(s.Driver)
	if err != nil {
		return "", fmt.Errorf("open embedded migrations: %w", err)
	}
	goose.SetBaseFS(sub)
	return ".", nil
}

// Run executes a standard goose command that requires a DB connection.
func Run(ctx context.Context, db *sql.DB, src Source, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	dir, err := src.prepare()
	if err != nil {
		return err
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, src Source, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	dir, err := src.prepare()
	if err != nil {
		return err
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if err := goose.UpToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if err := goose.DownToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}
