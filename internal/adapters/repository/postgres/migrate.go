package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate applies every embedded *.up.sql file in name order. The statements
// are idempotent, so running it on every start is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := migrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		if err := execMigration(ctx, db, name); err != nil {
			return err
		}
	}
	return nil
}

// MigrateOne runs the single migration file whose name ends with
// "<name>.sql", e.g. "003_create_votes.down".
func MigrateOne(ctx context.Context, db *sql.DB, name string) (string, error) {
	fileName, err := migrationFileName(name)
	if err != nil {
		return "", err
	}
	return fileName, execMigration(ctx, db, fileName)
}

func migrationNames() ([]string, error) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func migrationFileName(name string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(name)))
	if err != nil {
		return "", fmt.Errorf("invalid migration name: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if regex.MatchString(n) {
			return n, nil
		}
	}
	return "", fmt.Errorf("migration file not found: %s", name)
}

func execMigration(ctx context.Context, db *sql.DB, fileName string) error {
	content, err := migrationsFS.ReadFile(migrationsDir + "/" + fileName)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", fileName, err)
	}
	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", fileName, err)
	}
	return nil
}
