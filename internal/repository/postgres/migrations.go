package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations выполняет миграции базы данных.
// Находит все *.up.sql в алфавитном порядке и пропускает уже примененные,
// отмечая их в schema_migrations.
func RunMigrations(ctx context.Context, db DBTX, logger *zap.Logger) error {
	return runMigrations(ctx, db, migrationsFS, logger)
}

func runMigrations(ctx context.Context, db DBTX, source fs.FS, logger *zap.Logger) error {
	names, err := upMigrations(source)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, name := range names {
		var applied bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`,
			name,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if applied {
			logger.Debug("migration already applied", zap.String("name", name))
			continue
		}

		content, err := fs.ReadFile(source, path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		logger.Info("running migration", zap.String("name", name))
		if err := applyMigration(ctx, db, name, string(content)); err != nil {
			return err
		}
		logger.Info("migration completed", zap.String("name", name))
	}

	return nil
}

// applyMigration выполняет миграцию и отмечает ее в одной транзакции
func applyMigration(ctx context.Context, db DBTX, name, content string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", name, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err := tx.Exec(ctx, content); err != nil {
		return fmt.Errorf("failed to run migration %s: %w", name, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", name, err)
	}

	return nil
}

func upMigrations(source fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(source, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
