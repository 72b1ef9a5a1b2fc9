package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/foodhive/utils/logger"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedded embed.FS

const (
	createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
version VARCHAR(255) NOT NULL PRIMARY KEY,
applied_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
)`
	appliedVersionsQuery = `SELECT version FROM schema_migrations`
	recordVersionQuery   = `INSERT INTO schema_migrations (version) VALUES (?)`
)

// Migrate applies the embedded .sql files that are not yet recorded in
// schema_migrations, in file name order. It returns the applied versions.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, err
	}
	return run(ctx, db, sub)
}

func run(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, appliedVersionsQuery); err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	isDone := make(map[string]bool, len(done))
	for _, v := range done {
		isDone[v] = true
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var applied []string
	for _, file := range files {
		if isDone[file] {
			logger.Debug("skip applied migration", zap.String("file", file))
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", file, err)
		}

		logger.Info("applying migration", zap.String("file", file))
		// MySQL commits DDL implicitly, so each statement runs on its own.
		for _, stmt := range statements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("execute migration %s: %w", file, err)
			}
		}

		if _, err := db.ExecContext(ctx, recordVersionQuery, file); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", file, err)
		}
		applied = append(applied, file)
	}

	return applied, nil
}

// statements splits a migration file on semicolons, dropping comment lines.
func statements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	var out []string
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
