package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/config"
	"carbon-quiz-service/internal/infra/memory"
	pgstore "carbon-quiz-service/internal/infra/postgres"
	sqlitestore "carbon-quiz-service/internal/infra/sqlite"
	"github.com/jackc/pgx/v4/pgxpool"
)

// openSubmissionStore picks Postgres when a URL is configured, then SQLite, and
// falls back to process memory. The returned func releases the connection.
func openSubmissionStore(ctx context.Context, cfg config.Config) (app.SubmissionStore, func(), error) {
	switch {
	case cfg.Postgres.URL != "":
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Printf("submissions: postgres")
		return pgstore.NewSubmissionStore(pool), pool.Close, nil

	case cfg.SQLite.Path != "":
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		db, err := sqlitestore.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.Printf("submissions: sqlite %s", cfg.SQLite.Path)
		return sqlitestore.NewSubmissionStore(db), func() { _ = sqlDB.Close() }, nil

	default:
		log.Printf("submissions: in-memory (nothing persists across restarts)")
		return memory.NewSubmissionStore(), func() {}, nil
	}
}
