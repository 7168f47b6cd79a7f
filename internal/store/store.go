package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store archives generated chat datasets in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the archive table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_datasets (
			id uuid PRIMARY KEY,
			platform text NOT NULL,
			participant_count int NOT NULL,
			message_count int NOT NULL,
			attachment_count int NOT NULL,
			case_number text NOT NULL,
			operation_name text NOT NULL,
			window_start timestamptz NOT NULL,
			window_end timestamptz NOT NULL,
			document jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create chat_datasets: %w", err)
	}
	return nil
}
