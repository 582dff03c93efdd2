package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS boards (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    scene      JSONB NOT NULL DEFAULT '[]',
    version    BIGINT NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const boardColumns = `id, name, scene, version, created_at, updated_at`

type Postgres struct {
	pool *pgxpool.Pool
}

// NewPool connects and pings.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (p *Postgres) Create(ctx context.Context, id, name string, scene []byte) (*Board, error) {
	row := p.pool.QueryRow(ctx,
		`INSERT INTO boards (id, name, scene) VALUES ($1, $2, $3) RETURNING `+boardColumns,
		id, name, sceneOrEmpty(scene))
	b, err := scanBoard(row)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	return b, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*Board, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = $1`, id)
	b, err := scanBoard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	return b, nil
}

func (p *Postgres) List(ctx context.Context) ([]Board, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+boardColumns+` FROM boards ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var boards []Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) SaveScene(ctx context.Context, id string, scene []byte) (*Board, error) {
	row := p.pool.QueryRow(ctx,
		`UPDATE boards SET scene = $2, version = version + 1, updated_at = now()
		 WHERE id = $1 RETURNING `+boardColumns,
		id, sceneOrEmpty(scene))
	b, err := scanBoard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("save scene: %w", err)
	}
	return b, nil
}

func scanBoard(row pgx.Row) (*Board, error) {
	var b Board
	if err := row.Scan(&b.ID, &b.Name, &b.Scene, &b.Version, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func sceneOrEmpty(scene []byte) string {
	if len(scene) == 0 {
		return "[]"
	}
	return string(scene)
}
