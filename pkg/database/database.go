package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseQueryer is the subset of pgx shared by *pgxpool.Pool and pgx.Tx,
// so repositories can run inside or outside a transaction.
type DatabaseQueryer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type DatabaseTx interface {
	DatabaseQueryer
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxBeginner is the store handle services receive. It is constructed once in
// main and passed down, never imported as a singleton, so tests can swap in
// doubles.
type TxBeginner interface {
	DatabaseQueryer
	BeginTx(ctx context.Context) (DatabaseTx, error)
}

type Pool struct {
	*pgxpool.Pool
}

func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{Pool: pool}
}

func (p *Pool) BeginTx(ctx context.Context) (DatabaseTx, error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func ConnectDB(connString string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		panic(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		panic(err)
	}

	return pool
}
