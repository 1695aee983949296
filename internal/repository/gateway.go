package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/finvoice/dashboard-api/internal/apperr"
)

// DB is the slice of *pgxpool.Pool the repositories depend on. Keeping it
// narrow lets tests substitute a fake executor.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QueryOptions carries per-call store-access policy.
type QueryOptions struct {
	// BypassCache forces the read to hit the source of truth instead of
	// any cache a fronting layer might hold.
	BypassCache bool
}

// NoCache is the read policy for every operation in this layer: caching is
// disabled, trading latency for read-after-write consistency. The flag is
// passed per call so the policy stays visible at each call site.
var NoCache = QueryOptions{BypassCache: true}

// Gateway executes parameterized statements and maps driver-level failures
// to generic, loggable ones. The original error is written to the
// operational log; callers only ever see an apperr.DatabaseError naming the
// failed operation category.
type Gateway struct {
	db  DB
	log zerolog.Logger
}

// NewGateway creates a Gateway over db, logging failures to log.
func NewGateway(db DB, log zerolog.Logger) *Gateway {
	return &Gateway{db: db, log: log.With().Str("component", "gateway").Logger()}
}

// Query runs a parameterized read for the named operation category.
func (g *Gateway) Query(ctx context.Context, op string, opts QueryOptions, sql string, args ...any) (pgx.Rows, error) {
	g.trace(op, opts)
	rows, err := g.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, g.Fail(op, err)
	}
	return rows, nil
}

// QueryRow runs a single-row parameterized read. Errors surface at Scan
// time; use Fail to wrap them.
func (g *Gateway) QueryRow(ctx context.Context, op string, opts QueryOptions, sql string, args ...any) pgx.Row {
	g.trace(op, opts)
	return g.db.QueryRow(ctx, sql, args...)
}

// Exec runs a single parameterized write for the named operation category.
func (g *Gateway) Exec(ctx context.Context, op string, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := g.db.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, g.Fail(op, err)
	}
	return tag, nil
}

// Fail logs the original error under the operation category and returns the
// generic, user-safe replacement. Row-iteration and scan errors in the
// repositories funnel through here too.
func (g *Gateway) Fail(op string, err error) error {
	g.log.Error().Err(err).Str("op", op).Msg("database operation failed")
	return apperr.NewDatabase(op)
}

func (g *Gateway) trace(op string, opts QueryOptions) {
	g.log.Debug().Str("op", op).Bool("bypass_cache", opts.BypassCache).Msg("executing query")
}
