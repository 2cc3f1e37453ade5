package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-starwars-favorites/app/observability/metrics"
)

// DB is the subset of *pgxpool.Pool the repositories depend on.
// pgxmock.PgxPoolIface satisfies it as well.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InstrumentedDB records query duration and error metrics around a DB.
type InstrumentedDB struct {
	db DB
	m  *metrics.AppMetrics
}

var _ DB = (*InstrumentedDB)(nil)

func NewInstrumentedDB(db DB, m *metrics.AppMetrics) *InstrumentedDB {
	return &InstrumentedDB{db: db, m: m}
}

func (i *InstrumentedDB) observe(ctx context.Context, op string, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("db.operation", op))
	i.m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		i.m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

func (i *InstrumentedDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := i.db.Exec(ctx, sql, args...)
	i.observe(ctx, "exec", start, err)
	return tag, err
}

func (i *InstrumentedDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := i.db.Query(ctx, sql, args...)
	i.observe(ctx, "query", start, err)
	return rows, err
}

func (i *InstrumentedDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &observedRow{row: i.db.QueryRow(ctx, sql, args...), ctx: ctx, start: time.Now(), parent: i}
}

// observedRow defers the measurement to Scan, where pgx surfaces the error.
type observedRow struct {
	row    pgx.Row
	ctx    context.Context
	start  time.Time
	parent *InstrumentedDB
}

func (r *observedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	r.parent.observe(r.ctx, "query_row", r.start, err)
	return err
}
