package database

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"backpedidos/pkg"
	"backpedidos/pkg/logger"
)

// ConnectPostgres builds the process-wide pgx pool from environment
// variables and verifies it with one round trip.
//
// Supported env vars:
//   - SUPABASE_DB_URL or DATABASE_URL (required; pooler transaction URL works)
//   - PGPOOL_MAX_CONNS (default: 4)  — keep small, we may sit behind a pooler
//   - PGPOOL_MIN_CONNS (default: 0)  — lets the host hibernate connectionless
//   - PGPOOL_CONN_LIFETIME_MIN (default: 30)
//   - PGPOOL_CONN_IDLE_MIN (default: 5)
func ConnectPostgres(ctx context.Context, log *logger.Logger) (*pgxpool.Pool, error) {
	dsn := os.Getenv("SUPABASE_DB_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, errors.New("missing SUPABASE_DB_URL/DATABASE_URL in environment")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(getenvInt("PGPOOL_MAX_CONNS", 4))
	cfg.MinConns = int32(getenvInt("PGPOOL_MIN_CONNS", 0))
	cfg.MaxConnLifetime = time.Duration(getenvInt("PGPOOL_CONN_LIFETIME_MIN", 30)) * time.Minute
	cfg.MaxConnIdleTime = time.Duration(getenvInt("PGPOOL_CONN_IDLE_MIN", 5)) * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	cfg.ConnConfig.RuntimeParams["application_name"] = "backpedidos"
	// Server-side timeouts bound every statement and any transaction left
	// idle mid-flight.
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000"
	cfg.ConnConfig.RuntimeParams["idle_in_transaction_session_timeout"] = "10000"

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("postgres pool ready", "max_conns", cfg.MaxConns, "min_conns", cfg.MinConns)
	return pool, nil
}

// Healthcheck runs SELECT 1 against the pool. It never panics and never
// returns an error, only false.
func Healthcheck(ctx context.Context, pool *pgxpool.Pool) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var one int
	if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return false
	}
	return one == 1
}

func retryable(err error) bool {
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// WithRetry runs fn and, when it fails on a dropped connection, runs it once
// more on a fresh pool connection. A second connection-level failure is
// surfaced as pkg.ErrStorageUnavailable; everything else propagates as-is.
func WithRetry(ctx context.Context, log *logger.Logger, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || !retryable(err) {
		return err
	}
	log.Warn("retrying after dropped connection", "op", op, "error", err)
	if err = fn(ctx); err == nil {
		return nil
	}
	if retryable(err) {
		log.Error("storage unavailable after retry", "op", op, "error", err)
		return pkg.ErrStorageUnavailable
	}
	return err
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
