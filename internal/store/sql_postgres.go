package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/pathways/internal/config"
	"github.com/MKhiriev/pathways/internal/logger"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/sethvargo/go-retry"
)

// Options controls the pool and the connectivity check.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// PingTimeout bounds the whole check, retries included.
	PingTimeout time.Duration
	// PingRetries is the number of extra pings after a retryable failure.
	PingRetries uint64
	// RetryBase is the first backoff delay; it doubles on every retry.
	RetryBase time.Duration
}

// DefaultOptions returns defaults for the web application's pool.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    4,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     10 * time.Second,
		PingRetries:     3,
		RetryBase:       200 * time.Millisecond,
	}
}

var openDB = sql.Open

// DB is a database/sql handle opened from a resolved configuration.
type DB struct {
	*sql.DB
	errorClassificator *PostgresErrorClassifier
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool for cfg.DatabaseURI through the
// pgx driver and verifies connectivity with a ping. Pings failing with a
// retryable PostgreSQL error are repeated with exponential backoff until
// opts.PingRetries is exhausted or opts.PingTimeout expires.
func NewConnectPostgres(ctx context.Context, cfg *config.Configuration, opts Options, log *logger.Logger) (*DB, error) {
	if log == nil {
		log = logger.Nop()
	}

	// validate the URI before handing it to database/sql, which defers parsing
	if _, err := pgx.ParseConfig(cfg.DatabaseURI); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid database uri")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabaseURI, err)
	}

	// establish connection
	conn, err := openDB("pgx", cfg.DatabaseURI)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// setup connections
	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(opts.ConnMaxLifetime)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	// ping database
	if err = db.ping(ctx, opts); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, pingError(err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", cfg.DB.Hostname).
		Str("database", cfg.DB.Database).
		Msg("connected to database successfully")

	return db, nil
}

func (db *DB) ping(ctx context.Context, opts Options) error {
	if opts.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
		defer cancel()
	}

	base := opts.RetryBase
	if base <= 0 {
		base = time.Millisecond
	}
	backoff := retry.WithMaxRetries(opts.PingRetries, retry.NewExponential(base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database not ready, retrying ping")
			return retry.RetryableError(err)
		}

		return err
	})
}
