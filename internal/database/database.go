package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"portfolioAPI/internal/config"
)

type DB struct {
	*sqlx.DB
}

// DSN renders the connection settings as a postgres:// URL, the form both
// lib/pq and the migrator accept.
func DSN(cfg config.DB) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   cfg.DbHOST + ":" + cfg.DbPORT,
		User:   url.UserPassword(cfg.DbUSER, cfg.DbPASSWORD),
		Path:   cfg.DbNAME,
	}
	q := u.Query()
	q.Set("sslmode", cfg.DbSSLMODE)
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB(ctx context.Context, cfg config.DB, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database", slog.String("host", cfg.DbHOST), slog.String("dbname", cfg.DbNAME))

	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &DB{db}, nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return db.PingContext(ctx)
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}
