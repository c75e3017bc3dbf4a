package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/hotsauce86/Stream-TV/internal/config"
)

// dsn assembles the MySQL connection string.  parseTime maps the
// DATETIME columns (airdate, date_queued) onto time.Time, and loc pins
// them to UTC so timestamps written by NOW() read back consistently.
func dsn(cfg config.Config) string {
	cred := cfg.DBUser
	if cfg.DBPass != "" {
		cred += ":" + cfg.DBPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cred, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// Open connects to the catalog database and verifies the connection
// before the server starts taking requests.  The pool is sized from
// DB_MAX_CONNS; every page is a handful of short point queries, so the
// pool stays small.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	maxConns := cfg.DBMaxConns
	if maxConns < 1 {
		maxConns = 1
	}
	idle := maxConns / 2
	if idle < 1 {
		idle = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
