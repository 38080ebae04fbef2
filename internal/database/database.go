package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// ErrNoDSN is returned when no DSN is configured.
var ErrNoDSN = errors.New("DB_DSN_PRIMARY is not set")

// OpenDB creates and configures a MySQL connection pool for dsn.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}

	// 1. Open a new connection pool.
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// 2. Configure the connection pool settings.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 3. Ping the database to verify the connection.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(40) NULL,
		subject VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		locale VARCHAR(8) NOT NULL,
		created_at DATETIME NOT NULL,
		INDEX idx_contact_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
		id CHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		locale VARCHAR(8) NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_newsletter_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the storefront-owned tables if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
