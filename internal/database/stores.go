package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/google/uuid"
)

// Execer is the part of *sql.DB the stores use.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ContactStore persists contact-form submissions.
type ContactStore struct {
	db  Execer
	now func() time.Time
}

// NewContactStore creates a store over db.
func NewContactStore(db Execer) *ContactStore {
	return &ContactStore{db: db, now: time.Now}
}

// SaveMessage assigns an ID and timestamp to msg and stores it.
func (s *ContactStore) SaveMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = s.now().UTC()
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))

	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, locale, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.Locale, msg.CreatedAt,
	); err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}

// NewsletterStore persists newsletter subscriptions.
type NewsletterStore struct {
	db  Execer
	now func() time.Time
}

// NewNewsletterStore creates a store over db.
func NewNewsletterStore(db Execer) *NewsletterStore {
	return &NewsletterStore{db: db, now: time.Now}
}

// Subscribe records an email address. Subscribing twice is not an error;
// the second call only refreshes the preferred locale.
// It reports whether the address was new.
func (s *NewsletterStore) Subscribe(ctx context.Context, email, locale string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Upsert: MySQL reports 1 affected row for an insert, 2 for an update, 0 for no change.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscriptions (id, email, locale, created_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE locale = VALUES(locale)`,
		uuid.NewString(), email, locale, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("subscribe newsletter: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("subscribe newsletter: %w", err)
	}
	return n == 1, nil
}
