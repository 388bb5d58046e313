// Package postgres persists OAuth credentials and known EventSub
// subscriptions — the one concern spec §1 does NOT exclude, unlike
// webhook-dedup persistence (left to webhook.DedupCache). Grounded on
// the teacher's internal/database/postgres.go: same DSN assembly,
// same database/sql + lib/pq pairing, same upsert-on-conflict shape,
// retargeted from the teacher's ad hoc string-keyed structs onto this
// library's ids types.
package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/twitch-rs/twitch-api-sub001/config"
	"github.com/twitch-rs/twitch-api-sub001/ids"

	_ "github.com/lib/pq"
)

// Store wraps a Postgres connection pool.
type Store struct {
	db *sql.DB
}

// Credentials is one user's stored OAuth tokens.
type Credentials struct {
	UserID       ids.UserID
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// SubscriptionRecord is one known EventSub subscription's last observed
// status, keyed by the subscription ID Twitch assigned.
type SubscriptionRecord struct {
	ID        ids.SubscriptionID
	UserID    ids.UserID
	EventType string
	Status    string
	CreatedAt time.Time
}

// Connect builds, pings, and returns a Store.
func Connect(cfg config.DatabaseConfig) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

// GetCredentials returns sql.ErrNoRows if userID has no stored
// credentials.
func (s *Store) GetCredentials(userID ids.UserID) (*Credentials, error) {
	creds := &Credentials{UserID: userID}
	row := s.db.QueryRow(
		`SELECT access_token, refresh_token, expires_at FROM twitch_credentials WHERE user_id = $1`,
		string(userID),
	)
	if err := row.Scan(&creds.AccessToken, &creds.RefreshToken, &creds.ExpiresAt); err != nil {
		return nil, err
	}
	return creds, nil
}

// UpsertCredentials inserts or replaces a user's stored tokens.
func (s *Store) UpsertCredentials(creds *Credentials) error {
	_, err := s.db.Exec(`
		INSERT INTO twitch_credentials (user_id, access_token, refresh_token, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at
	`, string(creds.UserID), creds.AccessToken, creds.RefreshToken, creds.ExpiresAt)
	return err
}

// GetSubscription returns sql.ErrNoRows if no subscription of eventType
// is recorded for userID.
func (s *Store) GetSubscription(userID ids.UserID, eventType string) (*SubscriptionRecord, error) {
	sub := &SubscriptionRecord{UserID: userID, EventType: eventType}
	row := s.db.QueryRow(
		`SELECT id, status, created_at FROM twitch_subscriptions WHERE user_id = $1 AND event_type = $2`,
		string(userID), eventType,
	)
	if err := row.Scan(&sub.ID, &sub.Status, &sub.CreatedAt); err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateSubscription records a newly created subscription.
func (s *Store) CreateSubscription(sub *SubscriptionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO twitch_subscriptions (id, user_id, event_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, string(sub.ID), string(sub.UserID), sub.EventType, sub.Status, sub.CreatedAt)
	return err
}

// DeleteSubscription removes a subscription, typically on revocation
// (spec §4.6 step 4 "mark subscription revoked in the application's
// projection").
func (s *Store) DeleteSubscription(subscriptionID ids.SubscriptionID) error {
	_, err := s.db.Exec(`DELETE FROM twitch_subscriptions WHERE id = $1`, string(subscriptionID))
	return err
}
