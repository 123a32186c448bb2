package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/db"
)

// ISessionRepository defines the interface the session middleware persists
// through. The middleware owns the session row lifecycle; nothing else in the
// application touches the sessions table.
type ISessionRepository interface {
	// Load returns the non-expired session for a key, or nil if the key is
	// unknown or the session has expired.
	Load(ctx context.Context, key string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, key string) error
}

// SessionRepository handles session database operations
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load fetches a session row whose expiry is still in the future. An unknown
// or expired key is not an error; it just yields no session.
func (r *SessionRepository) Load(ctx context.Context, key string) (*models.Session, error) {
	session := &models.Session{}
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT session_key, data, expires
		FROM sessions
		WHERE session_key = $1 AND expires > NOW()`,
		key).Scan(&session.Key, &data, &session.Expires)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if err := json.Unmarshal(data, &session.Data); err != nil {
		return nil, fmt.Errorf("error decoding session data: %w", err)
	}

	return session, nil
}

// Save upserts a session row inside its own transaction, so the write is
// committed exactly once and the storage handle is released on every path.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session.Data)
	if err != nil {
		return fmt.Errorf("error encoding session data: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO sessions (session_key, data, expires)
			VALUES ($1, $2, $3)
			ON CONFLICT (session_key)
			DO UPDATE SET data = EXCLUDED.data, expires = EXCLUDED.expires`,
			session.Key, data, session.Expires)
		if err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}
		return nil
	})
}

// Delete removes a session row. Deleting an absent key is not an error.
func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_key = $1`, key)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
