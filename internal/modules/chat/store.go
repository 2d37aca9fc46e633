// README: Message history persistence on Postgres.
package chat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryStore is the message log consulted for prompt context. History is
// best-effort: a failed read degrades to an empty history, a failed write is
// logged by the caller and otherwise ignored.
type HistoryStore interface {
	Append(ctx context.Context, msg Message) error
	Recent(ctx context.Context, sessionID string, limit int) ([]Message, error)
}

// Store handles messages persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append inserts one message.
func (s *Store) Append(ctx context.Context, msg Message) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO messages (session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
	`, msg.SessionID, string(msg.Role), msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// Recent returns the latest limit messages for a session in chronological
// order (oldest first), ready for prompt injection.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT session_id, role, content, created_at FROM (
			SELECT session_id, role, content, created_at
			FROM messages
			WHERE session_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) latest
		ORDER BY created_at ASC
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var role string
		if err := rows.Scan(&m.SessionID, &role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Role = Role(role)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
