package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/Prasun6736/Ai-image-Checker/internal/domain/status"
)

type StatusRepository struct {
	db *sql.DB
}

func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Save inserts a status check row
func (r *StatusRepository) Save(ctx context.Context, s *domain.StatusCheck) error {
	const q = `
INSERT INTO status_checks (id, client_name, created_at)
VALUES ($1,$2,$3);
`
	createdAt := s.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q, s.ID, s.ClientName, createdAt)
	return err
}

// List returns status checks in insertion order
func (r *StatusRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	const q = `
SELECT id, client_name, created_at
FROM status_checks
ORDER BY created_at ASC, id ASC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.StatusCheck
	for rows.Next() {
		var s domain.StatusCheck
		var created time.Time
		if err := rows.Scan(&s.ID, &s.ClientName, &created); err != nil {
			return nil, err
		}
		s.Timestamp = created
		out = append(out, &s)
	}
	return out, rows.Err()
}
