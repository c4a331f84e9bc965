package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/Prasun6736/Ai-image-Checker/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO image_analyses
  (id, verdict, confidence, details, image_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6);
`
	createdAt := a.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.Verdict, a.Confidence, a.Details, a.ImageURL, createdAt,
	)
	return err
}
