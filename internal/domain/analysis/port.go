package analysis

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
}

// ImageStore port for archiving the analyzed image bytes.
// Optional: the orchestrator skips archiving when no store is wired.
type ImageStore interface {
	PutImage(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
