package status

import "context"

// Repository port for status checks. List returns records in insertion order.
type Repository interface {
	Save(ctx context.Context, s *StatusCheck) error
	List(ctx context.Context, limit int) ([]*StatusCheck, error)
}
