package ai

import "context"

// Client is the inference provider boundary: it sends the image to a
// multimodal model and returns the raw text reply.
type Client interface {
	Classify(ctx context.Context, image []byte) (string, error)
}
