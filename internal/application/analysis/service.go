package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Prasun6736/Ai-image-Checker/internal/application"
	domainai "github.com/Prasun6736/Ai-image-Checker/internal/domain/ai"
	domain "github.com/Prasun6736/Ai-image-Checker/internal/domain/analysis"
	"github.com/Prasun6736/Ai-image-Checker/internal/imageutil"
)

// Service implements the analyze-image use case.
// Safe for concurrent use; every request is an independent unit of work.
type Service struct {
	AI     domainai.Client
	Repo   domain.Repository
	Images domain.ImageStore // optional, nil disables archiving
	Clock  application.Clock
}

// Command for analyzing one image
type AnalyzeCommand struct {
	ImageBase64 string
}

// Analyze runs the pipeline: decode → classify → extract → persist.
// No retries anywhere: the first failing stage aborts the request and the
// provider is never called with bytes that do not decode. Persistence
// failures abort too, collapsed into the same error class as upstream ones.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.Analysis, error) {
	img, err := imageutil.Decode(cmd.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	raw, err := s.AI.Classify(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("classify image: %w", err)
	}

	ex := domain.Extract(raw)

	a := &domain.Analysis{
		ID:         domain.AnalysisID(uuid.New().String()),
		Verdict:    ex.Verdict,
		Confidence: ex.Confidence,
		Details:    ex.Details,
		Timestamp:  s.Clock.Now().UTC(),
	}

	if s.Images != nil {
		url, err := s.Images.PutImage(ctx, string(a.ID), img, imageutil.SniffMIME(img))
		if err != nil {
			return nil, fmt.Errorf("archive image: %w", err)
		}
		a.ImageURL = url
	}

	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}

	return a, nil
}
