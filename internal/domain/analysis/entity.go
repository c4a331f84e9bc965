package analysis

import (
	"time"
)

// AnalysisID identifier type
type AnalysisID string

// Verdict enum
type Verdict string

const (
	VerdictFake      Verdict = "FAKE"
	VerdictReal      Verdict = "REAL"
	VerdictUncertain Verdict = "UNCERTAIN"
)

// Fallback values used when the provider reply has no parseable field.
const (
	FallbackConfidence = 50.0
)

// Aggregate Root: Analysis
// One row per analyzed image; insert-only, never updated.
type Analysis struct {
	ID         AnalysisID `json:"id"`
	Verdict    Verdict    `json:"verdict"`
	Confidence float64    `json:"confidence"`
	Details    string     `json:"details"`
	ImageURL   string     `json:"image_url,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}
