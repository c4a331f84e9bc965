package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Providers are asked to answer in the three-line
// VERDICT / CONFIDENCE / REASONING format, but replies are free text and
// models drift, so each field is matched independently and falls back on
// its own when absent.
var (
	verdictRe = regexp.MustCompile(`(?i)VERDICT:\s*(FAKE|REAL)`)
	// CONFIDENCE and REASONING are matched case-sensitively on purpose:
	// only the exact tokens from the prompt count.
	confidenceRe = regexp.MustCompile(`CONFIDENCE:\s*(\d+)`)
	reasoningRe  = regexp.MustCompile(`(?s)REASONING:\s*(.+)`)
)

// Extraction is the structured form of a raw provider reply.
type Extraction struct {
	Verdict    Verdict
	Confidence float64
	Details    string
}

// Extract parses a raw provider reply into a verdict, a confidence score and
// the reasoning text. It is total: whatever the input, every field gets a
// value. First match wins for each token; duplicates are ignored.
//
// Fallbacks: VerdictUncertain, 50.0, and the full raw reply respectively.
// Confidence is passed through unclamped, an out-of-range value from the
// provider shows up as-is in the result.
func Extract(raw string) Extraction {
	out := Extraction{
		Verdict:    VerdictUncertain,
		Confidence: FallbackConfidence,
		Details:    raw,
	}

	if m := verdictRe.FindStringSubmatch(raw); m != nil {
		out.Verdict = Verdict(strings.ToUpper(m[1]))
	}

	if m := confidenceRe.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out.Confidence = v
		}
	}

	if m := reasoningRe.FindStringSubmatch(raw); m != nil {
		out.Details = strings.TrimSpace(m[1])
	}

	return out
}
