package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractWellFormedReply(t *testing.T) {
	raw := "VERDICT: FAKE\nCONFIDENCE: 92\nREASONING: Artifacts typical of diffusion models."

	got := Extract(raw)

	if got.Verdict != VerdictFake {
		t.Errorf("verdict = %q, want %q", got.Verdict, VerdictFake)
	}
	if got.Confidence != 92 {
		t.Errorf("confidence = %v, want 92", got.Confidence)
	}
	if got.Details != "Artifacts typical of diffusion models." {
		t.Errorf("details = %q", got.Details)
	}
}

func TestExtractRoundTrip(t *testing.T) {
	tests := []struct {
		verdict    Verdict
		confidence float64
		reasoning  string
	}{
		{VerdictFake, 92, "Artifacts typical of diffusion models."},
		{VerdictReal, 7, "Sensor noise and EXIF are consistent."},
		{VerdictFake, 100, "Multi-line reasoning.\nSecond line with more detail."},
		{VerdictReal, 0, "Zero confidence still round-trips."},
	}
	for _, tt := range tests {
		raw := fmt.Sprintf("VERDICT: %s\nCONFIDENCE: %d\nREASONING: %s", tt.verdict, int(tt.confidence), tt.reasoning)
		got := Extract(raw)
		if got.Verdict != tt.verdict || got.Confidence != tt.confidence || got.Details != tt.reasoning {
			t.Errorf("Extract(%q) = %+v, want {%s %v %q}", raw, got, tt.verdict, tt.confidence, tt.reasoning)
		}
	}
}

func TestExtractFallbacks(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantVerdict    Verdict
		wantConfidence float64
		wantDetails    string
	}{
		{
			name:           "plain prose, no tokens at all",
			raw:            "I think this looks like a photograph but I cannot be sure.",
			wantVerdict:    VerdictUncertain,
			wantConfidence: 50,
			wantDetails:    "I think this looks like a photograph but I cannot be sure.",
		},
		{
			name:           "empty reply",
			raw:            "",
			wantVerdict:    VerdictUncertain,
			wantConfidence: 50,
			wantDetails:    "",
		},
		{
			name:           "verdict only",
			raw:            "VERDICT: REAL",
			wantVerdict:    VerdictReal,
			wantConfidence: 50,
			wantDetails:    "VERDICT: REAL",
		},
		{
			name:           "missing confidence keeps other fields",
			raw:            "VERDICT: FAKE\nREASONING: Warped hands.",
			wantVerdict:    VerdictFake,
			wantConfidence: 50,
			wantDetails:    "Warped hands.",
		},
		{
			name:           "missing verdict keeps other fields",
			raw:            "CONFIDENCE: 80\nREASONING: Looks synthetic.",
			wantVerdict:    VerdictUncertain,
			wantConfidence: 80,
			wantDetails:    "Looks synthetic.",
		},
		{
			name:           "unknown verdict token falls back",
			raw:            "VERDICT: MAYBE\nCONFIDENCE: 60\nREASONING: Hard to tell.",
			wantVerdict:    VerdictUncertain,
			wantConfidence: 60,
			wantDetails:    "Hard to tell.",
		},
		{
			name:           "lowercase confidence token does not match",
			raw:            "VERDICT: REAL\nconfidence: 99\nREASONING: ok",
			wantVerdict:    VerdictReal,
			wantConfidence: 50,
			wantDetails:    "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.raw)
			if got.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", got.Verdict, tt.wantVerdict)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Details != tt.wantDetails {
				t.Errorf("details = %q, want %q", got.Details, tt.wantDetails)
			}
		})
	}
}

func TestExtractCaseInsensitiveVerdict(t *testing.T) {
	got := Extract("verdict: fake\nCONFIDENCE: 75\nREASONING: x")
	if got.Verdict != VerdictFake {
		t.Errorf("verdict = %q, want %q (lowercase token should match and normalize)", got.Verdict, VerdictFake)
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	raw := "VERDICT: FAKE\nCONFIDENCE: 91\nREASONING: first\nVERDICT: REAL\nCONFIDENCE: 12"
	got := Extract(raw)
	if got.Verdict != VerdictFake {
		t.Errorf("verdict = %q, want first occurrence FAKE", got.Verdict)
	}
	if got.Confidence != 91 {
		t.Errorf("confidence = %v, want first occurrence 91", got.Confidence)
	}
	// REASONING captures to end of text, duplicates included.
	if !strings.HasPrefix(got.Details, "first") {
		t.Errorf("details = %q, want prefix \"first\"", got.Details)
	}
}

func TestExtractMultilineReasoning(t *testing.T) {
	raw := "VERDICT: REAL\nCONFIDENCE: 88\nREASONING: Line one.\nLine two.\nLine three.  "
	got := Extract(raw)
	want := "Line one.\nLine two.\nLine three."
	if got.Details != want {
		t.Errorf("details = %q, want %q", got.Details, want)
	}
}

func TestExtractConfidenceUnclamped(t *testing.T) {
	got := Extract("VERDICT: FAKE\nCONFIDENCE: 150\nREASONING: over-enthusiastic model")
	if got.Confidence != 150 {
		t.Errorf("confidence = %v, want 150 passed through without clamping", got.Confidence)
	}
}

func TestExtractIdempotent(t *testing.T) {
	raw := "VERDICT: FAKE\nCONFIDENCE: 33\nREASONING: same in, same out"
	a := Extract(raw)
	b := Extract(raw)
	if a != b {
		t.Errorf("Extract not deterministic: %+v vs %+v", a, b)
	}
}
