package imageutil

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

// Minimal JPEG header, enough for content sniffing.
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/jpeg;base64,AAAA", "AAAA"},
		{"data:image/png;base64,iVBORw==", "iVBORw=="},
		{"AAAA", "AAAA"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripDataURL(tt.in); got != tt.want {
			t.Errorf("StripDataURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeDataURL(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString(jpegBytes)

	for _, in := range []string{enc, "data:image/jpeg;base64," + enc, "  " + enc + "\n"} {
		got, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		if !bytes.Equal(got, jpegBytes) {
			t.Errorf("Decode(%q) returned wrong bytes", in)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode("invalid_base64_data!!"); err == nil {
		t.Fatal("Decode accepted invalid base64")
	}
}

func TestSniffMIME(t *testing.T) {
	if got := SniffMIME(jpegBytes); got != "image/jpeg" {
		t.Errorf("SniffMIME jpeg = %q", got)
	}
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if got := SniffMIME(png); got != "image/png" {
		t.Errorf("SniffMIME png = %q", got)
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL("image/jpeg", jpegBytes)
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("DataURL prefix wrong: %q", url)
	}
	if StripDataURL(url) != base64.StdEncoding.EncodeToString(jpegBytes) {
		t.Error("DataURL payload does not round-trip through StripDataURL")
	}
}
