package imageutil

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const dataURLMarker = "base64,"

// StripDataURL removes a leading `data:<mime>;base64,` prefix if present,
// keeping only the encoded payload. Raw base64 input passes through untouched.
func StripDataURL(s string) string {
	if idx := strings.Index(s, dataURLMarker); idx >= 0 {
		return s[idx+len(dataURLMarker):]
	}
	return s
}

// Decode strips an optional data-URL prefix and decodes the payload as
// standard base64.
func Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimSpace(StripDataURL(s)))
}

// SniffMIME detects the image content type from the leading bytes.
func SniffMIME(b []byte) string {
	return http.DetectContentType(b)
}

// DataURL builds a `data:` URL for inline multimodal message parts.
func DataURL(mime string, b []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}
