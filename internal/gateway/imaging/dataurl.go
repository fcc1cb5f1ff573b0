// Package imaging assembles inline image references for multimodal
// model providers.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

const fallbackMIME = "image/jpeg"

// DataURL encodes raw image bytes as a base64 data URL. The MIME type is
// taken from the declared content type when it names a concrete image
// subtype; otherwise it is sniffed from the payload's magic bytes, with
// jpeg as the final fallback.
func DataURL(data []byte, contentType string) string {
	mime := normalizeImageMIME(contentType)
	if mime == "" {
		mime = sniffImageMIME(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// normalizeImageMIME returns a usable image MIME type from a declared
// content type, or "" when the declaration is missing a subtype.
func normalizeImageMIME(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if !strings.HasPrefix(ct, "image/") {
		return ""
	}
	subtype := strings.TrimPrefix(ct, "image/")
	if subtype == "" || subtype == "*" {
		return ""
	}
	return "image/" + subtype
}

// sniffImageMIME determines the MIME type from common format signatures.
func sniffImageMIME(data []byte) string {
	if len(data) < 12 {
		return fallbackMIME
	}
	switch {
	case bytes.HasPrefix(data, []byte("\xFF\xD8\xFF")):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif"
	case bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return fallbackMIME
	}
}
