// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidBase64 is returned when decoding input that is not base64.
	ErrInvalidBase64 = errors.New("invalid base64 string")

	// ErrInvalidJSON wraps the decoder's message for malformed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// EncodeBase64 encodes s with the standard padded alphabet.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 decodes standard base64. Surrounding whitespace is ignored,
// and unpadded input is accepted.
func DecodeBase64(s string) (string, error) {
	s = strings.TrimSpace(s)
	enc := base64.StdEncoding
	if !strings.HasSuffix(s, "=") && len(s)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	out, err := enc.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return string(out), nil
}

// FormatJSON re-indents a JSON document with indent spaces per level.
// Object key order is preserved.
func FormatJSON(s string, indent int) (string, error) {
	if err := validJSON(s); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(s)), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// MinifyJSON removes insignificant whitespace from a JSON document.
func MinifyJSON(s string) (string, error) {
	if err := validJSON(s); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

func validJSON(s string) error {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}
