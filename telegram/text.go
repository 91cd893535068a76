package telegram

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"golang.org/x/text/encoding/charmap"
)

var hexSanitizer = regexp.MustCompile(`\s+`)

// DecodeHexText decodes a hex-encoded text value into a UTF-8 string. Most
// meters encode free text fields (text_message, the equipment identifiers)
// as a sequence of hex octets in ISO 8859-1, e.g. "4B384547" for "K8EG".
func DecodeHexText(s string) (string, error) {
	sanitized := hexSanitizer.ReplaceAllString(s, "")
	raw, err := hex.DecodeString(sanitized)
	if err != nil {
		return "", fmt.Errorf("cannot decode hex text: %w", err)
	}

	decoder := charmap.ISO8859_1.NewDecoder()
	utf8, err := decoder.Bytes(raw)
	if err != nil { // something went wrong, but be lenient and keep the raw bytes
		return string(raw), nil
	}
	return string(utf8), nil
}
