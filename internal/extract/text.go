package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// extractTXT reads a plain-text file. Files that are not valid UTF-8 are
// reinterpreted as Latin-1 so that legacy exports still yield usable text.
func extractTXT(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	text := string(raw)
	if !utf8.ValidString(text) {
		var sb strings.Builder
		sb.Grow(len(raw))
		for _, b := range raw {
			sb.WriteRune(rune(b))
		}
		text = sb.String()
	}
	return text, nil
}
