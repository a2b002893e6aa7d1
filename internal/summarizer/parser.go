package summarizer

import "strings"

// maxHighlights bounds the highlight list returned to callers.
const maxHighlights = 5

// parseHighlights turns the raw highlight-extraction text into a list of
// discrete highlights. Lines starting with a bullet marker are accepted with
// the marker stripped; non-empty lines without a marker are accepted as-is
// while fewer than maxHighlights have been collected, which tolerates models
// that forget the bullets. It never fails: malformed input yields an empty
// list, which is degraded but usable.
func parseHighlights(raw string) []string {
	var highlights []string

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			if h := strings.TrimSpace(strings.TrimLeft(line, "-•* ")); h != "" {
				highlights = append(highlights, h)
			}
		} else if len(highlights) < maxHighlights {
			highlights = append(highlights, line)
		}
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}
