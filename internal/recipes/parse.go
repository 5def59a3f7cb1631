package recipes

import (
	"fmt"
	"strings"
)

// ParseSuggestions parses model output in format: title | approximate time.
// One recipe per line; preamble lines and blanks are skipped.
func ParseSuggestions(raw string) []Recipe {
	lines := strings.Split(raw, "\n")
	out := make([]Recipe, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Skip common model prefaces
		if strings.HasPrefix(line, "Here") || strings.HasPrefix(line, "Sure") || strings.HasPrefix(line, "Based on") {
			continue
		}

		parts := strings.Split(line, "|")
		title := strings.TrimSpace(parts[0])
		if title == "" {
			continue
		}

		r := Recipe{
			ID:     fmt.Sprintf("claude-%d", len(out)+1),
			Title:  title,
			Time:   "Time N/A",
			Source: "Claude",
		}
		if len(parts) >= 2 {
			if t := strings.TrimSpace(parts[1]); t != "" {
				r.Time = t
			}
		}

		out = append(out, r)
		if len(out) == MaxResults {
			break
		}
	}

	return out
}
