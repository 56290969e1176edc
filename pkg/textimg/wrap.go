package textimg

import (
	"strings"
)

// WordWrap wraps text at limit runes per line using greedy word wrap
// and joins the lines with brk. When cut is true, words longer than the
// limit are hard-split at the limit. When maxLines is positive the
// output is truncated to the first maxLines lines and the rest is
// silently dropped; zero or negative disables truncation entirely.
func WordWrap(text string, limit int, brk string, cut bool, maxLines int) string {
	if limit <= 0 {
		return text
	}

	var lines []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)

		// Hard-split overlong words at the limit.
		if cut && len(runes) > limit {
			flush()
			for len(runes) > limit {
				lines = append(lines, string(runes[:limit]))
				runes = runes[limit:]
			}
			if len(runes) > 0 {
				current = append(current, runes...)
			}
			continue
		}

		if len(current) == 0 {
			current = append(current, runes...)
			continue
		}
		if len(current)+1+len(runes) <= limit {
			current = append(current, ' ')
			current = append(current, runes...)
			continue
		}
		flush()
		current = append(current, runes...)
	}
	flush()

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return strings.Join(lines, brk)
}
