package service

import (
	"regexp"
	"strings"
)

var (
	// A single leading "Here's ...:" / "Here is ...:" clause, colon included
	leadInPattern = regexp.MustCompile(`(?i)^(here's|here is)[^\n]*?:\s*`)

	// Any line beginning with "Title:" or "Poem:", removed globally
	labelLinePattern = regexp.MustCompile(`(?im)^(title|poem):[^\n]*\n?`)

	emphasisReplacer = strings.NewReplacer("**", "", "*", "")
)

// normalizePoem post-processes raw generated text into the caller-facing
// poem format. Pure and order-preserving; always returns a string — an empty
// result is a valid, if degenerate, poem. Lines are clamped to the first 5
// only when more than 6 non-blank lines remain.
func normalizePoem(text string) string {
	text = strings.TrimSpace(text)
	text = emphasisReplacer.Replace(text)
	text = leadInPattern.ReplaceAllString(text, "")
	text = labelLinePattern.ReplaceAllString(text, "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 6 {
		lines = lines[:5]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
