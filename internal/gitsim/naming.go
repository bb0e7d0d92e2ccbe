package gitsim

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	bugTicketType = "bug"
	maxSlugWords  = 4
)

// SuggestBranchName builds "<bugfix|feature>/<key>-<slug>" from ticket context.
func SuggestBranchName(ticketKey, ticketTitle, ticketType string) string {
	prefix := "feature"
	if ticketType == bugTicketType {
		prefix = "bugfix"
	}

	return fmt.Sprintf("%s/%s-%s", prefix, strings.ToLower(ticketKey), slugify(ticketTitle))
}

// SuggestCommitMessage builds "<fix|feat>(<key>): <description>".
func SuggestCommitMessage(ticketKey, changeDescription, ticketType string) string {
	prefix := "feat"
	if ticketType == bugTicketType {
		prefix = "fix"
	}

	return fmt.Sprintf("%s(%s): %s", prefix, ticketKey, changeDescription)
}

// slugify keeps ASCII letters, digits and whitespace, then joins the first
// words with hyphens.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) > maxSlugWords {
		words = words[:maxSlugWords]
	}

	return strings.Join(words, "-")
}
