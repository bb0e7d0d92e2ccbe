package gitsim

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	minCommitMessageLength = 3
	maxCommitSubjectLength = 72

	// forbiddenBranchChars mirrors git check-ref-format.
	forbiddenBranchChars = `~^:?*[]\@{}`
)

var (
	reservedBranchNames = []string{"main", "master", "develop", "staging"}
)

// Validation is the outcome of a naming or message check. Valid results may
// still carry a Suggestion; it never blocks the command.
type Validation struct {
	Valid      bool   `json:"valid"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidateBranchName checks name against the structural ref rules and the
// prefix conventions.
func ValidateBranchName(name string) Validation {
	switch {
	case name == "":
		return Validation{Valid: false, Message: "Branch name cannot be empty"}
	case strings.HasPrefix(name, "-"):
		return Validation{Valid: false, Message: "Branch name cannot start with a hyphen"}
	case strings.Contains(name, ".."):
		return Validation{Valid: false, Message: `Branch name cannot contain ".."`}
	case strings.ContainsAny(name, forbiddenBranchChars):
		return Validation{Valid: false, Message: "Branch name contains invalid characters"}
	case strings.HasSuffix(name, ".lock"):
		return Validation{Valid: false, Message: "Branch name cannot end with .lock"}
	}

	lower := strings.ToLower(name)
	hasPrefix := lo.ContainsBy(branchConventions, func(c Convention) bool { return strings.HasPrefix(lower, c.Prefix) })
	if !hasPrefix && !lo.Contains(reservedBranchNames, lower) {
		return Validation{
			Valid:      true,
			Message:    "Valid but could follow conventions better",
			Suggestion: fmt.Sprintf(`Consider using a prefix like "feature/%s" or "bugfix/%s"`, name, name),
		}
	}

	return Validation{Valid: true, Message: "Valid branch name"}
}

// ValidateCommitMessage checks a commit subject for length and the
// conventional commit prefixes.
func ValidateCommitMessage(message string) Validation {
	if strings.TrimSpace(message) == "" {
		return Validation{Valid: false, Message: "Commit message cannot be empty"}
	}

	length := utf8.RuneCountInString(message)
	if length < minCommitMessageLength {
		return Validation{Valid: false, Message: "Commit message is too short"}
	}

	lower := strings.ToLower(message)
	conventional := lo.ContainsBy(commitConventions, func(c Convention) bool { return strings.HasPrefix(lower, c.Prefix) })
	if !conventional {
		return Validation{
			Valid:      true,
			Message:    "Valid but could follow conventional commits",
			Suggestion: `Try: "feat: ` + message + `" for a new feature`,
		}
	}

	if length > maxCommitSubjectLength {
		return Validation{
			Valid:      true,
			Message:    "Consider keeping the first line under 72 characters",
			Suggestion: "Use a blank line and add details in the body",
		}
	}

	return Validation{Valid: true, Message: "Good commit message!"}
}
