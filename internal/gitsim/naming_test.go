package gitsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestBranchName(t *testing.T) {
	tests := []struct {
		key, title, kind string
		want             string
	}{
		{"PROJ-123", "Add user login page", "story", "feature/proj-123-add-user-login-page"},
		{"PROJ-9", "Fix: null pointer in the auth flow!", "bug", "bugfix/proj-9-fix-null-pointer-in"},
		{"PROJ-9", "Crash", "Bug", "feature/proj-9-crash"},
		{"ABC-1", "  Über   café  ", "task", "feature/abc-1-ber-caf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestBranchName(tt.key, tt.title, tt.kind), tt.title)
	}
}

func TestSuggestCommitMessage(t *testing.T) {
	assert.Equal(t, "fix(PROJ-9): handle nil session", SuggestCommitMessage("PROJ-9", "handle nil session", "bug"))
	assert.Equal(t, "feat(PROJ-1): add login", SuggestCommitMessage("PROJ-1", "add login", "story"))
}
