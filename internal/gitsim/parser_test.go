package gitsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   Command
	}{
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
			want:   Command{Kind: "", Args: []string{}},
		},
		{
			name:   "not addressed to git",
			input:  "ls -la",
			wantOK: false,
			want:   Command{Kind: "", Args: []string{}},
		},
		{
			name:   "bare prefix",
			input:  "git",
			wantOK: true,
			want:   Command{Kind: "", Args: []string{}},
		},
		{
			name:   "kind without args",
			input:  "  git status  ",
			wantOK: true,
			want:   Command{Kind: CommandStatus, Args: []string{}},
		},
		{
			name:   "quoted message stays whole",
			input:  `git commit -m "feat: add a"`,
			wantOK: true,
			want:   Command{Kind: CommandCommit, Args: []string{"-m", "feat: add a"}},
		},
		{
			name:   "single quotes",
			input:  `git commit -m 'fix: typo'`,
			wantOK: true,
			want:   Command{Kind: CommandCommit, Args: []string{"-m", "fix: typo"}},
		},
		{
			name:   "unbalanced quote falls back to whitespace",
			input:  `git commit -m "feat: oops`,
			wantOK: true,
			want:   Command{Kind: CommandCommit, Args: []string{"-m", `"feat:`, "oops"}},
		},
		{
			name:   "unknown kind passes through",
			input:  "git rebase -i HEAD~2",
			wantOK: true,
			want:   Command{Kind: "rebase", Args: []string{"-i", "HEAD~2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCommand(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandKindValid(t *testing.T) {
	for _, kind := range Commands() {
		assert.True(t, kind.Valid(), kind)
	}
	assert.False(t, CommandKind("rebase").Valid())
	assert.False(t, CommandKind("").Valid())
}

func TestCommandsReturnsCopy(t *testing.T) {
	kinds := Commands()
	kinds[0] = "mutated"

	assert.Equal(t, CommandClone, Commands()[0])
}
