package gitsim

import (
	"strings"

	"github.com/google/shlex"
)

// ToolPrefix is the first token every simulated command line starts with.
const ToolPrefix = "git"

// CommandKind identifies a simulated command.
type CommandKind string

const (
	CommandClone    CommandKind = "clone"
	CommandInit     CommandKind = "init"
	CommandStatus   CommandKind = "status"
	CommandAdd      CommandKind = "add"
	CommandCommit   CommandKind = "commit"
	CommandPush     CommandKind = "push"
	CommandPull     CommandKind = "pull"
	CommandBranch   CommandKind = "branch"
	CommandCheckout CommandKind = "checkout"
	CommandMerge    CommandKind = "merge"
	CommandLog      CommandKind = "log"
	CommandDiff     CommandKind = "diff"
	CommandFetch    CommandKind = "fetch"
	CommandStash    CommandKind = "stash"
)

var commandKinds = []CommandKind{
	CommandClone,
	CommandInit,
	CommandStatus,
	CommandAdd,
	CommandCommit,
	CommandPush,
	CommandPull,
	CommandBranch,
	CommandCheckout,
	CommandMerge,
	CommandLog,
	CommandDiff,
	CommandFetch,
	CommandStash,
}

// Commands returns every known command kind in tip table order.
func Commands() []CommandKind {
	out := make([]CommandKind, len(commandKinds))
	copy(out, commandKinds)
	return out
}

// Valid reports whether k is one of the known command kinds.
func (k CommandKind) Valid() bool {
	for _, known := range commandKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k CommandKind) String() string {
	return string(k)
}

// Command is a tokenized command line.
type Command struct {
	Kind CommandKind `json:"command"`
	Args []string    `json:"args"`
}

// ParseCommand tokenizes a raw input line. It returns false when the line is
// not addressed to the tool at all (chat text, empty input). Argument shapes
// and unknown kinds are left for the dispatcher.
func ParseCommand(input string) (Command, bool) {
	parts := tokenize(strings.TrimSpace(input))
	if len(parts) == 0 || parts[0] != ToolPrefix {
		return Command{Kind: "", Args: []string{}}, false
	}

	cmd := Command{Kind: "", Args: []string{}}
	if len(parts) > 1 {
		cmd.Kind = CommandKind(parts[1])
	}
	if len(parts) > 2 {
		cmd.Args = parts[2:]
	}

	return cmd, true
}

// tokenize splits shell style so quoted commit messages stay whole. Unbalanced
// quotes fall back to plain whitespace splitting.
func tokenize(line string) []string {
	if line == "" {
		return nil
	}

	parts, err := shlex.Split(line)
	if err != nil {
		return strings.Fields(line)
	}

	return parts
}
