package gitsim

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func simulateAdd(state RepositoryState, args []string) Result {
	if len(args) == 0 {
		return fail(ErrMissingArgument, "Nothing specified, nothing added.", example(CommandAdd))
	}

	if lo.Contains(args, ".") || lo.Contains(args, "-A") || lo.Contains(args, "--all") {
		staged := cloneFiles(state.StagedFiles)
		staged = append(staged, withStatus(state.ModifiedFiles, FileStaged)...)
		staged = append(staged, withStatus(state.UntrackedFiles, FileStaged)...)

		count := len(state.ModifiedFiles) + len(state.UntrackedFiles)
		output := "Nothing to add"
		if count > 0 {
			output = fmt.Sprintf("Added %d file(s) to staging area", count)
		}

		return succeed(output, &StateChange{
			StagedFiles:    &staged,
			ModifiedFiles:  &[]TrackedFile{},
			UntrackedFiles: &[]TrackedFile{},
		}, "")
	}

	names := lo.Uniq(positionals(args))
	if len(names) == 0 {
		return fail(ErrMissingArgument, "Nothing specified, nothing added.", example(CommandAdd))
	}

	staged := cloneFiles(state.StagedFiles)
	modified := cloneFiles(state.ModifiedFiles)
	untracked := cloneFiles(state.UntrackedFiles)

	for _, name := range names {
		if lo.ContainsBy(staged, func(f TrackedFile) bool { return f.Path == name }) {
			continue
		}

		var file TrackedFile
		var found bool
		if file, modified, found = take(modified, name); !found {
			if file, untracked, found = take(untracked, name); !found {
				file = TrackedFile{Path: name}
			}
		}

		file.Status = FileStaged
		staged = append(staged, file)
	}

	return succeed("Changes staged for commit", &StateChange{
		StagedFiles:    &staged,
		ModifiedFiles:  &modified,
		UntrackedFiles: &untracked,
	}, "")
}

func (s *Simulator) simulateCommit(state RepositoryState, args []string) Result {
	if len(state.StagedFiles) == 0 {
		return fail(ErrNothingToCommit, "nothing to commit, working tree clean", `Use "git add <file>" to stage changes first`)
	}

	message, ok := commitMessage(args)
	if !ok || strings.TrimSpace(message) == "" {
		return fail(ErrEmptyCommitMessage, "Aborting commit due to empty commit message.", example(CommandCommit))
	}

	validation := ValidateCommitMessage(message)
	if !validation.Valid {
		return fail(ErrInvalidCommitMessage, validation.Message, example(CommandCommit))
	}

	hash := s.nextHash(state)
	commit := Commit{
		Hash:      hash,
		Message:   message,
		Author:    s.author,
		Timestamp: s.timestamp(),
		Files:     paths(state.StagedFiles),
	}

	branches := cloneBranches(state.Branches)
	for i := range branches {
		if branches[i].IsActive {
			branches[i].Commits = append(branches[i].Commits, commit)
		}
	}

	output := fmt.Sprintf("[%s %s] %s\n %d file(s) changed", state.CurrentBranch, hash, message, len(state.StagedFiles))

	return succeed(output, &StateChange{
		Branches:         &branches,
		StagedFiles:      &[]TrackedFile{},
		RemoteSyncStatus: ptr(SyncAhead),
	}, validation.Suggestion)
}

func simulateDiff(state RepositoryState, args []string) Result {
	files := append(cloneFiles(state.ModifiedFiles), state.StagedFiles...)
	if lo.Contains(args, "--staged") || lo.Contains(args, "--cached") {
		files = cloneFiles(state.StagedFiles)
	}

	if len(files) == 0 {
		return succeed("", nil, "")
	}

	hunks := lo.Map(files, func(f TrackedFile, _ int) string {
		return strings.Join([]string{
			fmt.Sprintf("diff --git a/%s b/%s", f.Path, f.Path),
			"index abc1234..def5678 100644",
			"--- a/" + f.Path,
			"+++ b/" + f.Path,
			"@@ -1,5 +1,6 @@",
			" // Example diff output",
			"+// New line added",
		}, "\n")
	})

	return succeed(strings.Join(hunks, "\n"), nil, "")
}

func (s *Simulator) simulateStash(state RepositoryState, args []string) Result {
	sub := "push"
	if pos := positionals(args); len(pos) > 0 {
		sub = pos[0]
	}

	switch sub {
	case "push", "save":
		return stashPush(state)
	case "pop":
		return s.stashPop(state)
	case "drop":
		return s.stashDrop(state)
	case "list":
		return stashList(state)
	default:
		return fail(ErrUnknownSubcommand, fmt.Sprintf("unknown subcommand: %s", sub), example(CommandStash))
	}
}

func stashPush(state RepositoryState) Result {
	if !state.HasPendingChanges() {
		return fail(ErrNothingToStash, "No local changes to save", "")
	}

	entry := append(cloneFiles(state.ModifiedFiles), state.StagedFiles...)
	stash := append(cloneStash(state.Stash), entry)

	return succeed("Saved working directory and index state WIP on "+state.CurrentBranch, &StateChange{
		Stash:         &stash,
		ModifiedFiles: &[]TrackedFile{},
		StagedFiles:   &[]TrackedFile{},
	}, "")
}

func (s *Simulator) stashPop(state RepositoryState) Result {
	if len(state.Stash) == 0 {
		return fail(ErrEmptyStash, "No stash entries found.", "")
	}

	last := len(state.Stash) - 1
	entry := state.Stash[last]

	// The entry is kept when any of its paths has changed again since.
	conflicts := lo.Filter(paths(entry), func(p string, _ int) bool { return state.pendingPath(p) })
	if len(conflicts) > 0 {
		lines := []string{"error: Your local changes to the following files would be overwritten by merge:"}
		for _, p := range conflicts {
			lines = append(lines, "\t"+p)
		}
		lines = append(lines, "Please commit your changes or stash them before you merge.", "Aborting")
		return fail(ErrStashConflict, strings.Join(lines, "\n"), `Commit or stash your current changes, then run "git stash pop" again`)
	}

	modified := append(cloneFiles(state.ModifiedFiles), withStatus(entry, FileModified)...)
	stash := cloneStash(state.Stash[:last])

	return succeed(fmt.Sprintf("Dropped refs/stash@{0} (%s)", s.hash()), &StateChange{
		ModifiedFiles: &modified,
		Stash:         &stash,
	}, "")
}

func (s *Simulator) stashDrop(state RepositoryState) Result {
	if len(state.Stash) == 0 {
		return fail(ErrEmptyStash, "No stash entries found.", "")
	}

	stash := cloneStash(state.Stash[:len(state.Stash)-1])

	return succeed(fmt.Sprintf("Dropped refs/stash@{0} (%s)", s.hash()), &StateChange{Stash: &stash}, "")
}

func stashList(state RepositoryState) Result {
	lines := make([]string, 0, len(state.Stash))
	for i := range state.Stash {
		lines = append(lines, fmt.Sprintf("stash@{%d}: WIP on %s", i, state.CurrentBranch))
	}
	return succeed(strings.Join(lines, "\n"), nil, "")
}

// commitMessage extracts the -m / --message value. A value split by the
// whitespace fallback tokenizer (unbalanced quote) is joined back up to the
// closing quote or the end of the line.
func commitMessage(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case arg == "-m" || arg == "--message":
			if i+1 < len(args) {
				return trimQuotes(rejoinQuoted(args[i+1:])), true
			}
			return "", false
		case strings.HasPrefix(arg, "--message="):
			rest := append([]string{strings.TrimPrefix(arg, "--message=")}, args[i+1:]...)
			return trimQuotes(rejoinQuoted(rest)), true
		}
	}
	return "", false
}

// rejoinQuoted returns tokens[0], or when it opens a quote that it does not
// close, the tokens up to the one that closes it.
func rejoinQuoted(tokens []string) string {
	first := tokens[0]
	if first == "" || (first[0] != '"' && first[0] != '\'') {
		return first
	}

	quote := first[:1]
	if len(first) > 1 && strings.HasSuffix(first, quote) {
		return first
	}

	for j := 1; j < len(tokens); j++ {
		if strings.HasSuffix(tokens[j], quote) {
			return strings.Join(tokens[:j+1], " ")
		}
	}
	return strings.Join(tokens, " ")
}

func trimQuotes(s string) string {
	s = strings.TrimPrefix(strings.TrimPrefix(s, `"`), `'`)
	return strings.TrimSuffix(strings.TrimSuffix(s, `"`), `'`)
}

// take removes the file at path from files.
func take(files []TrackedFile, path string) (TrackedFile, []TrackedFile, bool) {
	for i, f := range files {
		if f.Path == path {
			return f, append(files[:i:i], files[i+1:]...), true
		}
	}
	return TrackedFile{}, files, false
}

func cloneStash(stash [][]TrackedFile) [][]TrackedFile {
	return lo.Map(stash, func(entry []TrackedFile, _ int) []TrackedFile { return cloneFiles(entry) })
}
