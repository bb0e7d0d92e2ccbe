package gitsim

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const defaultLogLimit = 10

var branchListFlags = []string{"-a", "--all", "-l", "--list", "-v", "-vv", "-r", "--remotes"}

func simulateBranch(state RepositoryState, args []string) Result {
	if lo.Every(branchListFlags, args) {
		lines := lo.Map(state.Branches, func(b Branch, _ int) string {
			if b.IsActive {
				return "* " + b.Name
			}
			return "  " + b.Name
		})
		return succeed(strings.Join(lines, "\n"), nil, "")
	}

	if lo.Contains(args, "-d") || lo.Contains(args, "-D") || lo.Contains(args, "--delete") {
		return deleteBranch(state, args)
	}

	name := positionals(args)
	if len(name) == 0 {
		return fail(ErrMissingArgument, "Branch name required", example(CommandBranch))
	}

	validation := ValidateBranchName(name[0])
	if !validation.Valid {
		return fail(ErrInvalidBranchName, validation.Message, "")
	}

	if state.HasBranch(name[0]) {
		return fail(ErrBranchExists, fmt.Sprintf("A branch named '%s' already exists", name[0]), "")
	}

	branches := append(cloneBranches(state.Branches), forkActive(state, name[0], false))

	return succeed(fmt.Sprintf("Created branch '%s'", name[0]), &StateChange{Branches: &branches}, validation.Suggestion)
}

func deleteBranch(state RepositoryState, args []string) Result {
	pos := positionals(args)
	if len(pos) == 0 {
		return fail(ErrMissingArgument, "Branch name required", example(CommandBranch))
	}
	target := pos[0]

	if target == state.CurrentBranch {
		return fail(ErrDeleteActiveBranch, "Cannot delete the currently checked out branch", "")
	}

	if !state.HasBranch(target) {
		return fail(ErrBranchNotFound, fmt.Sprintf("branch '%s' not found.", target), "")
	}

	branches := cloneBranches(lo.Reject(state.Branches, func(b Branch, _ int) bool { return b.Name == target }))

	return succeed("Deleted branch "+target, &StateChange{Branches: &branches}, "")
}

func simulateCheckout(state RepositoryState, args []string) Result {
	pos := positionals(args)
	if len(pos) == 0 {
		return fail(ErrMissingArgument, "Branch name required", example(CommandCheckout))
	}
	name := pos[0]

	if lo.Contains(args, "-b") {
		validation := ValidateBranchName(name)
		if !validation.Valid {
			return fail(ErrInvalidBranchName, validation.Message, "")
		}

		if state.HasBranch(name) {
			return fail(ErrBranchExists, fmt.Sprintf("A branch named '%s' already exists", name), "")
		}

		created := forkActive(state, name, true)
		branches := append(lo.Map(cloneBranches(state.Branches), deactivate), created)

		return succeed(fmt.Sprintf("Switched to a new branch '%s'", name), &StateChange{
			CurrentBranch: ptr(name),
			Branches:      &branches,
		}, validation.Suggestion)
	}

	if !state.HasBranch(name) {
		return fail(ErrBranchNotFound, fmt.Sprintf("pathspec '%s' did not match any file(s) known to git", name), "")
	}

	if name == state.CurrentBranch {
		return succeed(fmt.Sprintf("Already on '%s'", name), nil, "")
	}

	branches := lo.Map(cloneBranches(state.Branches), func(b Branch, _ int) Branch {
		b.IsActive = b.Name == name
		return b
	})

	return succeed(fmt.Sprintf("Switched to branch '%s'", name), &StateChange{
		CurrentBranch: ptr(name),
		Branches:      &branches,
	}, "")
}

func (s *Simulator) simulateMerge(state RepositoryState, args []string) Result {
	pos := positionals(args)
	if len(pos) == 0 {
		return fail(ErrMissingArgument, "Branch name required", example(CommandMerge))
	}
	name := pos[0]

	source, ok := state.FindBranch(name)
	if !ok {
		return fail(ErrBranchNotFound, fmt.Sprintf("merge: %s - not something we can merge", name), "")
	}

	if name == state.CurrentBranch {
		return fail(ErrMergeSelf, fmt.Sprintf("Cannot merge '%s' into itself", name), "")
	}

	active, _ := state.ActiveBranch()
	missing := lo.Filter(source.Commits, func(c Commit, _ int) bool {
		return !lo.ContainsBy(active.Commits, func(have Commit) bool { return have.Hash == c.Hash })
	})
	if len(missing) == 0 {
		return succeed("Already up to date.", nil, "")
	}

	touched := lo.Uniq(lo.FlatMap(missing, func(c Commit, _ int) []string { return c.Files }))
	commits := append(cloneCommits(active.Commits), cloneCommits(missing)...)

	var output string
	if isFastForward(active.Commits, source.Commits) {
		output = fmt.Sprintf("Updating %s..%s\nFast-forward\n %d file(s) changed",
			tipHash(state, 0), missing[len(missing)-1].Hash, len(touched))
	} else {
		message := fmt.Sprintf("Merge branch '%s'", name)
		if state.CurrentBranch != DefaultBranch {
			message += " into " + state.CurrentBranch
		}
		commits = append(commits, Commit{
			Hash:      s.nextHash(state),
			Message:   message,
			Author:    s.author,
			Timestamp: s.timestamp(),
			Files:     touched,
		})
		output = fmt.Sprintf("Merge made by the 'ort' strategy.\n %d file(s) changed", len(touched))
	}

	branches := lo.Map(cloneBranches(state.Branches), func(b Branch, _ int) Branch {
		if b.IsActive {
			b.Commits = commits
		}
		return b
	})

	return succeed(output, &StateChange{
		Branches:         &branches,
		RemoteSyncStatus: ptr(SyncAhead),
	}, "")
}

// isFastForward reports whether current is a prefix of the incoming history.
func isFastForward(current, incoming []Commit) bool {
	if len(current) > len(incoming) {
		return false
	}
	for i, c := range current {
		if incoming[i].Hash != c.Hash {
			return false
		}
	}
	return true
}

func simulateLog(state RepositoryState, args []string) Result {
	active, ok := state.ActiveBranch()
	if !ok || len(active.Commits) == 0 {
		return succeed("No commits yet", nil, "")
	}

	limit := logLimit(args)
	commits := cloneCommits(active.Commits[max(0, len(active.Commits)-limit):])
	slices.Reverse(commits)

	if lo.Contains(args, "--oneline") {
		lines := lo.Map(commits, func(c Commit, _ int) string { return c.Hash + " " + c.Message })
		return succeed(strings.Join(lines, "\n"), nil, "")
	}

	entries := lo.Map(commits, func(c Commit, _ int) string {
		return strings.Join([]string{
			"commit " + c.Hash,
			"Author: " + c.Author,
			"Date:   " + c.Timestamp,
			"",
			"    " + c.Message,
			"",
		}, "\n")
	})

	return succeed(strings.Join(entries, "\n"), nil, "")
}

// logLimit reads -n N, -nN or --max-count=N. Anything unparsable or
// non-positive falls back to the default.
func logLimit(args []string) int {
	raw := ""
	for i, arg := range args {
		switch {
		case arg == "-n" && i+1 < len(args):
			raw = args[i+1]
		case strings.HasPrefix(arg, "--max-count="):
			raw = strings.TrimPrefix(arg, "--max-count=")
		case strings.HasPrefix(arg, "-n") && len(arg) > 2:
			raw = arg[2:]
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultLogLimit
	}
	return n
}

// forkActive copies the active branch history into a new branch.
func forkActive(state RepositoryState, name string, active bool) Branch {
	var commits []Commit
	if current, ok := state.ActiveBranch(); ok {
		commits = cloneCommits(current.Commits)
	} else {
		commits = []Commit{}
	}
	return Branch{Name: name, IsActive: active, Commits: commits}
}

func deactivate(b Branch, _ int) Branch {
	b.IsActive = false
	return b
}
