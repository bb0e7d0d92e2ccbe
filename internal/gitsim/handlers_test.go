package gitsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initialized(t *testing.T, sim *Simulator) RepositoryState {
	t.Helper()
	return runAll(t, sim, NewInitialState(), "git init")
}

// committed returns a repo on main with one commit touching a.ts.
func committed(t *testing.T, sim *Simulator) RepositoryState {
	t.Helper()
	return runAll(t, sim, withEdits(initialized(t, sim), "a.ts"), "git add .", `git commit -m "feat: add a"`)
}

func TestFailuresLeaveStateAlone(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*testing.T, *Simulator) RepositoryState
		input   string
		cause   error
		message string
		tip     bool
	}{
		{"clone without url", initialized, "git clone", ErrMissingArgument, "Repository URL required", true},
		{"init twice", initialized, "git init", ErrAlreadyInitialized, "Repository already initialized", false},
		{"add nothing", initialized, "git add", ErrMissingArgument, "Nothing specified, nothing added.", true},
		{"commit nothing staged", initialized, `git commit -m "feat: x"`, ErrNothingToCommit, "nothing to commit, working tree clean", true},
		{"branch duplicate", committed, "git branch main", ErrBranchExists, "A branch named 'main' already exists", false},
		{"branch delete active", committed, "git branch -d main", ErrDeleteActiveBranch, "Cannot delete the currently checked out branch", false},
		{"branch delete missing name", committed, "git branch -D", ErrMissingArgument, "Branch name required", true},
		{"branch delete unknown", committed, "git branch -d nope", ErrBranchNotFound, "branch 'nope' not found.", false},
		{"checkout missing name", committed, "git checkout", ErrMissingArgument, "Branch name required", true},
		{"checkout unknown", committed, "git checkout nope", ErrBranchNotFound, "pathspec 'nope' did not match any file(s) known to git", false},
		{"checkout -b duplicate", committed, "git checkout -b main", ErrBranchExists, "A branch named 'main' already exists", false},
		{"checkout -b invalid", committed, "git checkout -b a..b", ErrInvalidBranchName, `Branch name cannot contain ".."`, false},
		{"merge missing name", committed, "git merge", ErrMissingArgument, "Branch name required", true},
		{"merge unknown", committed, "git merge nope", ErrBranchNotFound, "merge: nope - not something we can merge", false},
		{"merge self", committed, "git merge main", ErrMergeSelf, "Cannot merge 'main' into itself", false},
		{"stash clean tree", committed, "git stash", ErrNothingToStash, "No local changes to save", false},
		{"stash pop empty", committed, "git stash pop", ErrEmptyStash, "No stash entries found.", false},
		{"stash drop empty", committed, "git stash drop", ErrEmptyStash, "No stash entries found.", false},
		{"stash unknown subcommand", committed, "git stash apply", ErrUnknownSubcommand, "unknown subcommand: apply", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulator()
			state := tt.setup(t, sim)

			res, next := run(t, sim, state, tt.input)
			assert.False(t, res.Success)
			require.ErrorIs(t, res.Cause, tt.cause)
			assert.Equal(t, tt.message, res.Error)
			assert.Equal(t, tt.tip, res.Tip != "")
			assert.Nil(t, res.StateChange)
			assert.Equal(t, state, next)
		})
	}
}

func TestCommitMessageFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"no -m", "git commit", ErrEmptyCommitMessage},
		{"dangling -m", "git commit -m", ErrEmptyCommitMessage},
		{"empty message", `git commit -m ""`, ErrEmptyCommitMessage},
		{"too short", "git commit -m ab", ErrInvalidCommitMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulator()
			state := runAll(t, sim, withEdits(initialized(t, sim), "a.ts"), "git add .")

			res, next := run(t, sim, state, tt.input)
			assert.False(t, res.Success)
			require.ErrorIs(t, res.Cause, tt.cause)
			assert.NotEmpty(t, res.Tip)
			assert.Equal(t, state, next)
		})
	}
}

func TestClone(t *testing.T) {
	sim := newTestSimulator()

	res, state := run(t, sim, NewInitialState(), "git clone https://github.com/company/project.git")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Cloning into 'project'...")
	assert.True(t, state.IsCloned)
	assert.True(t, state.IsInitialized)
	assert.Equal(t, "https://github.com/company/project.git", state.RepoURL)

	res, _ = run(t, sim, state, "git clone https://github.com/company/other.git")
	assert.False(t, res.Success)
	require.ErrorIs(t, res.Cause, ErrAlreadyCloned)
}

func TestRepoName(t *testing.T) {
	assert.Equal(t, "project", repoName("https://github.com/company/project.git"))
	assert.Equal(t, "project", repoName("https://github.com/company/project/"))
	assert.Equal(t, "repo", repoName("git@github.com:repo.git"))
}

func TestStatusSections(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)
	state = withEdits(state, "a.ts", "b.ts", "c.ts")
	state = runAll(t, sim, state, "git add b.ts")

	res, next := run(t, sim, state, "git status")
	require.True(t, res.Success)
	assert.Nil(t, res.StateChange)
	assert.Equal(t, state, next)

	assert.Contains(t, res.Output, "On branch main")
	assert.Contains(t, res.Output, "Changes to be committed:")
	assert.Contains(t, res.Output, "\tnew file:   b.ts")
	assert.Contains(t, res.Output, "Changes not staged for commit:")
	assert.Contains(t, res.Output, "\tmodified:   a.ts")
	assert.Contains(t, res.Output, "Untracked files:")
	assert.Contains(t, res.Output, "\tc.ts")
	assert.NotContains(t, res.Output, "working tree clean")
}

func TestStatusReportsUpstream(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, committed(t, sim), "git push -u origin main")

	res, _ := run(t, sim, state, "git status")
	assert.Contains(t, res.Output, "Your branch is up to date with 'origin/main'.")

	state = runAll(t, sim, withEdits(state, "b.ts"), "git add .", `git commit -m "feat: b"`)
	res, _ = run(t, sim, state, "git status")
	assert.Contains(t, res.Output, "Your branch is ahead of 'origin/main'.")
}

func TestAddNamedPaths(t *testing.T) {
	sim := newTestSimulator()
	state := withEdits(committed(t, sim), "a.ts", "b.ts", "c.ts")

	res, state := run(t, sim, state, "git add a.ts b.ts new.ts b.ts")
	require.True(t, res.Success)
	assert.Equal(t, "Changes staged for commit", res.Output)

	assert.Equal(t, []string{"a.ts", "b.ts", "new.ts"}, paths(state.StagedFiles))
	assert.Empty(t, state.ModifiedFiles)
	assert.Equal(t, []string{"c.ts"}, paths(state.UntrackedFiles))
	for _, f := range state.StagedFiles {
		assert.Equal(t, FileStaged, f.Status)
	}

	res, again := run(t, sim, state, "git add a.ts")
	require.True(t, res.Success)
	assert.Equal(t, state, again)
}

func TestAddAllWithNothingPending(t *testing.T) {
	sim := newTestSimulator()

	res, _ := run(t, sim, initialized(t, sim), "git add -A")
	require.True(t, res.Success)
	assert.Equal(t, "Nothing to add", res.Output)
}

func TestCommitNonConventionalTip(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, withEdits(initialized(t, sim), "a.ts"), "git add .")

	res, _ := run(t, sim, state, `git commit -m "add login"`)
	require.True(t, res.Success)
	assert.Equal(t, `Try: "feat: add login" for a new feature`, res.Tip)
}

func TestPushSetsUpstream(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, committed(t, sim), "git checkout -b feature/x")
	state = runAll(t, sim, withEdits(state, "b.ts"), "git add .", `git commit -m "feat: b"`)

	res, state := run(t, sim, state, "git push --set-upstream origin feature/x")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "To origin")
	assert.Contains(t, res.Output, "feature/x -> feature/x")
	assert.Equal(t, SyncSynced, state.RemoteSyncStatus)

	branch, ok := state.FindBranch("feature/x")
	require.True(t, ok)
	assert.Equal(t, "origin/feature/x", branch.Upstream)

	main, _ := state.FindBranch("main")
	assert.Empty(t, main.Upstream)
}

func TestPullAndFetch(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)
	require.Equal(t, SyncAhead, state.RemoteSyncStatus)

	res, next := run(t, sim, state, "git fetch")
	require.True(t, res.Success)
	assert.True(t, len(res.Output) > 0)
	assert.Contains(t, res.Output, "From origin")
	assert.Contains(t, res.Output, "-> origin/main")
	assert.Equal(t, state, next)

	res, next = run(t, sim, state, "git pull")
	require.True(t, res.Success)
	assert.Equal(t, "Already up to date.", res.Output)
	assert.Equal(t, SyncSynced, next.RemoteSyncStatus)
}

func TestBranchListing(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, committed(t, sim), "git branch feature/y")

	for _, input := range []string{"git branch", "git branch -a", "git branch --list -v"} {
		res, _ := run(t, sim, state, input)
		require.True(t, res.Success, input)
		assert.Equal(t, "* main\n  feature/y", res.Output, input)
	}
}

func TestBranchCreateAndDelete(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)

	res, state := run(t, sim, state, "git branch login")
	require.True(t, res.Success)
	assert.Equal(t, "Created branch 'login'", res.Output)
	assert.NotEmpty(t, res.Tip)

	login, ok := state.FindBranch("login")
	require.True(t, ok)
	assert.False(t, login.IsActive)
	assert.Len(t, login.Commits, 1)
	assert.Equal(t, "main", state.CurrentBranch)

	res, state = run(t, sim, state, "git branch -d login")
	require.True(t, res.Success)
	assert.Equal(t, "Deleted branch login", res.Output)
	assert.False(t, state.HasBranch("login"))
}

func TestCheckoutAlreadyOn(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)

	res, next := run(t, sim, state, "git checkout main")
	require.True(t, res.Success)
	assert.Equal(t, "Already on 'main'", res.Output)
	assert.Nil(t, res.StateChange)
	assert.Equal(t, state, next)
}

func TestBranchIsolation(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)
	main, _ := state.FindBranch("main")

	state = runAll(t, sim, state, "git checkout -b b2")
	b2, _ := state.FindBranch("b2")
	assert.Equal(t, main.Commits, b2.Commits)

	state = runAll(t, sim, state, "git checkout main")
	state = runAll(t, sim, withEdits(state, "b.ts"), "git add .", `git commit -m "feat: b"`)

	b2, _ = state.FindBranch("b2")
	assert.Len(t, b2.Commits, 1)
	main, _ = state.FindBranch("main")
	assert.Len(t, main.Commits, 2)
}

func TestMergeFastForward(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, committed(t, sim), "git checkout -b feature/x")
	state = runAll(t, sim, withEdits(state, "b.ts", "c.ts"), "git add .", `git commit -m "feat: bc"`)
	state = runAll(t, sim, state, "git push", "git checkout main")
	require.Equal(t, SyncSynced, state.RemoteSyncStatus)

	res, state := run(t, sim, state, "git merge feature/x")
	require.True(t, res.Success)
	assert.Equal(t, "Updating 0000001..0000002\nFast-forward\n 2 file(s) changed", res.Output)
	assert.Equal(t, SyncAhead, state.RemoteSyncStatus)

	main, _ := state.FindBranch("main")
	feature, _ := state.FindBranch("feature/x")
	assert.Equal(t, feature.Commits, main.Commits)

	res, _ = run(t, sim, state, "git merge feature/x")
	require.True(t, res.Success)
	assert.Equal(t, "Already up to date.", res.Output)
	assert.Nil(t, res.StateChange)
}

func TestMergeDivergedCreatesMergeCommit(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, committed(t, sim), "git checkout -b feature/x")
	state = runAll(t, sim, withEdits(state, "b.ts"), "git add .", `git commit -m "feat: b"`, "git checkout main")
	state = runAll(t, sim, withEdits(state, "c.ts"), "git add .", `git commit -m "feat: c"`)

	res, state := run(t, sim, state, "git merge feature/x")
	require.True(t, res.Success)
	assert.Equal(t, "Merge made by the 'ort' strategy.\n 1 file(s) changed", res.Output)
	assert.NotContains(t, res.Output, "Fast-forward")

	main, _ := state.FindBranch("main")
	require.Len(t, main.Commits, 4)
	assert.Equal(t, []string{"0000001", "0000003", "0000002", "0000004"},
		[]string{main.Commits[0].Hash, main.Commits[1].Hash, main.Commits[2].Hash, main.Commits[3].Hash})
	merge := main.Commits[3]
	assert.Equal(t, "Merge branch 'feature/x'", merge.Message)
	assert.Equal(t, []string{"b.ts"}, merge.Files)
	assert.Equal(t, DefaultAuthor, merge.Author)

	state = runAll(t, sim, state, "git checkout feature/x")
	res, state = run(t, sim, state, "git merge main")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Merge made by the 'ort' strategy.")
	feature, _ := state.FindBranch("feature/x")
	assert.Equal(t, "Merge branch 'main' into feature/x", feature.Commits[len(feature.Commits)-1].Message)
}

func TestCommitRejoinsUnbalancedQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`git commit -m "feat: add b`, "feat: add b"},
		{`git commit --message="feat: add b`, "feat: add b"},
		{`git commit -m 'fix: typo here`, "fix: typo here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sim := newTestSimulator()
			state := withEdits(committed(t, sim), "b.ts")
			state = runAll(t, sim, state, "git add b.ts")

			res, state := run(t, sim, state, tt.input)
			require.True(t, res.Success, res.Error)
			main, _ := state.FindBranch("main")
			assert.Equal(t, tt.want, main.Commits[len(main.Commits)-1].Message)
		})
	}
}

func TestLog(t *testing.T) {
	sim := newTestSimulator()
	res, _ := run(t, sim, initialized(t, sim), "git log")
	assert.Equal(t, "No commits yet", res.Output)

	state := initialized(t, sim)
	for _, file := range []string{"a.ts", "b.ts", "c.ts"} {
		state = runAll(t, sim, withEdits(state, file), "git add .", `git commit -m "feat: `+file+`"`)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"git log --oneline", "0000003 feat: c.ts\n0000002 feat: b.ts\n0000001 feat: a.ts"},
		{"git log --oneline -n 2", "0000003 feat: c.ts\n0000002 feat: b.ts"},
		{"git log --oneline -n1", "0000003 feat: c.ts"},
		{"git log --oneline --max-count=2", "0000003 feat: c.ts\n0000002 feat: b.ts"},
		{"git log --oneline -n zero", "0000003 feat: c.ts\n0000002 feat: b.ts\n0000001 feat: a.ts"},
		{"git log --oneline -n -4", "0000003 feat: c.ts\n0000002 feat: b.ts\n0000001 feat: a.ts"},
	}
	for _, tt := range tests {
		res, _ := run(t, sim, state, tt.input)
		assert.Equal(t, tt.want, res.Output, tt.input)
	}

	res, _ = run(t, sim, state, "git log -n 1")
	assert.Equal(t, "commit 0000003\nAuthor: You <you@example.com>\nDate:   2024-03-04T09:30:00Z\n\n    feat: c.ts\n", res.Output)
}

func TestDiff(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)

	res, _ := run(t, sim, state, "git diff")
	require.True(t, res.Success)
	assert.Empty(t, res.Output)

	state = runAll(t, sim, withEdits(state, "a.ts", "b.ts"), "git add b.ts")

	res, _ = run(t, sim, state, "git diff")
	assert.Contains(t, res.Output, "diff --git a/a.ts b/a.ts")
	assert.Contains(t, res.Output, "diff --git a/b.ts b/b.ts")

	res, _ = run(t, sim, state, "git diff --staged")
	assert.NotContains(t, res.Output, "a/a.ts")
	assert.Contains(t, res.Output, "diff --git a/b.ts b/b.ts")
}

func TestStashLIFO(t *testing.T) {
	sim := newTestSimulator()
	state := committed(t, sim)

	state = runAll(t, sim, withEdits(state, "a.ts"), "git stash")
	assert.Empty(t, state.ModifiedFiles)

	state = runAll(t, sim, withEdits(state, "b.ts"), "git add b.ts", "git stash save")
	require.Len(t, state.Stash, 2)

	res, _ := run(t, sim, state, "git stash list")
	assert.Equal(t, "stash@{0}: WIP on main\nstash@{1}: WIP on main", res.Output)

	res, state = run(t, sim, state, "git stash pop")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Dropped refs/stash@{0}")
	assert.Equal(t, []string{"b.ts"}, paths(state.ModifiedFiles))
	assert.Equal(t, FileModified, state.ModifiedFiles[0].Status)
	require.Len(t, state.Stash, 1)
	assert.Equal(t, []string{"a.ts"}, paths(state.Stash[0]))

	state = runAll(t, sim, state, "git stash drop")
	assert.Empty(t, state.Stash)
	assert.Equal(t, []string{"b.ts"}, paths(state.ModifiedFiles))
}

func TestStashPopConflictKeepsEntry(t *testing.T) {
	sim := newTestSimulator()
	state := runAll(t, sim, withEdits(committed(t, sim), "a.ts"), "git add a.ts", "git stash")
	state = withEdits(state, "a.ts")
	before := state.Clone()

	res, state := run(t, sim, state, "git stash pop")
	require.False(t, res.Success)
	assert.ErrorIs(t, res.Cause, ErrStashConflict)
	assert.ErrorIs(t, res.Cause, ErrInvariant)
	assert.Nil(t, res.StateChange)
	assert.Equal(t, "error: Your local changes to the following files would be overwritten by merge:\n\ta.ts\n"+
		"Please commit your changes or stash them before you merge.\nAborting", res.Error)
	assert.NotEmpty(t, res.Tip)
	assert.Equal(t, before, state)

	state = runAll(t, sim, state, "git add a.ts", `git commit -m "fix: a again"`, "git stash pop")
	assert.Empty(t, state.Stash)
	assert.Equal(t, []string{"a.ts"}, paths(state.ModifiedFiles))
	assert.Equal(t, FileModified, state.ModifiedFiles[0].Status)
}

func TestStashListEmpty(t *testing.T) {
	sim := newTestSimulator()

	res, _ := run(t, sim, initialized(t, sim), "git stash list")
	require.True(t, res.Success)
	assert.Empty(t, res.Output)
}
