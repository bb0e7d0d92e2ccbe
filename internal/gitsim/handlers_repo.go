package gitsim

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-git/v6/plumbing"
	"github.com/samber/lo"
)

const defaultRemote = "origin"

func simulateClone(state RepositoryState, args []string) Result {
	if state.IsCloned {
		return fail(ErrAlreadyCloned, "Repository already cloned", "")
	}

	urls := positionals(args)
	if len(urls) == 0 {
		return fail(ErrMissingArgument, "Repository URL required", example(CommandClone))
	}
	repoURL := urls[0]

	output := strings.Join([]string{
		fmt.Sprintf("Cloning into '%s'...", repoName(repoURL)),
		"remote: Enumerating objects: 156, done.",
		"remote: Counting objects: 100% (156/156), done.",
		"remote: Compressing objects: 100% (89/89), done.",
		"Receiving objects: 100% (156/156), 45.2 KiB | 1.2 MiB/s, done.",
		"Resolving deltas: 100% (67/67), done.",
	}, "\n")

	return succeed(output, &StateChange{
		IsCloned:      ptr(true),
		IsInitialized: ptr(true),
		RepoURL:       ptr(repoURL),
	}, `Repository cloned! Use "git status" to see the current state.`)
}

func simulateInit(state RepositoryState) Result {
	if state.IsInitialized {
		return fail(ErrAlreadyInitialized, "Repository already initialized", "")
	}

	return succeed("Initialized empty Git repository in .git/", &StateChange{IsInitialized: ptr(true)}, "")
}

func simulateStatus(state RepositoryState) Result {
	lines := []string{"On branch " + state.CurrentBranch}

	if active, ok := state.ActiveBranch(); ok && active.Upstream != "" {
		if state.RemoteSyncStatus == SyncAhead {
			lines = append(lines,
				fmt.Sprintf("Your branch is ahead of '%s'.", active.Upstream),
				`  (use "git push" to publish your local commits)`,
			)
		} else {
			lines = append(lines, fmt.Sprintf("Your branch is up to date with '%s'.", active.Upstream))
		}
	}

	if len(state.StagedFiles) > 0 {
		lines = append(lines, "\nChanges to be committed:", `  (use "git restore --staged <file>..." to unstage)`)
		for _, f := range state.StagedFiles {
			label := "new file"
			if state.knownPath(f.Path) {
				label = "modified"
			}
			lines = append(lines, fmt.Sprintf("\t%s:   %s", label, f.Path))
		}
	}

	if len(state.ModifiedFiles) > 0 {
		lines = append(lines, "\nChanges not staged for commit:", `  (use "git add <file>..." to update what will be committed)`)
		for _, f := range state.ModifiedFiles {
			lines = append(lines, "\tmodified:   "+f.Path)
		}
	}

	if len(state.UntrackedFiles) > 0 {
		lines = append(lines, "\nUntracked files:", `  (use "git add <file>..." to include in what will be committed)`)
		for _, f := range state.UntrackedFiles {
			lines = append(lines, "\t"+f.Path)
		}
	}

	if len(state.StagedFiles) == 0 && len(state.ModifiedFiles) == 0 && len(state.UntrackedFiles) == 0 {
		lines = append(lines, "\nnothing to commit, working tree clean")
	}

	return succeed(strings.Join(lines, "\n"), nil, "")
}

func simulatePush(state RepositoryState, args []string) Result {
	if state.RemoteSyncStatus == SyncSynced {
		return succeed("Everything up-to-date", nil, "")
	}

	remote, branch := defaultRemote, state.CurrentBranch
	pos := positionals(args)
	if len(pos) > 0 {
		remote = pos[0]
	}
	if len(pos) > 1 {
		branch = pos[1]
	}

	upstream := plumbing.NewRemoteReferenceName(remote, branch).Short()
	branches := lo.Map(cloneBranches(state.Branches), func(b Branch, _ int) Branch {
		if b.Name == branch {
			b.Upstream = upstream
		}
		return b
	})

	output := strings.Join([]string{
		"Enumerating objects: 5, done.",
		"Counting objects: 100% (5/5), done.",
		"Delta compression using up to 8 threads",
		"Compressing objects: 100% (3/3), done.",
		"Writing objects: 100% (3/3), 350 bytes | 350.00 KiB/s, done.",
		"Total 3 (delta 2), reused 0 (delta 0)",
		"To " + remote,
		fmt.Sprintf("   %s..%s  %s -> %s", tipHash(state, 1), tipHash(state, 0), branch, branch),
	}, "\n")

	return succeed(output, &StateChange{
		Branches:         &branches,
		RemoteSyncStatus: ptr(SyncSynced),
	}, "")
}

func simulatePull(RepositoryState) Result {
	return succeed("Already up to date.", &StateChange{RemoteSyncStatus: ptr(SyncSynced)}, "")
}

func simulateFetch(state RepositoryState) Result {
	source := defaultRemote
	if state.RepoURL != "" {
		source = state.RepoURL
	}

	branch := state.CurrentBranch
	line := fmt.Sprintf("   %s..%s  %-10s -> %s", tipHash(state, 1), tipHash(state, 0), branch,
		plumbing.NewRemoteReferenceName(defaultRemote, branch).Short())

	return succeed("From "+source+"\n"+line, nil, "")
}

// repoName derives the clone directory from a URL or scp-style address.
func repoName(url string) string {
	name := path.Base(strings.TrimRight(url, "/"))
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".git")
}

// tipHash returns the hash back commits behind the active branch tip, or a
// placeholder when history is too short.
func tipHash(state RepositoryState, back int) string {
	placeholders := []string{"def5678", "abc1234"}
	active, ok := state.ActiveBranch()
	if !ok || len(active.Commits) <= back {
		return placeholders[min(back, len(placeholders)-1)]
	}
	return active.Commits[len(active.Commits)-1-back].Hash
}

func positionals(args []string) []string {
	return lo.Filter(args, func(a string, _ int) bool { return !strings.HasPrefix(a, "-") })
}
