package gitsim

import (
	"github.com/samber/lo"
)

// DefaultBranch is the branch every fresh repository starts on.
const DefaultBranch = "main"

type FileStatus string

const (
	FileUntracked FileStatus = "untracked"
	FileModified  FileStatus = "modified"
	FileStaged    FileStatus = "staged"
	FileCommitted FileStatus = "committed"
)

// SyncStatus is the simulated relationship between the local and remote tips.
type SyncStatus string

const (
	SyncSynced SyncStatus = "synced"
	SyncAhead  SyncStatus = "ahead"
	// SyncBehind and SyncDiverged are part of the model but no command produces them yet.
	SyncBehind   SyncStatus = "behind"
	SyncDiverged SyncStatus = "diverged"
)

type TrackedFile struct {
	Path    string     `json:"path"`
	Status  FileStatus `json:"status"`
	Content string     `json:"content,omitempty"`
}

type Commit struct {
	Hash      string   `json:"hash"`
	Message   string   `json:"message"`
	Author    string   `json:"author"`
	Timestamp string   `json:"timestamp"`
	Files     []string `json:"files"`
}

type Branch struct {
	Name     string   `json:"name"`
	IsActive bool     `json:"isActive"`
	Commits  []Commit `json:"commits"`
	Upstream string   `json:"upstreamBranch,omitempty"` // e.g. origin/feature/login
}

// RepositoryState is the whole simulated repository. It is owned by the
// caller and replaced, never mutated, by the engine.
type RepositoryState struct {
	IsInitialized bool   `json:"isInitialized"`
	IsCloned      bool   `json:"isCloned"`
	RepoURL       string `json:"repoUrl,omitempty"`

	CurrentBranch string   `json:"currentBranch"`
	Branches      []Branch `json:"branches"`

	StagedFiles    []TrackedFile `json:"stagedFiles"`
	ModifiedFiles  []TrackedFile `json:"modifiedFiles"`
	UntrackedFiles []TrackedFile `json:"untrackedFiles"`

	RemoteSyncStatus SyncStatus      `json:"remoteSyncStatus"`
	Stash            [][]TrackedFile `json:"stash"`
}

// NewInitialState returns an uninitialized repository with a single active main branch.
func NewInitialState() RepositoryState {
	return RepositoryState{
		IsInitialized: false,
		IsCloned:      false,
		RepoURL:       "",
		CurrentBranch: DefaultBranch,
		Branches: []Branch{
			{Name: DefaultBranch, IsActive: true, Commits: []Commit{}},
		},
		StagedFiles:      []TrackedFile{},
		ModifiedFiles:    []TrackedFile{},
		UntrackedFiles:   []TrackedFile{},
		RemoteSyncStatus: SyncSynced,
		Stash:            [][]TrackedFile{},
	}
}

// ActiveBranch returns the branch flagged active.
func (s RepositoryState) ActiveBranch() (Branch, bool) {
	return lo.Find(s.Branches, func(b Branch) bool { return b.IsActive })
}

// FindBranch looks a branch up by name.
func (s RepositoryState) FindBranch(name string) (Branch, bool) {
	return lo.Find(s.Branches, func(b Branch) bool { return b.Name == name })
}

// HasBranch reports whether a branch with the given name exists.
func (s RepositoryState) HasBranch(name string) bool {
	return lo.ContainsBy(s.Branches, func(b Branch) bool { return b.Name == name })
}

// HasPendingChanges reports whether anything is staged or modified.
func (s RepositoryState) HasPendingChanges() bool {
	return len(s.StagedFiles) > 0 || len(s.ModifiedFiles) > 0
}

// Clone returns a deep copy of the state.
func (s RepositoryState) Clone() RepositoryState {
	out := s
	out.Branches = cloneBranches(s.Branches)
	out.StagedFiles = cloneFiles(s.StagedFiles)
	out.ModifiedFiles = cloneFiles(s.ModifiedFiles)
	out.UntrackedFiles = cloneFiles(s.UntrackedFiles)
	out.Stash = lo.Map(s.Stash, func(entry []TrackedFile, _ int) []TrackedFile { return cloneFiles(entry) })
	return out
}

// knownPath reports whether path appears in any commit of the active branch.
func (s RepositoryState) knownPath(path string) bool {
	active, ok := s.ActiveBranch()
	if !ok {
		return false
	}
	return lo.ContainsBy(active.Commits, func(c Commit) bool { return lo.Contains(c.Files, path) })
}

// pendingPath reports whether path is in any of the three change buckets.
func (s RepositoryState) pendingPath(path string) bool {
	match := func(f TrackedFile) bool { return f.Path == path }
	return lo.ContainsBy(s.StagedFiles, match) ||
		lo.ContainsBy(s.ModifiedFiles, match) ||
		lo.ContainsBy(s.UntrackedFiles, match)
}

func (s RepositoryState) hashInUse(hash string) bool {
	return lo.ContainsBy(s.Branches, func(b Branch) bool {
		return lo.ContainsBy(b.Commits, func(c Commit) bool { return c.Hash == hash })
	})
}

func cloneFiles(files []TrackedFile) []TrackedFile {
	out := make([]TrackedFile, len(files))
	copy(out, files)
	return out
}

func cloneCommits(commits []Commit) []Commit {
	return lo.Map(commits, func(c Commit, _ int) Commit {
		c.Files = append([]string{}, c.Files...)
		return c
	})
}

func cloneBranches(branches []Branch) []Branch {
	return lo.Map(branches, func(b Branch, _ int) Branch {
		b.Commits = cloneCommits(b.Commits)
		return b
	})
}

func withStatus(files []TrackedFile, status FileStatus) []TrackedFile {
	return lo.Map(files, func(f TrackedFile, _ int) TrackedFile {
		f.Status = status
		return f
	})
}

func paths(files []TrackedFile) []string {
	return lo.Map(files, func(f TrackedFile, _ int) string { return f.Path })
}
