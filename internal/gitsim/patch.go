package gitsim

// StateChange is a partial patch over RepositoryState. A nil field means the
// field is left as is; a pointer to an empty slice clears it.
type StateChange struct {
	IsInitialized *bool   `json:"isInitialized,omitempty"`
	IsCloned      *bool   `json:"isCloned,omitempty"`
	RepoURL       *string `json:"repoUrl,omitempty"`

	CurrentBranch *string   `json:"currentBranch,omitempty"`
	Branches      *[]Branch `json:"branches,omitempty"`

	StagedFiles    *[]TrackedFile `json:"stagedFiles,omitempty"`
	ModifiedFiles  *[]TrackedFile `json:"modifiedFiles,omitempty"`
	UntrackedFiles *[]TrackedFile `json:"untrackedFiles,omitempty"`

	RemoteSyncStatus *SyncStatus      `json:"remoteSyncStatus,omitempty"`
	Stash            *[][]TrackedFile `json:"stash,omitempty"`
}

// Apply returns a copy of state with the patched fields replaced. A nil patch
// returns an unchanged copy.
func (c *StateChange) Apply(state RepositoryState) RepositoryState {
	out := state.Clone()
	if c == nil {
		return out
	}

	if c.IsInitialized != nil {
		out.IsInitialized = *c.IsInitialized
	}
	if c.IsCloned != nil {
		out.IsCloned = *c.IsCloned
	}
	if c.RepoURL != nil {
		out.RepoURL = *c.RepoURL
	}
	if c.CurrentBranch != nil {
		out.CurrentBranch = *c.CurrentBranch
	}
	if c.Branches != nil {
		out.Branches = cloneBranches(*c.Branches)
	}
	if c.StagedFiles != nil {
		out.StagedFiles = cloneFiles(*c.StagedFiles)
	}
	if c.ModifiedFiles != nil {
		out.ModifiedFiles = cloneFiles(*c.ModifiedFiles)
	}
	if c.UntrackedFiles != nil {
		out.UntrackedFiles = cloneFiles(*c.UntrackedFiles)
	}
	if c.RemoteSyncStatus != nil {
		out.RemoteSyncStatus = *c.RemoteSyncStatus
	}
	if c.Stash != nil {
		stash := make([][]TrackedFile, len(*c.Stash))
		for i, entry := range *c.Stash {
			stash[i] = cloneFiles(entry)
		}
		out.Stash = stash
	}

	return out
}

// IsEmpty reports whether the patch names no field.
func (c *StateChange) IsEmpty() bool {
	return c == nil || *c == StateChange{}
}

func ptr[T any](v T) *T {
	return &v
}
