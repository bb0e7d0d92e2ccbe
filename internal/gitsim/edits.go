package gitsim

// RecordEdits marks paths as changed in the working tree, the way an editor
// save would. Paths already pending are left alone, paths known to the active
// branch become modified and everything else becomes untracked. Duplicate
// paths are recorded once.
func RecordEdits(state RepositoryState, paths ...string) *StateChange {
	modified := cloneFiles(state.ModifiedFiles)
	untracked := cloneFiles(state.UntrackedFiles)
	seen := make(map[string]struct{}, len(paths))

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok || state.pendingPath(path) {
			continue
		}
		seen[path] = struct{}{}

		if state.knownPath(path) {
			modified = append(modified, TrackedFile{Path: path, Status: FileModified})
		} else {
			untracked = append(untracked, TrackedFile{Path: path, Status: FileUntracked})
		}
	}

	return &StateChange{
		ModifiedFiles:  &modified,
		UntrackedFiles: &untracked,
	}
}
