package gitsim

import (
	"errors"
	"fmt"
)

// Failure categories. Every sentinel below wraps exactly one of them.
var (
	ErrUsage     = errors.New("usage error")
	ErrInvariant = errors.New("invariant violation")
)

var (
	ErrUnknownCommand       = fmt.Errorf("%w: unknown command", ErrUsage)
	ErrMissingArgument      = fmt.Errorf("%w: missing argument", ErrUsage)
	ErrEmptyCommitMessage   = fmt.Errorf("%w: empty commit message", ErrUsage)
	ErrUnknownSubcommand    = fmt.Errorf("%w: unknown subcommand", ErrUsage)
	ErrInvalidBranchName    = fmt.Errorf("%w: invalid branch name", ErrUsage)
	ErrInvalidCommitMessage = fmt.Errorf("%w: invalid commit message", ErrUsage)

	ErrAlreadyCloned      = fmt.Errorf("%w: repository already cloned", ErrInvariant)
	ErrAlreadyInitialized = fmt.Errorf("%w: repository already initialized", ErrInvariant)
	ErrNothingToCommit    = fmt.Errorf("%w: nothing to commit", ErrInvariant)
	ErrBranchExists       = fmt.Errorf("%w: branch already exists", ErrInvariant)
	ErrBranchNotFound     = fmt.Errorf("%w: branch not found", ErrInvariant)
	ErrDeleteActiveBranch = fmt.Errorf("%w: cannot delete the active branch", ErrInvariant)
	ErrMergeSelf          = fmt.Errorf("%w: cannot merge a branch into itself", ErrInvariant)
	ErrNothingToStash     = fmt.Errorf("%w: no local changes to save", ErrInvariant)
	ErrEmptyStash         = fmt.Errorf("%w: no stash entries", ErrInvariant)
	ErrStashConflict      = fmt.Errorf("%w: local changes would be overwritten", ErrInvariant)
)
