package sessions

import (
	"time"

	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/google/uuid"
)

// SessionDraft describes a new practice workspace. Files are seeded into the
// working tree as untracked edits.
type SessionDraft struct {
	Title string

	// Ticket context used to pre-fill naming suggestions
	TicketKey   string
	TicketTitle string
	TicketType  string

	Files []string
}

// Entry is one transcript line.
type Entry struct {
	Input   string
	Command gitsim.CommandKind
	Success bool
	Output  string
	Error   string
	Tip     string
	At      time.Time
}

type Session struct {
	ID    uuid.UUID
	Title string

	TicketKey       string
	TicketTitle     string
	TicketType      string
	SuggestedBranch string
	SuggestedCommit string

	State   gitsim.RepositoryState
	History []Entry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Execution is the outcome of running one input line in a session.
type Execution struct {
	// Command is false when the input was not addressed to git at all
	Command bool
	Result  gitsim.Result
	Session *Session
}
