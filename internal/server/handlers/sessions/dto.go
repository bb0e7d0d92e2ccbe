package sessions

import (
	"time"

	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/careersim/gitcoach/internal/sessions"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// POSTRequest is the payload for creating a practice session.
type POSTRequest struct {
	Title       string   `json:"title"        validate:"required,min=1,max=200"`
	TicketKey   string   `json:"ticket_key"   validate:"max=50"`
	TicketTitle string   `json:"ticket_title" validate:"max=200"`
	TicketType  string   `json:"ticket_type"  validate:"max=50"`
	Files       []string `json:"files"        validate:"max=100,dive,required,max=255"`
}

// CommandRequest is one line typed into the session terminal.
type CommandRequest struct {
	Input string `json:"input" validate:"required,max=1000"`
}

// EditsRequest lists files saved in the simulated editor.
type EditsRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,max=100,dive,required,max=255"`
}

type EntryResponse struct {
	Input   string             `json:"input"`
	Command gitsim.CommandKind `json:"command,omitempty"`
	Success bool               `json:"success"`
	Output  string             `json:"output"`
	Error   string             `json:"error,omitempty"`
	Tip     string             `json:"tip,omitempty"`
	At      time.Time          `json:"at"`
}

// SessionResponse is the full session including state and transcript.
type SessionResponse struct {
	SummaryResponse

	TicketTitle     string `json:"ticket_title,omitempty"`
	TicketType      string `json:"ticket_type,omitempty"`
	SuggestedBranch string `json:"suggested_branch,omitempty"`
	SuggestedCommit string `json:"suggested_commit,omitempty"`

	State   gitsim.RepositoryState `json:"state"`
	History []EntryResponse        `json:"history"`
}

// SummaryResponse is the list view of a session.
type SummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TicketKey     string    `json:"ticket_key,omitempty"`
	CurrentBranch string    `json:"current_branch"`
	Commands      int       `json:"commands"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExecutionResponse is the result of one command plus the state after it.
type ExecutionResponse struct {
	IsCommand bool                   `json:"is_command"`
	Result    gitsim.Result          `json:"result"`
	State     gitsim.RepositoryState `json:"state"`
}

func newSummaryResponse(s *sessions.Session) SummaryResponse {
	return SummaryResponse{
		ID:            s.ID,
		Title:         s.Title,
		TicketKey:     s.TicketKey,
		CurrentBranch: s.State.CurrentBranch,
		Commands:      len(s.History),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func newSessionResponse(s *sessions.Session) SessionResponse {
	return SessionResponse{
		SummaryResponse: newSummaryResponse(s),
		TicketTitle:     s.TicketTitle,
		TicketType:      s.TicketType,
		SuggestedBranch: s.SuggestedBranch,
		SuggestedCommit: s.SuggestedCommit,
		State:           s.State,
		History: lo.Map(s.History, func(e sessions.Entry, _ int) EntryResponse {
			return EntryResponse{
				Input:   e.Input,
				Command: e.Command,
				Success: e.Success,
				Output:  e.Output,
				Error:   e.Error,
				Tip:     e.Tip,
				At:      e.At,
			}
		}),
	}
}
