package coach

import "github.com/careersim/gitcoach/internal/gitsim"

type BranchRequest struct {
	Name string `json:"name" validate:"max=255"`
}

type CommitRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

// SuggestionRequest carries the ticket context. ChangeDescription defaults to
// the ticket title.
type SuggestionRequest struct {
	TicketKey         string `json:"ticket_key"         validate:"required,max=50"`
	TicketTitle       string `json:"ticket_title"       validate:"required,max=200"`
	TicketType        string `json:"ticket_type"        validate:"max=50"`
	ChangeDescription string `json:"change_description" validate:"max=200"`
}

type SuggestionResponse struct {
	Branch string `json:"branch"`
	Commit string `json:"commit"`
}

type ConventionsResponse struct {
	Branches gitsim.Guide `json:"branches"`
	Commits  gitsim.Guide `json:"commits"`
}
