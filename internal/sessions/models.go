package sessions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/careersim/gitcoach/internal/storage"
	"github.com/careersim/gitcoach/pkg/badgerfx"
)

type entryModel struct {
	Input   string             `json:"input"`
	Command gitsim.CommandKind `json:"command"`
	Success bool               `json:"success"`
	Output  string             `json:"output"`
	Error   string             `json:"error,omitempty"`
	Tip     string             `json:"tip,omitempty"`
	At      time.Time          `json:"at"`
}

type sessionModel struct {
	storage.BaseEntity

	Title       string `json:"title"`
	TicketKey   string `json:"ticket_key,omitempty"`
	TicketTitle string `json:"ticket_title,omitempty"`
	TicketType  string `json:"ticket_type,omitempty"`

	State   gitsim.RepositoryState `json:"state"`
	History []entryModel           `json:"history"`
}

func newSessionModel(draft *SessionDraft, now time.Time) *sessionModel {
	state := gitsim.NewInitialState()
	state = gitsim.RecordEdits(state, draft.Files...).Apply(state)

	return &sessionModel{
		BaseEntity:  storage.NewBaseEntity(now),
		Title:       draft.Title,
		TicketKey:   draft.TicketKey,
		TicketTitle: draft.TicketTitle,
		TicketType:  draft.TicketType,
		State:       state,
		History:     []entryModel{},
	}
}

// StorageID implements badgerfx.Entity.
func (m *sessionModel) StorageID() string {
	return m.ID.String()
}

// StorageIndexes implements badgerfx.Entity.
func (m *sessionModel) StorageIndexes() []string {
	if m.TicketKey == "" {
		return nil
	}
	return []string{prefixByTicket + m.TicketKey + ":" + m.ID.String()}
}

// MarshalStorage implements badgerfx.Entity.
func (m *sessionModel) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

// UnmarshalStorage implements badgerfx.Entity.
func (m *sessionModel) UnmarshalStorage(data []byte) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return nil
}

func (m *sessionModel) append(entry entryModel, limit int) {
	m.History = append(m.History, entry)
	if limit > 0 && len(m.History) > limit {
		m.History = append([]entryModel{}, m.History[len(m.History)-limit:]...)
	}
}

var _ badgerfx.Entity = (*sessionModel)(nil)

func newSession(model *sessionModel) *Session {
	if model == nil {
		return nil
	}

	history := make([]Entry, len(model.History))
	for i, e := range model.History {
		history[i] = Entry{
			Input:   e.Input,
			Command: e.Command,
			Success: e.Success,
			Output:  e.Output,
			Error:   e.Error,
			Tip:     e.Tip,
			At:      e.At,
		}
	}

	session := &Session{
		ID:              model.ID,
		Title:           model.Title,
		TicketKey:       model.TicketKey,
		TicketTitle:     model.TicketTitle,
		TicketType:      model.TicketType,
		SuggestedBranch: "",
		SuggestedCommit: "",
		State:           model.State,
		History:         history,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	if model.TicketKey != "" {
		session.SuggestedBranch = gitsim.SuggestBranchName(model.TicketKey, model.TicketTitle, model.TicketType)
		session.SuggestedCommit = gitsim.SuggestCommitMessage(model.TicketKey, model.TicketTitle, model.TicketType)
	}

	return session
}
