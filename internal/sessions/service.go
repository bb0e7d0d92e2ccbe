package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// NotACommandMessage is recorded when an input line is not addressed to git.
const NotACommandMessage = `Not a valid git command. Commands must start with "git".`

type Service struct {
	config    Config
	sessions  *Repository
	simulator *gitsim.Simulator
	metrics   *Metrics

	now    func() time.Time
	logger *zap.Logger
}

func NewService(config Config, sessions *Repository, simulator *gitsim.Simulator, metrics *Metrics, logger *zap.Logger) *Service {
	return &Service{
		config:    config,
		sessions:  sessions,
		simulator: simulator,
		metrics:   metrics,

		now:    time.Now,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, draft SessionDraft) (*Session, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	draft.Files = lo.Uniq(lo.Compact(draft.Files))

	model := newSessionModel(&draft, s.now())
	if err := s.sessions.Insert(ctx, model); err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		return nil, err
	}

	s.metrics.active.Inc()
	s.logger.Info("session created",
		zap.String("session_id", model.ID.String()),
		zap.String("ticket_key", model.TicketKey),
		zap.Int("files", len(draft.Files)),
	)

	return newSession(model), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	model, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("session loaded", zap.String("session_id", id.String()))

	return newSession(model), nil
}

func (s *Service) List(ctx context.Context) ([]Session, error) {
	models, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(models, func(m *sessionModel, _ int) Session { return *newSession(m) }), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.active.Dec()
	s.logger.Info("session deleted", zap.String("session_id", id.String()))

	return nil
}

// Execute runs one input line against the session state. Input that is not a
// git command is recorded in the transcript as a failure and leaves the state
// alone. Failed commands never touch the state either.
func (s *Service) Execute(ctx context.Context, id uuid.UUID, input string) (*Execution, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidInput)
	}

	command, ok := gitsim.ParseCommand(input)

	var result gitsim.Result
	model, err := s.sessions.Update(ctx, id, func(m *sessionModel) error {
		if ok {
			result = s.simulator.Simulate(m.State, command.Kind, command.Args)
		} else {
			result = gitsim.Result{Success: false, Output: "", Error: NotACommandMessage}
		}

		if result.Success && result.StateChange != nil {
			m.State = result.StateChange.Apply(m.State)
		}

		now := s.now()
		m.Touch(now)
		m.append(entryModel{
			Input:   input,
			Command: command.Kind,
			Success: result.Success,
			Output:  result.Output,
			Error:   result.Error,
			Tip:     result.Tip,
			At:      now,
		}, s.config.MaxHistory)

		return nil
	})
	if err != nil {
		s.logger.Error("failed to execute command", zap.String("session_id", id.String()), zap.Error(err))
		return nil, err
	}

	s.metrics.observe(command.Kind, ok, result.Success)
	s.logger.Info("command executed",
		zap.String("session_id", id.String()),
		zap.String("command", command.Kind.String()),
		zap.Bool("success", result.Success),
		zap.NamedError("cause", result.Cause),
	)

	return &Execution{
		Command: ok,
		Result:  result,
		Session: newSession(model),
	}, nil
}

// RecordEdits marks paths as changed in the session working tree.
func (s *Service) RecordEdits(ctx context.Context, id uuid.UUID, paths []string) (*Session, error) {
	paths = lo.Uniq(lo.Compact(paths))
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: at least one path is required", ErrInvalidInput)
	}

	model, err := s.sessions.Update(ctx, id, func(m *sessionModel) error {
		m.State = gitsim.RecordEdits(m.State, paths...).Apply(m.State)
		m.Touch(s.now())
		return nil
	})
	if err != nil {
		s.logger.Error("failed to record edits", zap.String("session_id", id.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("edits recorded", zap.String("session_id", id.String()), zap.Strings("paths", paths))

	return newSession(model), nil
}

// syncActive sets the active sessions gauge from storage.
func (s *Service) syncActive(ctx context.Context) error {
	count, err := s.sessions.Count(ctx)
	if err != nil {
		return err
	}

	s.metrics.active.Set(float64(count))
	return nil
}
