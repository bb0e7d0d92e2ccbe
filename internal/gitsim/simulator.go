package gitsim

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// DefaultAuthor is recorded on commits when no author is configured.
	DefaultAuthor = "You <you@example.com>"

	hashAlphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	hashLength      = 7
	maxHashAttempts = 10
)

// HashFunc produces a short commit hash.
type HashFunc func() string

// Result is the outcome of one simulated command. StateChange is set only on
// success; Cause carries the failure sentinel for errors.Is.
type Result struct {
	Success     bool         `json:"success"`
	Output      string       `json:"output"`
	Error       string       `json:"error,omitempty"`
	StateChange *StateChange `json:"stateChange,omitempty"`
	Tip         string       `json:"tip,omitempty"`

	Cause error `json:"-"`
}

func succeed(output string, change *StateChange, tip string) Result {
	return Result{
		Success:     true,
		Output:      output,
		Error:       "",
		StateChange: change,
		Tip:         tip,
		Cause:       nil,
	}
}

func fail(cause error, message, tip string) Result {
	return Result{
		Success:     false,
		Output:      "",
		Error:       message,
		StateChange: nil,
		Tip:         tip,
		Cause:       cause,
	}
}

type Option func(*Simulator)

// WithHashFunc replaces the random hash generator.
func WithHashFunc(fn HashFunc) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.hash = fn
		}
	}
}

// WithClock replaces the commit timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.clock = fn
		}
	}
}

// WithAuthor sets the commit author line.
func WithAuthor(author string) Option {
	return func(s *Simulator) {
		if author != "" {
			s.author = author
		}
	}
}

// Simulator interprets commands against a RepositoryState. It keeps no state
// between calls and is safe for concurrent use as long as the configured hash
// and clock functions are.
type Simulator struct {
	hash   HashFunc
	clock  func() time.Time
	author string
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		hash:   randomHash,
		clock:  time.Now,
		author: DefaultAuthor,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Simulate routes kind to its handler. The returned patch, if any, must be
// applied by the caller; state itself is never modified.
func (s *Simulator) Simulate(state RepositoryState, kind CommandKind, args []string) Result {
	switch kind {
	case CommandClone:
		return simulateClone(state, args)
	case CommandInit:
		return simulateInit(state)
	case CommandStatus:
		return simulateStatus(state)
	case CommandAdd:
		return simulateAdd(state, args)
	case CommandCommit:
		return s.simulateCommit(state, args)
	case CommandPush:
		return simulatePush(state, args)
	case CommandPull:
		return simulatePull(state)
	case CommandBranch:
		return simulateBranch(state, args)
	case CommandCheckout:
		return simulateCheckout(state, args)
	case CommandMerge:
		return s.simulateMerge(state, args)
	case CommandLog:
		return simulateLog(state, args)
	case CommandDiff:
		return simulateDiff(state, args)
	case CommandFetch:
		return simulateFetch(state)
	case CommandStash:
		return s.simulateStash(state, args)
	default:
		return fail(ErrUnknownCommand, fmt.Sprintf("Unknown command: %s", kind), "")
	}
}

// Run parses input and simulates it. It returns false when input is not a
// command line at all.
func (s *Simulator) Run(state RepositoryState, input string) (Result, bool) {
	cmd, ok := ParseCommand(input)
	if !ok {
		return Result{}, false
	}

	return s.Simulate(state, cmd.Kind, cmd.Args), true
}

func (s *Simulator) nextHash(state RepositoryState) string {
	hash := s.hash()
	for i := 1; i < maxHashAttempts && state.hashInUse(hash); i++ {
		hash = s.hash()
	}
	return hash
}

func (s *Simulator) timestamp() string {
	return s.clock().UTC().Format(time.RFC3339)
}

var defaultSimulator = NewSimulator()

// SimulateCommand runs kind through a simulator with default options.
func SimulateCommand(state RepositoryState, kind CommandKind, args []string) Result {
	return defaultSimulator.Simulate(state, kind, args)
}

func randomHash() string {
	return gonanoid.MustGenerate(hashAlphabet, hashLength)
}
