// Package actionseq implements a stateful action-sequence runner: a
// mutable Sequence[M] built from an ActionGenerator[M], executed against a
// user model with invariants checked after every step. A run that is
// already terminal short-circuits to the stored final model; exhaustion
// of the action generator ends the run silently rather than erroring; an
// empty result is itself an error, raised only after the loop finishes.
package actionseq

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jfcantinz/jqwik/qcheck"
)

// Action mutates a model of type M and reports the model that results.
type Action[M any] interface {
	// Run executes the action, producing a new model value.
	Run(model M) M
	// String gives a short human-readable description, used to compose
	// the failure trace.
	String() string
}

// ActionFunc adapts a plain function plus a label into an Action.
type ActionFunc[M any] struct {
	Label string
	Func  func(M) M
}

func (a ActionFunc[M]) Run(model M) M { return a.Func(model) }
func (a ActionFunc[M]) String() string {
	if a.Label != "" {
		return a.Label
	}
	return "action"
}

// Invariant checks a model after every action; a non-nil error becomes an
// InvariantFailedError with the full trace.
type Invariant[M any] func(model M) error

// ActionGenerator supplies the next action given the current model. It
// reports ok=false when it has no more actions to offer, which ends the
// run without error.
type ActionGenerator[M any] func(model M) (Action[M], bool)

// RunState is one of NOT_RUN -> RUNNING -> {SUCCEEDED, FAILED}.
type RunState int

const (
	NotRun RunState = iota
	Running
	Succeeded
	Failed
)

func (s RunState) String() string {
	switch s {
	case NotRun:
		return "NOT_RUN"
	case Running:
		return "RUNNING"
	case Succeeded:
		return "SUCCEEDED"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Sequence is a mutable runner: NewSequence(generator, intendedSize),
// optionally chained with WithInvariant, then Run(initialModel).
type Sequence[M any] struct {
	mu            sync.Mutex
	generator     ActionGenerator[M]
	intendedSize  int
	actions       []Action[M]
	invariants    []Invariant[M]
	state         RunState
	currentModel  M
	terminalErr   error
	log           logrus.FieldLogger
}

// NewSequence builds a Sequence with the given intended length (>= 1;
// this is a configuration-time error, not a draw-time one, so an invalid
// size panics here rather than surfacing later).
func NewSequence[M any](generator ActionGenerator[M], intendedSize int) *Sequence[M] {
	if intendedSize < 1 {
		panic("actionseq.NewSequence: intended size must be >= 1")
	}
	return &Sequence[M]{generator: generator, intendedSize: intendedSize, log: discardLogger()}
}

// WithLogger attaches a structured logger receiving Debug-level entries
// for every executed action (nil-safe: defaults to a discard logger).
func (s *Sequence[M]) WithLogger(log logrus.FieldLogger) *Sequence[M] {
	if log != nil {
		s.log = log
	}
	return s
}

// WithInvariant registers inv to be checked after every action and
// returns the receiver for chaining.
func (s *Sequence[M]) WithInvariant(inv Invariant[M]) *Sequence[M] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invariants = append(s.invariants, inv)
	return s
}

// RunActions returns the actions actually executed so far.
func (s *Sequence[M]) RunActions() []Action[M] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Action[M](nil), s.actions...)
}

// RunState reports the current state.
func (s *Sequence[M]) RunState() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FinalModel returns the model as of the last executed action (or the
// initial model, if none ran yet).
func (s *Sequence[M]) FinalModel() M {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentModel
}

// Run executes the sequence against initialModel and returns the final
// model, or the *qcheck.Error describing why the run failed. Callers
// switch on qcheck.Error.Kind rather than a type hierarchy to distinguish
// an invariant violation from an action failure.
//
// Idempotent once terminal: a second call returns the stored result
// without re-executing anything, and without even looking at the model it
// was passed (the stored error, if any, is returned again too).
func (s *Sequence[M]) Run(initialModel M) (M, error) {
	s.mu.Lock()
	if s.state != NotRun {
		model, err := s.currentModel, s.terminalErr
		s.mu.Unlock()
		return model, err
	}
	s.state = Running
	s.currentModel = initialModel
	s.mu.Unlock()

	for i := 0; i < s.intendedSize; i++ {
		action, ok := s.generator(s.currentModel)
		if !ok {
			break
		}
		s.mu.Lock()
		s.actions = append(s.actions, action)
		s.mu.Unlock()

		s.log.WithFields(logrus.Fields{"step": i, "action": action.String()}).Debug("actionseq: running action")

		next, runErr := s.runOne(action)
		if runErr != nil {
			s.mu.Lock()
			s.state = Failed
			s.terminalErr = qcheck.WrapError(qcheck.KindAssertionFailed, runErr, "%s", s.errorMessage("Run", runErr.Error()))
			err := s.terminalErr
			model := s.currentModel
			s.mu.Unlock()
			return model, err
		}
		s.mu.Lock()
		s.currentModel = next
		s.mu.Unlock()

		if err := s.checkInvariants(); err != nil {
			s.mu.Lock()
			s.state = Failed
			s.terminalErr = qcheck.WrapError(qcheck.KindInvariantFailed, err, "%s", s.errorMessage("Invariant", err.Error()))
			wrapped := s.terminalErr
			model := s.currentModel
			s.mu.Unlock()
			return model, wrapped
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.actions) == 0 {
		s.state = Failed
		s.terminalErr = qcheck.NewError(qcheck.KindEmptySequence, "could not generate a single action; at least 1 is required")
		return s.currentModel, s.terminalErr
	}
	s.state = Succeeded
	return s.currentModel, nil
}

// runOne executes action, converting any panic into a plain error the
// caller wraps as an AssertionFailedError.
func (s *Sequence[M]) runOne(action Action[M]) (result M, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return action.Run(s.currentModel), nil
}

func (s *Sequence[M]) checkInvariants() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	for _, inv := range s.invariants {
		if e := inv(s.currentModel); e != nil {
			return e
		}
	}
	return nil
}

func (s *Sequence[M]) errorMessage(name string, cause string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed after following actions:\n", name)
	for _, a := range s.actions {
		fmt.Fprintf(&b, "    %s\n", a.String())
	}
	fmt.Fprintf(&b, "  final currentModel: %v\n%s", s.currentModel, cause)
	return b.String()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
