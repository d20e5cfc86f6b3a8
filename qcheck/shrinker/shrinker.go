// Package shrinker implements the minimisation loop: given a failing
// Shrinkable and the predicate it failed, repeatedly descend into the
// first still-failing child until none fails.
package shrinker

import (
	"github.com/sirupsen/logrus"

	"github.com/jfcantinz/jqwik/qcheck"
)

// Result is what a Shrink run reports back to the driver.
type Result[T any] struct {
	// Minimal is the smallest failing value found (equal to the input's
	// value if nothing smaller failed).
	Minimal T
	// Steps is how many successful descents were made.
	Steps int
}

// Shrink walks s's shrink tree, descending into the first child (in
// shrink-sequence order — ties are broken by that order, never by any
// external metric) whose value still fails pred, and stopping when no
// child of the current node fails. Termination is guaranteed because
// every descent follows the well-founded order the arbitrary that built s
// established.
//
// log, if non-nil, receives one Debug-level entry per descent; nil is
// treated as a discard logger, since this package performs no
// informational I/O on its own.
func Shrink[T any](s qcheck.Shrinkable[T], pred func(T) bool, log logrus.FieldLogger) Result[T] {
	return ShrinkBounded(s, pred, -1, log)
}

// ShrinkBounded is Shrink with a cap on the number of successful descents
// (PropertyConfig's ShrinkingBounded mode); a non-positive maxSteps means
// unbounded.
func ShrinkBounded[T any](s qcheck.Shrinkable[T], pred func(T) bool, maxSteps int, log logrus.FieldLogger) Result[T] {
	if log == nil {
		log = discardLogger()
	}
	current := s
	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		children := current.Shrinks()
		descended := false
		for _, child := range children {
			if pred(child.Value()) {
				log.WithFields(logrus.Fields{
					"step":  steps + 1,
					"value": child.Value(),
				}).Debug("shrink: descending into failing child")
				current = child
				steps++
				descended = true
				break
			}
		}
		if !descended {
			break
		}
	}
	return Result[T]{Minimal: current.Value(), Steps: steps}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
