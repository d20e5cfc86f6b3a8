package actionseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcantinz/jqwik/qcheck"
)

func incrementBy(n int) ActionFunc[int] {
	return ActionFunc[int]{Label: "increment", Func: func(m int) int { return m + n }}
}

func TestSequenceRunsAllGeneratedActions(t *testing.T) {
	remaining := 3
	generator := func(model int) (Action[int], bool) {
		if remaining == 0 {
			return nil, false
		}
		remaining--
		return incrementBy(1), true
	}
	seq := NewSequence[int](generator, 10)
	final, err := seq.Run(0)
	require.NoError(t, err)
	assert.Equal(t, 3, final)
	assert.Equal(t, Succeeded, seq.RunState())
	assert.Len(t, seq.RunActions(), 3)
}

func TestSequenceStopsAtIntendedSize(t *testing.T) {
	generator := func(model int) (Action[int], bool) {
		return incrementBy(1), true
	}
	seq := NewSequence[int](generator, 4)
	final, err := seq.Run(0)
	require.NoError(t, err)
	assert.Equal(t, 4, final)
	assert.Len(t, seq.RunActions(), 4)
}

func TestSequenceFailsOnEmptyRun(t *testing.T) {
	generator := func(model int) (Action[int], bool) { return nil, false }
	seq := NewSequence[int](generator, 5)
	_, err := seq.Run(0)
	require.Error(t, err)
	var qErr *qcheck.Error
	require.True(t, errors.As(err, &qErr))
	assert.Equal(t, qcheck.KindEmptySequence, qErr.Kind)
	assert.Equal(t, Failed, seq.RunState())
}

func TestSequenceReportsInvariantFailure(t *testing.T) {
	calls := 0
	generator := func(model int) (Action[int], bool) {
		calls++
		if calls > 5 {
			return nil, false
		}
		return incrementBy(1), true
	}
	seq := NewSequence[int](generator, 10).WithInvariant(func(m int) error {
		if m > 2 {
			return errors.New("model exceeded 2")
		}
		return nil
	})
	_, err := seq.Run(0)
	require.Error(t, err)
	var qErr *qcheck.Error
	require.True(t, errors.As(err, &qErr))
	assert.Equal(t, qcheck.KindInvariantFailed, qErr.Kind)
	assert.Equal(t, Failed, seq.RunState())
}

func TestSequenceCapturesPanicAsAssertionFailure(t *testing.T) {
	boom := ActionFunc[int]{Label: "boom", Func: func(m int) int {
		panic("kaboom")
	}}
	generator := func(model int) (Action[int], bool) { return boom, true }
	seq := NewSequence[int](generator, 1)
	_, err := seq.Run(0)
	require.Error(t, err)
	var qErr *qcheck.Error
	require.True(t, errors.As(err, &qErr))
	assert.Equal(t, qcheck.KindAssertionFailed, qErr.Kind)
}

func TestSequenceIsIdempotentOnceTerminal(t *testing.T) {
	generator := func(model int) (Action[int], bool) { return incrementBy(1), true }
	seq := NewSequence[int](generator, 2)
	first, errFirst := seq.Run(0)
	second, errSecond := seq.Run(100) // a different initial model must be ignored
	require.NoError(t, errFirst)
	require.NoError(t, errSecond)
	assert.Equal(t, first, second)
}

func TestNewSequencePanicsOnNonPositiveSize(t *testing.T) {
	assert.Panics(t, func() {
		NewSequence[int](func(int) (Action[int], bool) { return nil, false }, 0)
	})
}
