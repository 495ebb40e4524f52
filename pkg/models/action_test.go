package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterActionComplete(t *testing.T) {
	t.Run("terminal status is sticky", func(t *testing.T) {
		a := NewMasterAction("op-1", OpVerifyConfiguration, nil)
		require.True(t, a.Complete(StatusSucceeded))

		assert.False(t, a.Complete(StatusFailed))
		assert.Equal(t, StatusSucceeded, a.Status())
	})

	t.Run("sets progress 100 and end time", func(t *testing.T) {
		a := NewMasterAction("op-2", OpVerifyConfiguration, nil)
		a.UpdateProgress(40)
		a.Complete(StatusFailed)

		assert.Equal(t, 100, a.Progress())
		require.NotNil(t, a.EndedAt())
	})

	t.Run("end time unset before terminal", func(t *testing.T) {
		a := NewMasterAction("op-3", OpVerifyConfiguration, nil)
		assert.Nil(t, a.EndedAt())
	})
}

func TestMasterActionProgressMonotone(t *testing.T) {
	a := NewMasterAction("op-4", OpTestOrchestration, nil)

	a.UpdateProgress(30)
	a.UpdateProgress(10) // lower value ignored
	assert.Equal(t, 30, a.Progress())

	a.UpdateProgress(250)
	assert.Equal(t, 100, a.Progress())
}

func TestMasterActionProgressFrozenAfterTerminal(t *testing.T) {
	a := NewMasterAction("op-5", OpTestOrchestration, nil)
	a.Complete(StatusCancelled)
	a.UpdateProgress(10)
	assert.Equal(t, 100, a.Progress())
}

func TestLogRing(t *testing.T) {
	t.Run("keeps order below capacity", func(t *testing.T) {
		r := NewLogRing(4)
		r.Append("a")
		r.Append("b")
		assert.Equal(t, []string{"a", "b"}, r.Lines())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("evicts oldest at capacity", func(t *testing.T) {
		r := NewLogRing(3)
		for i := 0; i < 5; i++ {
			r.Append(fmt.Sprintf("line-%d", i))
		}
		assert.Equal(t, []string{"line-2", "line-3", "line-4"}, r.Lines())
		assert.Equal(t, 3, r.Len())
	})
}
