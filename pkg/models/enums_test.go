package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTaskStatusTerminal(t *testing.T) {
	terminal := []NodeTaskStatus{
		TaskNotReadyForTask, TaskReadinessCheckTimedOut, TaskSucceeded,
		TaskFailed, TaskCancelled, TaskNodeOfflineDuringTask,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}

	nonTerminal := []NodeTaskStatus{
		TaskReadinessCheckSent, TaskReadyToExecute, TaskDispatched,
		TaskInProgress, TaskCancelling,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestParseNodeTaskStatus(t *testing.T) {
	t.Run("round-trips every known value", func(t *testing.T) {
		for _, s := range []NodeTaskStatus{
			TaskReadinessCheckSent, TaskReadyToExecute, TaskNotReadyForTask,
			TaskReadinessCheckTimedOut, TaskDispatched, TaskInProgress,
			TaskSucceeded, TaskFailed, TaskCancelling, TaskCancelled,
			TaskNodeOfflineDuringTask,
		} {
			parsed, err := ParseNodeTaskStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := ParseNodeTaskStatus("Exploded")
		require.Error(t, err)
	})
}

func TestOperationStatusTerminal(t *testing.T) {
	assert.True(t, StatusSucceeded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAwaitingNodeReadiness.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.False(t, StatusCancelling.IsTerminal())
}
