// Package models defines the core domain types of the SiteKeeper master:
// master actions, stages, node-actions, per-node tasks, agent state, and the
// enumerations that cross the wire between master and agents.
package models

import "fmt"

// OperationStatus is the overall status of a master action or node-action.
// Values are string-serialized on the wire; do not reorder or rename.
type OperationStatus string

const (
	StatusPending               OperationStatus = "Pending"
	StatusAwaitingNodeReadiness OperationStatus = "AwaitingNodeReadiness"
	StatusRunning               OperationStatus = "Running"
	StatusCancelling            OperationStatus = "Cancelling"
	StatusSucceeded             OperationStatus = "Succeeded"
	StatusFailed                OperationStatus = "Failed"
	StatusCancelled             OperationStatus = "Cancelled"
)

// IsTerminal reports whether the status is one of the terminal values.
func (s OperationStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// NodeTaskStatus is the per-node sub-status of a task within a node-action.
type NodeTaskStatus string

const (
	TaskReadinessCheckSent     NodeTaskStatus = "ReadinessCheckSent"
	TaskReadyToExecute         NodeTaskStatus = "ReadyToExecute"
	TaskNotReadyForTask        NodeTaskStatus = "NotReadyForTask"
	TaskReadinessCheckTimedOut NodeTaskStatus = "ReadinessCheckTimedOut"
	TaskDispatched             NodeTaskStatus = "TaskDispatched"
	TaskInProgress             NodeTaskStatus = "InProgress"
	TaskSucceeded              NodeTaskStatus = "Succeeded"
	TaskFailed                 NodeTaskStatus = "Failed"
	TaskCancelling             NodeTaskStatus = "Cancelling"
	TaskCancelled              NodeTaskStatus = "Cancelled"
	TaskNodeOfflineDuringTask  NodeTaskStatus = "NodeOfflineDuringTask"
)

// IsTerminal reports whether the sub-status is terminal. Terminal statuses
// are sticky: once a task reaches one, later updates are ignored.
func (s NodeTaskStatus) IsTerminal() bool {
	switch s {
	case TaskNotReadyForTask, TaskReadinessCheckTimedOut, TaskSucceeded,
		TaskFailed, TaskCancelled, TaskNodeOfflineDuringTask:
		return true
	}
	return false
}

// ParseNodeTaskStatus parses a wire string into a NodeTaskStatus.
func ParseNodeTaskStatus(s string) (NodeTaskStatus, error) {
	switch st := NodeTaskStatus(s); st {
	case TaskReadinessCheckSent, TaskReadyToExecute, TaskNotReadyForTask,
		TaskReadinessCheckTimedOut, TaskDispatched, TaskInProgress,
		TaskSucceeded, TaskFailed, TaskCancelling, TaskCancelled,
		TaskNodeOfflineDuringTask:
		return st, nil
	}
	return "", fmt.Errorf("unknown node task status %q", s)
}

// SlaveTaskType identifies the handler an agent uses to execute a task.
type SlaveTaskType string

const (
	TaskTypeVerifyConfiguration SlaveTaskType = "VerifyConfiguration"
	TaskTypeDeployPackages      SlaveTaskType = "DeployPackages"
	TaskTypeStartServices       SlaveTaskType = "StartServices"
	TaskTypeStopServices        SlaveTaskType = "StopServices"
	TaskTypeTestOrchestration   SlaveTaskType = "TestOrchestration"
)

// OperationType identifies a registered master workflow.
type OperationType string

const (
	OpVerifyConfiguration OperationType = "VerifyConfiguration"
	OpTestOrchestration   OperationType = "TestOrchestration"
)

// LogLevel is the severity of a log line exchanged with agents.
type LogLevel string

const (
	LevelTrace       LogLevel = "Trace"
	LevelDebug       LogLevel = "Debug"
	LevelInformation LogLevel = "Information"
	LevelWarning     LogLevel = "Warning"
	LevelError       LogLevel = "Error"
	LevelCritical    LogLevel = "Critical"
)

// ConnectivityState describes the master's view of an agent connection.
type ConnectivityState string

const (
	AgentOnline      ConnectivityState = "Online"
	AgentOffline     ConnectivityState = "Offline"
	AgentUnreachable ConnectivityState = "Unreachable"
)
