package models

import (
	"encoding/json"
	"time"
)

// Message type discriminators carried in Envelope.Type. Master→agent types
// mirror the methods the master invokes on agents; agent→master types mirror
// the ingress surface of the agent hub.
const (
	// Master → agent
	MsgRegisterSlaveAck  = "RegisterSlaveAck"
	MsgPrepareForTask    = "PrepareForTask"
	MsgAssignSlaveTask   = "AssignSlaveTask"
	MsgCancelTask        = "CancelTask"
	MsgRequestLogFlush   = "RequestLogFlush"
	MsgAdjustSystemTime  = "AdjustSystemTime"
	MsgGeneralCommand    = "GeneralCommand"
	MsgUpdateMasterState = "UpdateMasterState"

	// Agent → master
	MsgRegisterSlave          = "RegisterSlave"
	MsgSendHeartbeat          = "SendHeartbeat"
	MsgReportTaskReadiness    = "ReportTaskReadiness"
	MsgReportTaskProgress     = "ReportTaskProgress"
	MsgReportResourceUsage    = "ReportResourceUsage"
	MsgReportSlaveTaskLog     = "ReportSlaveTaskLog"
	MsgConfirmLogFlushForTask = "ConfirmLogFlushForTask"
)

// Envelope frames every message on the agent transport.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope marshals payload and wraps it with the given type.
func NewEnvelope(msgType string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: msgType, Payload: raw}, nil
}

// ────────────────────────────────────────────────────────────
// Master → agent payloads
// ────────────────────────────────────────────────────────────

// RegisterSlaveAck answers a RegisterSlave message with the agent's token
// pair and the master's identity.
type RegisterSlaveAck struct {
	Node            string    `json:"node"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	ExpiresAt       int64     `json:"expires_at"`
	MasterTimestamp time.Time `json:"master_timestamp"`
	MasterVersion   string    `json:"master_version"`
	EnvironmentName string    `json:"environment_name"`
}

// PrepareForTask is step 1 of the two-phase dispatch: the agent checks
// whether it can take the task and answers with ReportTaskReadiness.
type PrepareForTask struct {
	ActionID         string        `json:"action_id"`
	TaskID           string        `json:"task_id"`
	ExpectedTaskType SlaveTaskType `json:"expected_task_type"`
	PrepParamsJSON   string        `json:"prep_params_json,omitempty"`
}

// AssignSlaveTask dispatches the task after a positive readiness report.
type AssignSlaveTask struct {
	ActionID   string        `json:"action_id"`
	TaskID     string        `json:"task_id"`
	TaskType   SlaveTaskType `json:"task_type"`
	ParamsJSON string        `json:"params_json"`
	TimeoutSec int           `json:"timeout_sec,omitempty"`
}

// CancelTask asks the agent to abort a running task.
type CancelTask struct {
	ActionID string `json:"action_id"`
	TaskID   string `json:"task_id"`
	Reason   string `json:"reason,omitempty"`
}

// RequestLogFlush starts the flush barrier for an action: the agent must
// push any buffered log lines and answer with ConfirmLogFlushForTask.
type RequestLogFlush struct {
	ActionID string `json:"action_id"`
}

// AdjustSystemTime pushes the master's authoritative clock to an agent.
type AdjustSystemTime struct {
	AuthoritativeUTC time.Time `json:"authoritative_utc"`
	ForceAdjustment  bool      `json:"force_adjustment"`
}

// GeneralCommand is an out-of-band operation outside the task protocol.
type GeneralCommand struct {
	CommandType string `json:"command_type"`
	Payload     string `json:"payload,omitempty"`
	TimeoutSec  int    `json:"timeout_sec,omitempty"`
}

// UpdateMasterState pushes the master's context to an agent after
// registration or a master-side change.
type UpdateMasterState struct {
	MasterTimestamp     time.Time `json:"master_timestamp"`
	ExpectedAgentStatus string    `json:"expected_agent_status"`
	ActiveManifest      string    `json:"active_manifest,omitempty"`
	AssignedOperations  []string  `json:"assigned_operations,omitempty"`
	MasterVersion       string    `json:"master_version"`
	ForceReregister     bool      `json:"force_reregister"`
}

// ────────────────────────────────────────────────────────────
// Agent → master payloads
// ────────────────────────────────────────────────────────────

// RegisterSlave is the first message an agent sends after connecting.
type RegisterSlave struct {
	Name               string `json:"name"`
	Version            string `json:"version"`
	OS                 string `json:"os"`
	MaxConcurrentTasks int    `json:"max_concurrent_tasks"`
	Hostname           string `json:"hostname"`
}

// ReportTaskReadiness answers a PrepareForTask message.
type ReportTaskReadiness struct {
	ActionID string `json:"action_id"`
	TaskID   string `json:"task_id"`
	Ready    bool   `json:"ready"`
	Reason   string `json:"reason,omitempty"`
}

// ReportTaskProgress carries task progress and, for terminal statuses, the
// final result payload.
type ReportTaskProgress struct {
	ActionID   string    `json:"action_id"`
	TaskID     string    `json:"task_id"`
	Status     string    `json:"status"`
	Percent    *int      `json:"percent,omitempty"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp_utc"`
	ResultJSON string    `json:"result_json,omitempty"`
}

// ReportSlaveTaskLog is one contextual log line emitted during a task.
type ReportSlaveTaskLog struct {
	ActionID  string    `json:"action_id"`
	TaskID    string    `json:"task_id"`
	Node      string    `json:"node"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp_utc"`
}

// ConfirmLogFlushForTask acknowledges a RequestLogFlush for one node.
type ConfirmLogFlushForTask struct {
	ActionID string `json:"action_id"`
	Node     string `json:"node"`
}
