package models

import "time"

// AgentMeta is the static information an agent reports at registration.
type AgentMeta struct {
	Version            string `json:"version"`
	OS                 string `json:"os"`
	MaxConcurrentTasks int    `json:"max_concurrent_tasks"`
	Hostname           string `json:"hostname"`
}

// HeartbeatSnapshot is the periodic liveness report from an agent.
type HeartbeatSnapshot struct {
	Node         string    `json:"node"`
	Timestamp    time.Time `json:"timestamp_utc"`
	ActiveTasks  int       `json:"active_tasks"`
	AgentVersion string    `json:"agent_version,omitempty"`
}

// ResourceUsage is the periodic resource report from an agent.
type ResourceUsage struct {
	Node        string    `json:"node"`
	Timestamp   time.Time `json:"timestamp_utc"`
	CPUPercent  float64   `json:"cpu_percent"`
	MemoryBytes uint64    `json:"memory_bytes"`
	DiskFreeMB  uint64    `json:"disk_free_mb"`
}

// AgentState is the master's view of one connected agent.
type AgentState struct {
	Node          string            `json:"node"`
	Connectivity  ConnectivityState `json:"connectivity"`
	Meta          AgentMeta         `json:"meta"`
	LastHeartbeat time.Time         `json:"last_heartbeat"`
	RegisteredAt  time.Time         `json:"registered_at"`
	Resources     *ResourceUsage    `json:"resources,omitempty"`
}
