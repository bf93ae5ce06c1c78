package model

import "time"

// AgentRun is one archived agent invocation.
type AgentRun struct {
	ID        int64
	SessionID string
	Agent     string
	Location  string
	Summary   string
	CreatedAt time.Time
}

const (
	AgentNews     = "news"
	AgentUploads  = "uploads"
	AgentOfficial = "official"
	AgentContrast = "contrast"
)
