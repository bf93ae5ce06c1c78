package handler

import (
	"context"
	"net/http"
	"time"

	"geolens/internal/agent"
	"geolens/internal/model"
	"geolens/internal/session"

	"github.com/gin-gonic/gin"
)

type NewsRunner interface {
	Run(ctx context.Context, location, keywords string, start, end *time.Time) (*model.NewsResult, error)
}

type UploadRunner interface {
	Run(ctx context.Context, location string, batch agent.UploadBatch) (*model.UploadResult, error)
}

type OfficialRunner interface {
	Run(ctx context.Context, location string, ind model.Indicator, period int) *model.OfficialResult
}

type ContrastRunner interface {
	Run(ctx context.Context, location string, snap model.Snapshot) (string, error)
}

type RunArchive interface {
	SaveNewsRun(sessionID string, res *model.NewsResult) (int64, error)
	SaveUploadRun(sessionID string, res *model.UploadResult) (int64, error)
	SaveOfficialRun(sessionID string, res *model.OfficialResult) (int64, error)
	SaveContrast(sessionID, location, narrative string) (int64, error)
	RecentRuns(limit int) ([]model.AgentRun, error)
}

// AgentHandler exposes the four agents over HTTP. The archive is nil when no
// database is configured.
type AgentHandler struct {
	news     NewsRunner
	uploads  UploadRunner
	official OfficialRunner
	contrast ContrastRunner
	sessions session.Store
	archive  RunArchive
}

func NewAgentHandler(news NewsRunner, uploads UploadRunner, official OfficialRunner, contrast ContrastRunner, sessions session.Store, archive RunArchive) *AgentHandler {
	return &AgentHandler{
		news:     news,
		uploads:  uploads,
		official: official,
		contrast: contrast,
		sessions: sessions,
		archive:  archive,
	}
}

const defaultSessionID = "default"

func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return defaultSessionID
}

func (h *AgentHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
