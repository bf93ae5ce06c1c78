package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"geolens/internal/agent"
	"geolens/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *AgentHandler) RunContrast(c *gin.Context) {
	var req ContrastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sid := sessionID(c)
	snap, err := session.BuildSnapshot(c.Request.Context(), h.sessions, sid)
	if err != nil {
		slog.Error("error building snapshot", "error", err, "session_id", sid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session store error"})
		return
	}

	if !snap.HasData() {
		c.JSON(http.StatusConflict, gin.H{"error": "Run at least one agent before requesting a contrast"})
		return
	}

	narrative, err := h.contrast.Run(c.Request.Context(), req.Location, snap)
	if errors.Is(err, agent.ErrNoSources) {
		c.JSON(http.StatusConflict, gin.H{"error": "Run at least one agent before requesting a contrast"})
		return
	}
	if err != nil {
		slog.Error("contrast agent failed", "error", err, "location", req.Location)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Contrast analysis failed"})
		return
	}

	if h.archive != nil {
		if _, err := h.archive.SaveContrast(sid, req.Location, narrative); err != nil {
			slog.Error("error archiving contrast run", "error", err, "session_id", sid)
		}
	}

	c.JSON(http.StatusOK, ContrastResponse{Location: req.Location, Narrative: narrative})
}

func (h *AgentHandler) GetRuns(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Run archive not configured"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	runs, err := h.archive.RecentRuns(limit)
	if err != nil {
		slog.Error("error fetching runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, runsResponse(runs, limit))
}
