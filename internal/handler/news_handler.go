package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *AgentHandler) RunNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date is after end_date"})
		return
	}

	res, err := h.news.Run(c.Request.Context(), req.Location, req.Keywords, start, end)
	if err != nil {
		slog.Error("news agent failed", "error", err, "location", req.Location)
		c.JSON(http.StatusBadGateway, gin.H{"error": "News agent failed"})
		return
	}

	sid := sessionID(c)
	if err := h.sessions.SaveNews(c.Request.Context(), sid, res); err != nil {
		slog.Error("error saving news output to session", "error", err, "session_id", sid)
	}
	if h.archive != nil {
		if _, err := h.archive.SaveNewsRun(sid, res); err != nil {
			slog.Error("error archiving news run", "error", err, "session_id", sid)
		}
	}

	c.JSON(http.StatusOK, newsResponse(res))
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
