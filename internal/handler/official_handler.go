package handler

import (
	"log/slog"
	"net/http"

	"geolens/internal/model"
	"geolens/pkg/official"

	"github.com/gin-gonic/gin"
)

func (h *AgentHandler) RunOfficial(c *gin.Context) {
	var req OfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ind, err := model.ParseIndicator(req.Indicator)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Unknown indicator",
			"indicators": model.Indicators,
		})
		return
	}

	if req.Period < official.MinPeriod || req.Period > official.MaxPeriod {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be between 1 and 10"})
		return
	}

	res := h.official.Run(c.Request.Context(), req.Location, ind, req.Period)

	sid := sessionID(c)
	if err := h.sessions.SaveOfficial(c.Request.Context(), sid, res); err != nil {
		slog.Error("error saving official output to session", "error", err, "session_id", sid)
	}
	if h.archive != nil {
		if _, err := h.archive.SaveOfficialRun(sid, res); err != nil {
			slog.Error("error archiving official run", "error", err, "session_id", sid)
		}
	}

	c.JSON(http.StatusOK, officialResponse(res))
}
