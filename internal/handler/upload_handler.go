package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"geolens/internal/agent"

	"github.com/gin-gonic/gin"
)

// RunUploads accepts one multipart batch: images[], audios[], texts[] file
// groups plus "location" and a combined "coordinates" value. Audio files are
// spooled to a temp dir because transcription reads from disk.
func (h *AgentHandler) RunUploads(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	location := c.PostForm("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	batch := agent.UploadBatch{Coordinates: c.PostForm("coordinates")}

	for _, fh := range form.File["images"] {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image " + fh.Filename})
			return
		}
		batch.Images = append(batch.Images, agent.Upload{Name: fh.Filename, Data: data})
	}

	for _, fh := range form.File["texts"] {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded text " + fh.Filename})
			return
		}
		batch.Texts = append(batch.Texts, agent.Upload{Name: fh.Filename, Data: data})
	}

	if len(form.File["audios"]) > 0 {
		tempDir, err := os.MkdirTemp("", "geolens-audio-")
		if err != nil {
			slog.Error("error creating temp dir for audio uploads", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store uploaded audio"})
			return
		}
		defer os.RemoveAll(tempDir)

		for _, fh := range form.File["audios"] {
			path := filepath.Join(tempDir, filepath.Base(fh.Filename))
			if err := c.SaveUploadedFile(fh, path); err != nil {
				slog.Error("error saving uploaded audio", "error", err, "file", fh.Filename)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store uploaded audio"})
				return
			}
			batch.Audios = append(batch.Audios, agent.Upload{Name: fh.Filename, Path: path})
		}
	}

	res, err := h.uploads.Run(c.Request.Context(), location, batch)
	if err != nil {
		slog.Error("upload agent failed", "error", err, "location", location)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload processing failed"})
		return
	}

	sid := sessionID(c)
	if err := h.sessions.SaveUploads(c.Request.Context(), sid, res); err != nil {
		slog.Error("error saving upload output to session", "error", err, "session_id", sid)
	}
	if h.archive != nil {
		if _, err := h.archive.SaveUploadRun(sid, res); err != nil {
			slog.Error("error archiving upload run", "error", err, "session_id", sid)
		}
	}

	c.JSON(http.StatusOK, uploadResponse(res))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
