package handlers

import (
	"io"
	"net/http"

	"classboard/models"
	"classboard/services/board"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DisplayHandler struct {
	Board *board.Board
}

// Display returns the frame at the last clock tick.
func (h *DisplayHandler) Display(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Current())
}

// Stream pushes one "frame" event per tick until the client goes away.
func (h *DisplayHandler) Stream(c *gin.Context) {
	logger := getLogger(c)
	frames, unsubscribe := h.Board.Subscribe()
	defer unsubscribe()

	logger.Debug("Display stream opened")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("frame", h.Board.Current())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case frame, ok := <-frames:
			if !ok {
				return false
			}
			c.SSEvent("frame", frame)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	logger.Debug("Display stream closed", zap.Error(c.Request.Context().Err()))
}

// Status resolves the schedule for the last tick, ignoring any broadcast.
func (h *DisplayHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Status())
}

func (h *DisplayHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.View())
}

func (h *DisplayHandler) SetView(c *gin.Context) {
	var req models.View
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.Board.SetView(req)
	if err != nil {
		respondError(c, "Failed to switch view", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Health reports liveness plus the last backend check.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Hi, I'm classboard",
		"backends": utils.GetHealthStatus(),
	})
}
