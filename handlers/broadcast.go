package handlers

import (
	"net/http"

	"classboard/models"
	"classboard/services/board"
	"classboard/services/broadcast"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BroadcastHandler struct {
	Board *board.Board
}

// Active returns the broadcast on screen, or null.
func (h *BroadcastHandler) Active(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"broadcast": h.Board.Broadcast.Active()})
}

// Publish puts an inline message on screen.
func (h *BroadcastHandler) Publish(c *gin.Context) {
	var req models.BroadcastRequest
	if !bindJSON(c, &req) {
		return
	}
	t := h.Board.Broadcast.QuickAction(req.Title, req.Subtitle)
	getLogger(c).Info("Broadcast published", zap.String("title", t.Title))
	c.JSON(http.StatusOK, gin.H{"broadcast": t})
}

func (h *BroadcastHandler) Dismiss(c *gin.Context) {
	h.Board.Broadcast.Dismiss()
	c.Status(http.StatusNoContent)
}

// Quick publishes one of the preset quick actions by label.
func (h *BroadcastHandler) Quick(c *gin.Context) {
	var req models.QuickActionRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Board.Broadcast.PublishPreset(req.Label)
	if err != nil {
		respondError(c, "Failed to publish quick action", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"broadcast": t})
}

func (h *BroadcastHandler) QuickActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quickActions": broadcast.QuickActions()})
}

func (h *BroadcastHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.Board.Broadcast.Templates()})
}

func (h *BroadcastHandler) AddTemplate(c *gin.Context) {
	var req models.TemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": h.Board.Broadcast.AddTemplate(req)})
}

func (h *BroadcastHandler) UpdateTemplate(c *gin.Context) {
	var req models.TemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.Board.Broadcast.UpdateTemplate(c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update template", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": t})
}

func (h *BroadcastHandler) RemoveTemplate(c *gin.Context) {
	if err := h.Board.Broadcast.RemoveTemplate(c.Param("id")); err != nil {
		respondError(c, "Failed to remove template", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PublishTemplate puts a copy of a saved template on screen.
func (h *BroadcastHandler) PublishTemplate(c *gin.Context) {
	t, err := h.Board.Broadcast.PublishTemplate(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to publish template", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"broadcast": t})
}
