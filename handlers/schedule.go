package handlers

import (
	"net/http"
	"strconv"

	"classboard/models"
	"classboard/services/board"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Board *board.Board
}

func (h *ScheduleHandler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Board.Schedule.ListSlots()})
}

// UpdateSlotTime edits a slot's start and/or end.
func (h *ScheduleHandler) UpdateSlotTime(c *gin.Context) {
	var req models.UpdateSlotTimeRequest
	if !bindJSON(c, &req) {
		return
	}
	slot, err := h.Board.Schedule.SetSlotTime(c.Request.Context(), c.Param("id"), req.Start, req.End)
	if err != nil {
		respondError(c, "Failed to update slot", err)
		return
	}
	getLogger(c).Info("Slot updated", zap.String("slot", slot.ID), zap.String("start", slot.Start), zap.String("end", slot.End))
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

func (h *ScheduleHandler) Timetable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timetable": h.Board.Schedule.Timetable()})
}

// SetTimetableEntry writes one cell. Days run 0 (Sunday) to 6.
func (h *ScheduleHandler) SetTimetableEntry(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid day", "day must be an integer between 0 and 6")
		return
	}
	var req models.TimetableEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	slotID := c.Param("slotId")
	h.Board.Schedule.SetTimetableEntry(c.Request.Context(), day, slotID, req.Subject)
	c.JSON(http.StatusOK, gin.H{"day": day, "slotId": slotID, "subject": req.Subject})
}

// Reset restores every default. The body must carry {"confirm": true}.
func (h *ScheduleHandler) Reset(c *gin.Context) {
	var req models.ResetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Board.Reset(c.Request.Context(), req.Confirm); err != nil {
		respondError(c, "Reset refused", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All settings restored to defaults"})
}
