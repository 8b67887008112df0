package handlers

import (
	"errors"
	"net/http"

	"classboard/services/board"
	"classboard/services/broadcast"
	"classboard/services/grades"
	ai "classboard/services/intelligence"
	"classboard/services/schedule"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service sentinels to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, schedule.ErrSlotNotFound),
		errors.Is(err, grades.ErrUnknownSemester),
		errors.Is(err, broadcast.ErrTemplateNotFound),
		errors.Is(err, broadcast.ErrUnknownQuickAction):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrInvalidTimeRange),
		errors.Is(err, schedule.ErrInvalidClock),
		errors.Is(err, board.ErrUnknownView),
		errors.Is(err, board.ErrResetNotConfirmed):
		return http.StatusBadRequest
	case errors.Is(err, ai.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the mapped status.
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
	}
	utils.JSONError(c, status, message, err.Error())
}

// bindJSON binds the body and writes a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return false
	}
	return true
}
