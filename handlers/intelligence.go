package handlers

import (
	"net/http"
	"strings"

	"classboard/models"
	"classboard/services/board"
	"classboard/utils"

	"github.com/gin-gonic/gin"
)

type AdvisorHandler struct {
	Board *board.Board
}

// RequestAnalysis generates a full report over every course in the ledger.
// Generation failures still answer 200 with the fallback text.
func (h *AdvisorHandler) RequestAnalysis(c *gin.Context) {
	courses := h.Board.Ledger.AllCourses()
	if len(courses) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No courses to analyse", "add at least one course first")
		return
	}
	done, err := h.Board.Advisor.BeginAnalysis()
	if err != nil {
		respondError(c, "Analysis already running", err)
		return
	}
	defer done()

	text := h.Board.Advisor.RequestFullAnalysis(c.Request.Context(), courses)
	c.JSON(http.StatusOK, models.AnalysisResponse{Analysis: text})
}

func (h *AdvisorHandler) GetAnalysis(c *gin.Context) {
	text, ok := h.Board.Advisor.Analysis()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No analysis available", "")
		return
	}
	c.JSON(http.StatusOK, models.AnalysisResponse{Analysis: text})
}

func (h *AdvisorHandler) CloseAnalysis(c *gin.Context) {
	h.Board.Advisor.ClearAnalysis()
	c.Status(http.StatusNoContent)
}

// Chat answers one question against the current grades.
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "query must not be blank")
		return
	}
	done, err := h.Board.Advisor.BeginChat()
	if err != nil {
		respondError(c, "Chat reply already pending", err)
		return
	}
	defer done()

	reply := h.Board.Advisor.Chat(c.Request.Context(), req.Query, h.Board.Ledger.AllCourses())
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply, Transcript: h.Board.Advisor.Transcript()})
}

func (h *AdvisorHandler) Transcript(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transcript": h.Board.Advisor.Transcript()})
}
