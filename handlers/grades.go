package handlers

import (
	"net/http"

	"classboard/models"
	"classboard/services/board"
	"classboard/services/grades"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GradesHandler struct {
	Board *board.Board
}

func (h *GradesHandler) ListSemesters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"semesters": h.Board.Ledger.Semesters()})
}

func (h *GradesHandler) AddSemester(c *gin.Context) {
	var req models.SemesterRequest
	if !bindJSON(c, &req) {
		return
	}
	sem := h.Board.Ledger.AddSemester(c.Request.Context(), req.Title)
	getLogger(c).Info("Semester added", zap.String("semesterID", sem.ID))
	c.JSON(http.StatusCreated, gin.H{"semester": sem})
}

// RemoveSemester is idempotent: unknown ids still answer 204.
func (h *GradesHandler) RemoveSemester(c *gin.Context) {
	h.Board.RemoveSemester(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SemesterSummary returns the calculator header figures for one semester.
func (h *GradesHandler) SemesterSummary(c *gin.Context) {
	sem, err := h.Board.Ledger.Semester(c.Param("id"))
	if err != nil {
		respondError(c, "Semester not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": grades.SummarizeSemester(sem),
		"courses": sem.Courses,
	})
}

func (h *GradesHandler) AddCourse(c *gin.Context) {
	var req models.NewCourse
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.Board.Ledger.AddCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to add course", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

func (h *GradesHandler) RemoveCourse(c *gin.Context) {
	h.Board.Ledger.RemoveCourse(c.Request.Context(), c.Param("id"), c.Param("courseId"))
	c.Status(http.StatusNoContent)
}

// Summary is the overview dashboard, recomputed on every read.
func (h *GradesHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, grades.Summarize(h.Board.Ledger.Semesters()))
}

func (h *GradesHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": grades.Categories})
}
