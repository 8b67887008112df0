// File: classboard/handlers/bundle.go
package handlers

import (
	"classboard/services/board"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Board *board.Board

	// Display endpoints
	DisplayHandler       gin.HandlerFunc
	DisplayStreamHandler gin.HandlerFunc
	StatusHandler        gin.HandlerFunc
	GetViewHandler       gin.HandlerFunc
	SetViewHandler       gin.HandlerFunc
	HealthHandler        gin.HandlerFunc

	// Schedule endpoints
	ListSlotsHandler         gin.HandlerFunc
	UpdateSlotTimeHandler    gin.HandlerFunc
	TimetableHandler         gin.HandlerFunc
	SetTimetableEntryHandler gin.HandlerFunc
	ResetSettingsHandler     gin.HandlerFunc

	// Broadcast endpoints
	ActiveBroadcastHandler  gin.HandlerFunc
	PublishBroadcastHandler gin.HandlerFunc
	DismissBroadcastHandler gin.HandlerFunc
	QuickBroadcastHandler   gin.HandlerFunc
	QuickActionsHandler     gin.HandlerFunc
	ListTemplatesHandler    gin.HandlerFunc
	AddTemplateHandler      gin.HandlerFunc
	UpdateTemplateHandler   gin.HandlerFunc
	RemoveTemplateHandler   gin.HandlerFunc
	PublishTemplateHandler  gin.HandlerFunc

	// Grade endpoints
	ListSemestersHandler   gin.HandlerFunc
	AddSemesterHandler     gin.HandlerFunc
	RemoveSemesterHandler  gin.HandlerFunc
	SemesterSummaryHandler gin.HandlerFunc
	AddCourseHandler       gin.HandlerFunc
	RemoveCourseHandler    gin.HandlerFunc
	LedgerSummaryHandler   gin.HandlerFunc
	CategoriesHandler      gin.HandlerFunc

	// Advisor endpoints
	RequestAnalysisHandler gin.HandlerFunc
	GetAnalysisHandler     gin.HandlerFunc
	CloseAnalysisHandler   gin.HandlerFunc
	ChatHandler            gin.HandlerFunc
	TranscriptHandler      gin.HandlerFunc
}

// NewHandlerBundle wires every handler to the board.
func NewHandlerBundle(b *board.Board) *HandlerBundle {
	dh := &DisplayHandler{Board: b}
	sh := &ScheduleHandler{Board: b}
	bh := &BroadcastHandler{Board: b}
	gh := &GradesHandler{Board: b}
	ah := &AdvisorHandler{Board: b}

	return &HandlerBundle{
		Board: b,

		DisplayHandler:       dh.Display,
		DisplayStreamHandler: dh.Stream,
		StatusHandler:        dh.Status,
		GetViewHandler:       dh.GetView,
		SetViewHandler:       dh.SetView,
		HealthHandler:        Health,

		ListSlotsHandler:         sh.ListSlots,
		UpdateSlotTimeHandler:    sh.UpdateSlotTime,
		TimetableHandler:         sh.Timetable,
		SetTimetableEntryHandler: sh.SetTimetableEntry,
		ResetSettingsHandler:     sh.Reset,

		ActiveBroadcastHandler:  bh.Active,
		PublishBroadcastHandler: bh.Publish,
		DismissBroadcastHandler: bh.Dismiss,
		QuickBroadcastHandler:   bh.Quick,
		QuickActionsHandler:     bh.QuickActions,
		ListTemplatesHandler:    bh.ListTemplates,
		AddTemplateHandler:      bh.AddTemplate,
		UpdateTemplateHandler:   bh.UpdateTemplate,
		RemoveTemplateHandler:   bh.RemoveTemplate,
		PublishTemplateHandler:  bh.PublishTemplate,

		ListSemestersHandler:   gh.ListSemesters,
		AddSemesterHandler:     gh.AddSemester,
		RemoveSemesterHandler:  gh.RemoveSemester,
		SemesterSummaryHandler: gh.SemesterSummary,
		AddCourseHandler:       gh.AddCourse,
		RemoveCourseHandler:    gh.RemoveCourse,
		LedgerSummaryHandler:   gh.Summary,
		CategoriesHandler:      gh.Categories,

		RequestAnalysisHandler: ah.RequestAnalysis,
		GetAnalysisHandler:     ah.GetAnalysis,
		CloseAnalysisHandler:   ah.CloseAnalysis,
		ChatHandler:            ah.Chat,
		TranscriptHandler:      ah.Transcript,
	}
}
