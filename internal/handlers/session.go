package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lingua-exam-backend/internal/services"
	"lingua-exam-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
	hub            *ws.Hub
}

func NewSessionHandler(sessionService *services.SessionService, hub *ws.Hub) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, hub: hub}
}

type RecordResponsesRequest struct {
	UserID    string                   `json:"user_id" binding:"required"`
	ExamID    uint                     `json:"exam_id" binding:"required"`
	SessionID *uint                    `json:"session_id"`
	Responses []services.ResponseInput `json:"responses" binding:"required,min=1"`
}

// RecordResponses godoc
// @Summary      Record a batch of scored responses
// @Description  Scores each response against its stored question and persists one durable row per item. Items that fail lookup or scoring are skipped, not fatal. The session is created lazily when no session_id is supplied.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body RecordResponsesRequest true "Batch of responses"
// @Success      200 {object} services.BatchResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/responses [post]
func (h *SessionHandler) RecordResponses(c *gin.Context) {
	var req RecordResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	batch, err := h.sessionService.RecordResponses(req.UserID, req.ExamID, req.SessionID, req.Responses)
	if err != nil {
		c.JSON(sessionErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(batch.SessionID, ws.WSMessage{
		Type: "response_recorded",
		Data: gin.H{"session_id": batch.SessionID, "recorded": batch.Recorded, "skipped": batch.Skipped},
	})

	c.JSON(http.StatusOK, batch)
}

// CompleteSession godoc
// @Summary      Finalize an exam session
// @Description  Aggregates the recorded responses, writes the overall percentage and counts, and marks the session completed.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path int true "Session ID"
// @Param        user_id query string false "Learner ID for scoping"
// @Success      200 {object} ExamSession
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/complete [post]
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.CompleteSession(uint(sessionID), c.Query("user_id"))
	if err != nil {
		c.JSON(sessionErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(session.ID, ws.WSMessage{
		Type: "session_completed",
		Data: session,
	})

	c.JSON(http.StatusOK, session)
}

// GetSession godoc
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} ExamSession
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.GetSession(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetSessionResponses godoc
// @Summary      List the responses recorded for a session
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {array} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/responses [get]
func (h *SessionHandler) GetSessionResponses(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	responses, err := h.sessionService.GetSessionResponses(uint(sessionID))
	if err != nil {
		c.JSON(sessionErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, responses)
}

// ListSessions godoc
// @Summary      List a learner's sessions
// @Tags         sessions
// @Produce      json
// @Param        user_id query string true "Learner ID"
// @Success      200 {array} ExamSession
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_id required"})
		return
	}

	sessions, err := h.sessionService.ListSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrExamNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSessionCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
