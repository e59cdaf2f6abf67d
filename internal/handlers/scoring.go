package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"lingua-exam-backend/internal/evaluator"
	"lingua-exam-backend/internal/models"
	"lingua-exam-backend/internal/scoring"
	"lingua-exam-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ScoringHandler struct {
	scoringService *services.ScoringService
	examService    *services.ExamService
}

func NewScoringHandler(scoringService *services.ScoringService, examService *services.ExamService) *ScoringHandler {
	return &ScoringHandler{scoringService: scoringService, examService: examService}
}

type ScoreRequest struct {
	QuestionID   uint   `json:"questionId" binding:"required"`
	QuestionType string `json:"questionType" binding:"required"`
	UserAnswer   string `json:"userAnswer"`
	UserID       string `json:"userId" binding:"required"`
	ExamID       uint   `json:"examId"`
}

type ScoreResponse struct {
	Success bool `json:"success"`
	scoring.Result
}

type ScoreSectionRequest struct {
	QuestionData struct {
		Questions []models.Question `json:"questions" binding:"required"`
	} `json:"questionData" binding:"required"`
	UserAnswers map[int]string `json:"userAnswers" binding:"required"`
}

// ScoreQuestion godoc
// @Summary      Score a single answer
// @Description  Routes the question's declared type to its scorer and returns the verdict. No state is persisted.
// @Tags         scoring
// @Accept       json
// @Produce      json
// @Param        request body ScoreRequest true "Answer to score"
// @Success      200 {object} ScoreResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/score [post]
func (h *ScoringHandler) ScoreQuestion(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.scoringService.ScoreQuestion(c.Request.Context(), req.QuestionID, req.QuestionType, req.UserAnswer)
	if err != nil {
		status := scoringErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("score question %d: %v", req.QuestionID, err)
			c.JSON(status, ErrorResponse{Error: "internal error"})
			return
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{Success: true, Result: *result})
}

// ScoreSection godoc
// @Summary      Score a section batch
// @Description  Pure fold of submitted answers over the supplied answer key. Example questions are excluded from both score and total.
// @Tags         scoring
// @Accept       json
// @Produce      json
// @Param        request body ScoreSectionRequest true "Answer key and submitted answers"
// @Success      200 {object} scoring.Summary
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/score-section [post]
func (h *ScoringHandler) ScoreSection(c *gin.Context) {
	var req ScoreSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.QuestionData.Questions) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "questionData.questions must not be empty"})
		return
	}

	summary := scoring.ScoreSection(req.QuestionData.Questions, req.UserAnswers)
	c.JSON(http.StatusOK, summary)
}

type ScoreStoredSectionRequest struct {
	UserAnswers map[int]string `json:"user_answers" binding:"required"`
}

// ScoreStoredSection godoc
// @Summary      Score answers against a stored section
// @Tags         scoring
// @Accept       json
// @Produce      json
// @Param        id path int true "Section ID"
// @Param        request body ScoreStoredSectionRequest true "Submitted answers keyed by question number"
// @Success      200 {object} scoring.Summary
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sections/{id}/score [post]
func (h *ScoringHandler) ScoreStoredSection(c *gin.Context) {
	sectionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid section id"})
		return
	}

	var req ScoreStoredSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := h.examService.GetSectionQuestions(uint(sectionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	summary := scoring.ScoreSection(questions, req.UserAnswers)
	c.JSON(http.StatusOK, summary)
}

func scoringErrorStatus(err error) int {
	switch {
	case errors.Is(err, scoring.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, evaluator.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, evaluator.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
