package handlers

import (
	"net/http"
	"strconv"

	"lingua-exam-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService *services.ExamService
}

func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// CreateExam godoc
// @Summary      Create an exam with sections and questions
// @Tags         exams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ExamInput true "Exam data"
// @Success      201 {object} Exam
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	accountID := c.GetUint("account_id")

	var input services.ExamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	exam, err := h.examService.CreateExam(accountID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, exam)
}

// ListExams godoc
// @Summary      List the account's exams
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Exam
// @Router       /api/v1/exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	accountID := c.GetUint("account_id")

	exams, err := h.examService.ListExams(accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary      Get an exam with its sections, questions and options
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Exam ID"
// @Success      200 {object} Exam
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exams/{id} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	accountID := c.GetUint("account_id")
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	exam, err := h.examService.GetExam(uint(examID), accountID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary      Delete an exam
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Exam ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	accountID := c.GetUint("account_id")
	examID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	if err := h.examService.DeleteExam(uint(examID), accountID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "exam deleted"})
}
