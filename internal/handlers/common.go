package handlers

import "lingua-exam-backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Exam = models.Exam
type Question = models.Question
type ExamSession = models.ExamSession
type Response = models.Response
