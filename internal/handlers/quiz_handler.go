package handlers

import (
	"net/http"

	"quizhub/internal/middleware"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, questions, err := h.Service.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "questions": questions})
}

type quizRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	IsActive        *bool  `json:"is_active"`
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req quizRequest
	if !bindAndValidate(c, &req) {
		return
	}
	quiz, err := h.Service.CreateQuiz(c.Request.Context(),
		req.Title, req.Description, req.DurationMinutes,
		c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req quizRequest
	if !bindAndValidate(c, &req) {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	quiz, err := h.Service.UpdateQuiz(c.Request.Context(), c.Param("id"),
		req.Title, req.Description, req.DurationMinutes, active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.DeleteQuiz(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
