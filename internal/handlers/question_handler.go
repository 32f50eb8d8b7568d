package handlers

import (
	"net/http"

	"quizhub/internal/models"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

// QuestionHandler serves the authoring endpoints; payloads here include the
// correct answer and are admin-gated at the router.
type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

type questionRequest struct {
	QuizID        string   `json:"quiz_id" validate:"required"`
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=MCQ TRUE_FALSE"`
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	question := &models.Question{
		QuizID:        req.QuizID,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Type:          req.Type,
	}
	if err := h.Service.CreateQuestion(c.Request.Context(), question); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.Service.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) ListByQuiz(c *gin.Context) {
	questions, err := h.Service.ListByQuiz(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req questionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	question := &models.Question{
		ID:            c.Param("id"),
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Type:          req.Type,
	}
	if err := h.Service.UpdateQuestion(c.Request.Context(), question); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Service.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
