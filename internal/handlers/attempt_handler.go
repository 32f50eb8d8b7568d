package handlers

import (
	"net/http"

	"quizhub/internal/middleware"
	"quizhub/internal/models"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

type startAttemptRequest struct {
	QuizID string `json:"quiz_id" validate:"required"`
}

func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	var req startAttemptRequest
	if !bindAndValidate(c, &req) {
		return
	}
	attempt, questions, err := h.Service.StartAttempt(c.Request.Context(),
		c.GetString(middleware.ContextUserID), req.QuizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attempt": attempt, "questions": questions})
}

type submitAnswer struct {
	QuestionID     string `json:"question_id" validate:"required"`
	SelectedOption string `json:"selected_option"`
}

type submitAttemptRequest struct {
	QuizID  string         `json:"quiz_id" validate:"required"`
	Answers []submitAnswer `json:"answers" validate:"dive"`
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if !bindAndValidate(c, &req) {
		return
	}
	seen := make(map[string]bool, len(req.Answers))
	answers := make([]models.AttemptAnswer, len(req.Answers))
	for i, a := range req.Answers {
		if seen[a.QuestionID] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "duplicate answer for question " + a.QuestionID,
				"code":  "VALIDATION_FAILED",
			})
			return
		}
		seen[a.QuestionID] = true
		answers[i] = models.AttemptAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		}
	}
	outcome, err := h.Service.SubmitAttempt(c.Request.Context(),
		c.GetString(middleware.ContextUserID), req.QuizID, c.Param("id"), answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
