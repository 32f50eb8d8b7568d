package handlers

import (
	"net/http"

	"quizhub/internal/middleware"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

func (h *ResultHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.Service.GetLeaderboard(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ResultHandler) GetMyResults(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(c.Request.Context(),
		c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetResultsByUser(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
