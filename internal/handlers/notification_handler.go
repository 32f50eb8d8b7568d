package handlers

import (
	"net/http"

	"quizhub/internal/middleware"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Service *service.NotificationService
}

func NewNotificationHandler(s *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	notifications, err := h.Service.ListByUser(c.Request.Context(),
		c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "read"})
}
