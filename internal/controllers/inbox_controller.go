package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/middleware"
	"luxride/internal/services"
)

type InboxController struct {
	inbox *services.Inbox
}

func NewInboxController(inbox *services.Inbox) *InboxController {
	return &InboxController{inbox: inbox}
}

func (ic *InboxController) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	list, err := ic.inbox.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := ic.inbox.UnreadCount(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list, "unread": unread})
}

func (ic *InboxController) MarkRead(c *gin.Context) {
	if err := ic.inbox.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ic *InboxController) DeleteNotification(c *gin.Context) {
	if err := ic.inbox.Remove(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
