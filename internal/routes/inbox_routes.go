package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
)

func InboxRoutes(r *gin.Engine, ic *controllers.InboxController, auth *middleware.Auth) {
	inbox := r.Group("/inbox")
	inbox.Use(auth.RequireAuth())
	{
		inbox.GET("", ic.ListNotifications)
		inbox.POST("/:id/read", ic.MarkRead)
		inbox.DELETE("/:id", ic.DeleteNotification)
	}
}
