package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
)

// WebSocketRoutes authenticate through the token query parameter inside the
// handlers, so no middleware is attached.
func WebSocketRoutes(r *gin.Engine, sc *controllers.SocketController) {
	ws := r.Group("/ws")
	{
		ws.GET("/tracking", sc.HandleTrackingWebSocket)
		ws.GET("/changes", sc.HandleChangesWebSocket)
	}
}
