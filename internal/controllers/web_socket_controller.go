package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"luxride/internal/changes"
	"luxride/internal/middleware"
	"luxride/internal/tracking"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // browser client may be served from another origin in development
	},
}

const writeWait = 10 * time.Second

type SocketController struct {
	auth *middleware.Auth
	feed tracking.Feed
	hub  *changes.Hub
}

func NewSocketController(auth *middleware.Auth, feed tracking.Feed, hub *changes.Hub) *SocketController {
	return &SocketController{auth: auth, feed: feed, hub: hub}
}

// authenticateSocket validates the token query parameter; browsers cannot
// set headers on a WebSocket handshake.
func (sc *SocketController) authenticateSocket(c *gin.Context) (string, error) {
	tokenString := c.Query("token")
	if tokenString == "" {
		logrus.Warn("WebSocket connection attempt: Missing token query parameter.")
		return "", errors.New("missing authentication token")
	}
	claims, err := sc.auth.ValidateToken(tokenString)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return claims.UserID, nil
}

// watchClose cancels the returned context once the client goes away. Client
// messages are read and discarded.
func watchClose(parent context.Context, conn *websocket.Conn) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return ctx
}

// HandleTrackingWebSocket streams simulated driver distance and ETA for the
// trip named by the pickup and destination query parameters.
func (sc *SocketController) HandleTrackingWebSocket(c *gin.Context) {
	userID, err := sc.authenticateSocket(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to upgrade tracking connection")
		return
	}
	defer conn.Close()

	ctx := watchClose(c.Request.Context(), conn)
	req := tracking.NewRequest(c.Query("pickup"), c.Query("destination"))
	logrus.WithFields(logrus.Fields{"user_id": userID, "active": req.Pickup != "" && req.Destination != ""}).
		Info("Tracking stream opened")

	for u := range sc.feed.Updates(ctx, req) {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(u); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("user_id", userID).Warn("Failed to send tracking update")
			}
			return
		}
	}
	logrus.WithField("user_id", userID).Debug("Tracking stream closed")
}

// HandleChangesWebSocket pushes change notifications for the user's own
// collections until the client disconnects.
func (sc *SocketController) HandleChangesWebSocket(c *gin.Context) {
	userID, err := sc.authenticateSocket(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to upgrade changes connection")
		return
	}
	defer conn.Close()

	sc.hub.Register(userID, conn)
	defer sc.hub.Unregister(userID, conn)

	<-watchClose(c.Request.Context(), conn).Done()
}
