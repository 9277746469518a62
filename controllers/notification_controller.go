package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Paintedstork28/fitness-tracker/services"
)

type NotificationController struct {
	Hub *services.NotificationHub
}

func NewNotificationController(hub *services.NotificationHub) *NotificationController {
	return &NotificationController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // demo runs same-origin
}

// BannersWS streams transient banners to the page. Each banner carries
// its own expiry; the page removes it after that delay.
func (nc *NotificationController) BannersWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Conn: conn}
	nc.Hub.Register(cl)

	// keep the connection alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				nc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			nc.Hub.Unregister(cl)
			return
		}
	}
}
