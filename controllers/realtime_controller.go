package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub      *services.ChatHub
	Profiles *services.ProfileService
}

func NewRealtimeController(hub *services.ChatHub, profiles *services.ProfileService) *RealtimeController {
	return &RealtimeController{Hub: hub, Profiles: profiles}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind the CDN if needed
}

// ChatWS upgrades to a per-user socket; ?watch=admin additionally subscribes
// admins to the global message and presence feed.
func (rc *RealtimeController) ChatWS(c *gin.Context) {
	uid := c.GetUint("userID")

	watch := c.Query("watch") == "admin"
	if watch && !rc.Profiles.IsAdmin(uid) {
		utils.Fail(c, http.StatusForbidden, "Admin access required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.ChatClient{UserID: uid, AdminWatch: watch, Conn: conn}
	rc.Hub.Register(cl)

	// keepalive pings for proxies that drop idle connections
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
