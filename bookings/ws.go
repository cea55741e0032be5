package bookings

import (
	"encoding/json"
	"net/http"
	"sync"

	"voyago/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

type wsMessage struct {
	Type string `json:"type"`
}

// HandleWS subscribes a client to its own booking feed. The token comes
// from the query string because browsers cannot set headers on websocket
// upgrades.
func HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT("Bearer " + r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response
		return
	}

	mu.Lock()
	subscribers[userID] = append(subscribers[userID], conn)
	mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// Clean up on disconnect
	mu.Lock()
	conns := subscribers[userID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[userID] = newList
	mu.Unlock()

	conn.Close()
}

// BroadcastUserUpdate notifies all of a user's live connections that
// their bookings changed. Called by mutation handlers and by the sweep.
func BroadcastUserUpdate(userID string) {
	data, _ := json.Marshal(wsMessage{Type: "update"})

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[userID]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[userID] = newList
}
