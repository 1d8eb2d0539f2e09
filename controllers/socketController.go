package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"tableswift/database"
	"tableswift/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Kitchen displays connect here and receive every order event live. This is
// how a second device shares the order state without its own store.

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	socketMu sync.Mutex
	clients  = make(map[*websocket.Conn]bool)
)

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		socketMu.Lock()
		clients[conn] = true
		socketMu.Unlock()

		// push the current board so a fresh display is immediately in sync
		board, _ := json.Marshal(models.SocketMessage{
			Event:   models.EventKitchenUpdate,
			Payload: models.ProjectTables(database.Orders.List()),
		})
		_ = conn.WriteMessage(websocket.TextMessage, board)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				socketMu.Lock()
				delete(clients, conn)
				socketMu.Unlock()
				break
			}
		}
	}
}

func BroadcastOrderCreated(order models.Order) {
	broadcast(models.SocketMessage{Event: models.EventOrderCreated, Payload: order})
}

func BroadcastKitchenUpdate() {
	broadcast(models.SocketMessage{
		Event:   models.EventKitchenUpdate,
		Payload: models.ProjectTables(database.Orders.List()),
	})
}

func broadcast(message models.SocketMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("broadcast marshal failed:", err)
		return
	}

	socketMu.Lock()
	defer socketMu.Unlock()
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
