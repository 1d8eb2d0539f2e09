package models

// Event names pushed to kitchen display websocket clients.
const (
	EventOrderCreated  = "orderCreated"
	EventKitchenUpdate = "kitchenUpdate"
)

// SocketMessage is the envelope for every websocket broadcast.
type SocketMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
