package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

// ChatHub fans incoming support-chat messages out to everyone connected
// to the same room. Messages are persisted before they are broadcast.
type ChatHub struct {
	clients    map[string]map[*websocket.Conn]bool // roomID -> connections
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	service    *services.ChatService
}

type subscription struct {
	Conn   *websocket.Conn
	RoomID string
	UserID uint
}

type broadcastMessage struct {
	RoomID  string
	Message *entity.Message
}

type inboundMessage struct {
	Message string `json:"message"`
}

func NewChatHub(service *services.ChatService) *ChatHub {
	return &ChatHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		service:    service,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomID] == nil {
				h.clients[sub.RoomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomID][sub.Conn]; ok {
				delete(h.clients[sub.RoomID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RoomID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RoomID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/chat/:room_id. The room must already exist;
// each received frame is stored and broadcast to the room.
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	roomID := c.Param("room_id")
	userID := utils.CurrentUserID(c)

	if _, err := h.service.Messages(roomID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RoomID: roomID, UserID: userID}
	h.register <- sub

	defer func() {
		h.unregister <- sub
	}()

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Message == "" {
			continue
		}

		msg, err := h.service.SendMessage(roomID, userID, in.Message)
		if err != nil {
			log.Printf("ws persist error: %v", err)
			continue
		}
		h.broadcast <- broadcastMessage{RoomID: roomID, Message: msg}
	}
}
