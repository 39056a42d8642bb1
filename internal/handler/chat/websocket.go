package chat

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	chatmodel "github.com/jeesuva/companion/backend/internal/model/chat"
	"github.com/jeesuva/companion/backend/internal/security"
)

// WebSocketHandler serves live chat over a websocket connection.
type WebSocketHandler struct {
	chat     *Handler
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket transport around the shared
// chat pipeline.
func NewWebSocketHandler(chat *Handler) *WebSocketHandler {
	return &WebSocketHandler{
		chat: chat,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// wireConn is the write surface of *websocket.Conn used by safeConn.
type wireConn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
}

// safeConn serializes writes to a websocket connection. Gorilla connections
// support at most one concurrent writer, and the ping loop runs alongside
// the reply path.
type safeConn struct {
	mu   sync.Mutex
	conn wireConn
}

func (c *safeConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *safeConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[websocket] new chat connection from %s", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	sc := &safeConn{conn: conn}

	go h.pingLoop(ctx, sc)

	h.send(sc, "status", map[string]any{"message": "connected"})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[websocket] read error: %v", err)
				}
				return
			}

			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			h.handleMessage(ctx, sc, &msg)
		}
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, conn *safeConn, msg *inboundMessage) {
	switch msg.Type {
	case "chat":
		h.handleChatMessage(ctx, conn, msg)
	case "ping":
		h.send(conn, "pong", nil)
	default:
		h.sendError(conn, "unsupported message type: "+msg.Type)
	}
}

func (h *WebSocketHandler) handleChatMessage(ctx context.Context, conn *safeConn, msg *inboundMessage) {
	message := security.Sanitize(msg.Message, h.chat.maxMessageLen)
	if message == "" {
		h.sendError(conn, "message is required")
		return
	}

	if h.chat.aiSvc != nil && h.chat.aiSvc.StreamingEnabled() {
		if h.streamAIReply(ctx, conn, msg, message) {
			return
		}
	}

	reply := h.chat.reply(ctx, message, msg.UserID, msg.UserName)
	h.send(conn, "reply", reply)
}

// streamAIReply sends the AI answer as incremental deltas. It reports false
// when streaming failed and the caller should fall back to a full reply.
func (h *WebSocketHandler) streamAIReply(ctx context.Context, conn *safeConn, msg *inboundMessage, message string) bool {
	userID := msg.UserID
	if userID == "" {
		userID = chatmodel.GuestID
	}

	stream, err := h.chat.aiSvc.StreamResponse(ctx, userID, message)
	if err != nil {
		log.Printf("[websocket] ai streaming failed, using fallback: %v", err)
		return false
	}
	defer stream.Close()

	var chunks []*schema.Message
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			log.Printf("[websocket] ai stream recv failed: %v", recvErr)
			return false
		}
		if chunk == nil {
			continue
		}
		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.send(conn, "reply_delta", map[string]any{"text": chunk.Content})
		}
	}

	merged, err := schema.ConcatMessages(chunks)
	if err != nil {
		log.Printf("[websocket] concat ai chunks failed: %v", err)
		return false
	}

	h.chat.aiSvc.Remember(userID, message, merged.Content)
	h.chat.track(msg.UserID, message)

	h.send(conn, "reply", chatmodel.Reply{
		ID:        uuid.NewString(),
		Text:      merged.Content,
		Source:    chatmodel.SourceAI,
		Timestamp: time.Now().UTC(),
	})
	return true
}

func (h *WebSocketHandler) send(conn *safeConn, msgType string, data interface{}) {
	msg := outgoingMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := conn.writeJSON(msg); err != nil {
		log.Printf("[websocket] write failed: %v", err)
	}
}

func (h *WebSocketHandler) sendError(conn *safeConn, message string) {
	h.send(conn, "error", map[string]string{"message": message})
}

func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *safeConn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}
