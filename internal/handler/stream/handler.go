// Package stream delivers AI replies over Server-Sent Events so web
// clients can render the answer as it is generated.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"

	chatmodel "github.com/jeesuva/companion/backend/internal/model/chat"
	aiService "github.com/jeesuva/companion/backend/internal/service/ai"
	chatService "github.com/jeesuva/companion/backend/internal/service/chat"
	"github.com/jeesuva/companion/backend/pkg/utils"
)

// Handler manages streaming AI responses via Server-Sent Events.
type Handler struct {
	aiService *aiService.Service
	chatSvc   *chatService.Service
}

// New creates a new stream handler.
func New(aiSvc *aiService.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		aiService: aiSvc,
		chatSvc:   chatSvc,
	}
}

// StreamResponse represents a streaming response chunk.
type StreamResponse struct {
	Event    string `json:"event"`
	Content  string `json:"content,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleStreamRequest streams the AI answer for one user message. The
// emotion classification of the message is sent as its own event so the
// client can adjust its presentation.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, userID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	if userID == "" {
		userID = chatmodel.GuestID
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:  "start",
		UserID: userID,
	})

	analysis := h.chatSvc.AnalyzeEmotion(userMessage)
	emotionPayload, err := json.Marshal(map[string]any{
		"emotion":    analysis.Emotion,
		"intensity":  analysis.Intensity,
		"confidence": analysis.Confidence,
		"detected":   analysis.Detected,
	})
	if err == nil {
		h.sendSSE(w, flusher, StreamResponse{
			Event:   "emotion",
			UserID:  userID,
			Content: string(emotionPayload),
		})
	}

	response, err := h.dispatchAIResponse(ctx, w, flusher, userID, userMessage)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("AI generation failed: %v", err))
		return err
	}

	if err := h.chatSvc.TrackConversation(userID, userMessage); err != nil {
		log.Printf("[stream] conversation tracking failed for user=%s: %v", userID, err)
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:    "end",
		UserID:   userID,
		Finished: true,
	})

	log.Printf("[stream] completed response for user=%s, length=%d", userID, len(response))
	return nil
}

func (h *Handler) dispatchAIResponse(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, userID, userMessage string) (string, error) {
	if h.aiService == nil {
		return "", fmt.Errorf("ai service unavailable")
	}

	if h.aiService.StreamingEnabled() {
		return h.streamAIResponse(ctx, w, flusher, userID, userMessage)
	}

	response, err := h.aiService.GenerateResponse(ctx, userID, userMessage)
	if err != nil {
		return "", err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:   "message",
		UserID:  userID,
		Content: response,
	})

	return response, nil
}

func (h *Handler) streamAIResponse(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, userID, userMessage string) (string, error) {
	stream, err := h.aiService.StreamResponse(ctx, userID, userMessage)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, StreamResponse{
				Event:   "delta",
				UserID:  userID,
				Content: chunk.Content,
			})
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}

	h.aiService.Remember(userID, userMessage, response.Content)

	h.sendSSE(w, flusher, StreamResponse{
		Event:   "message",
		UserID:  userID,
		Content: response.Content,
	})

	return response.Content, nil
}

// sendSSE sends a Server-Sent Event.
func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Printf("failed to marshal SSE response: %v", err)
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// sendSSEError sends an error via Server-Sent Events.
func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
