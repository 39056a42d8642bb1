// Package chat exposes the conversational HTTP API: the main chat
// endpoint, emotion analysis, suggestions and cache administration.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	chatmodel "github.com/jeesuva/companion/backend/internal/model/chat"
	"github.com/jeesuva/companion/backend/internal/security"
	"github.com/jeesuva/companion/backend/internal/service/ai"
	chatService "github.com/jeesuva/companion/backend/internal/service/chat"
	"github.com/jeesuva/companion/backend/pkg/utils"
)

// fallbackResponses answer messages neither the AI nor the topic rules
// could handle, matched by keyword in order.
var fallbackKeywords = []string{"pain", "period", "cycle", "help"}

var fallbackResponses = map[string]string{
	"pain":    "I'm truly sorry you're experiencing pain. Please try:\n1. Use Jeesuva Heating Pad\n2. Take our Herbal Sachet\n3. Rest and stay hydrated\n4. See a doctor if it persists",
	"period":  "Your period is a natural process. You deserve care and comfort. Use Jeesuva products for relief!",
	"cycle":   "Your menstrual cycle is unique to you. Track patterns and listen to your body.",
	"help":    "I'm here to help with any questions about menstrual health. What would you like to know?",
	"default": "I'm here to support you with menstrual health information. Feel free to ask anything! 💙",
}

// Handler serves the chat API.
type Handler struct {
	chatSvc       *chatService.Service
	aiSvc         *ai.Service
	sessions      *security.SessionManager
	maxMessageLen int
}

// New creates a chat handler. aiSvc may be nil, in which case every reply
// comes from the rule-based responder.
func New(chatSvc *chatService.Service, aiSvc *ai.Service, maxMessageLen int) *Handler {
	if maxMessageLen < 1 {
		maxMessageLen = 1000
	}
	return &Handler{
		chatSvc:       chatSvc,
		aiSvc:         aiSvc,
		sessions:      security.NewSessionManager(24 * time.Hour),
		maxMessageLen: maxMessageLen,
	}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/emotion", h.handleEmotion)
	r.Get("/suggestions", h.handleSuggestions)
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/verify", h.handleVerifySession)
	r.Get("/cache/stats", h.handleCacheStats)
	r.Post("/cache/clear", h.handleCacheClear)
}

type chatRequest struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type chatResponse struct {
	Success   bool                  `json:"success"`
	Reply     string                `json:"reply"`
	ReplyID   string                `json:"replyId"`
	Source    chatmodel.ReplySource `json:"source"`
	Timestamp time.Time             `json:"timestamp"`
}

// handleChat answers a user message. The AI responder is tried first when
// configured; the rule-based responder covers AI failures, and a static
// keyword fallback covers messages no topic rule matched.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := security.Sanitize(payload.Message, h.maxMessageLen)
	if message == "" {
		respondFailure(w, http.StatusBadRequest, "please enter your question about menstrual health")
		return
	}

	reply := h.reply(r.Context(), message, payload.UserID, payload.UserName)
	utils.RespondJSON(w, http.StatusOK, chatResponse{
		Success:   true,
		Reply:     reply.Text,
		ReplyID:   reply.ID,
		Source:    reply.Source,
		Timestamp: reply.Timestamp,
	})
}

// reply runs the shared responder pipeline used by both the REST and
// websocket transports.
func (h *Handler) reply(ctx context.Context, message, userID, userName string) chatmodel.Reply {
	reply := chatmodel.Reply{
		ID:        uuid.NewString(),
		Source:    chatmodel.SourceRuleBased,
		Timestamp: time.Now().UTC(),
	}

	if h.aiSvc != nil {
		aiUserID := userID
		if aiUserID == "" {
			aiUserID = chatmodel.GuestID
		}
		text, err := h.aiSvc.GenerateResponse(ctx, aiUserID, message)
		if err == nil && text != "" {
			reply.Text = text
			reply.Source = chatmodel.SourceAI
			h.track(userID, message)
			return reply
		}
		if err != nil {
			log.Printf("[chat] ai responder failed, using rules: %v", err)
		}
	}

	analysis := h.chatSvc.AnalyzeEmotion(message)
	h.track(userID, message)

	userCtx := chatmodel.NewUserContext(userID, userName)
	lowered := strings.ToLower(message)
	if text, ok := h.chatSvc.GenerateResponse(lowered, analysis, &userCtx); ok {
		reply.Text = text
		return reply
	}

	reply.Text = fallbackResponse(lowered)
	return reply
}

// track records the message best-effort; a tracking failure never costs
// the caller their reply.
func (h *Handler) track(userID, message string) {
	if userID == "" {
		return
	}
	if err := h.chatSvc.TrackConversation(userID, message); err != nil {
		log.Printf("[chat] conversation tracking failed for user=%s: %v", userID, err)
	}
}

func fallbackResponse(message string) string {
	for _, keyword := range fallbackKeywords {
		if strings.Contains(message, keyword) {
			return fallbackResponses[keyword]
		}
	}
	return fallbackResponses["default"]
}

// handleEmotion exposes the emotion classifier on its own.
func (h *Handler) handleEmotion(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		respondFailure(w, http.StatusBadRequest, "no message provided")
		return
	}

	analysis := h.chatSvc.AnalyzeEmotion(payload.Message)

	// An undetected emotion goes out as null, not an empty string.
	var label any
	if analysis.Detected {
		label = analysis.Emotion
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"emotion":    label,
		"intensity":  analysis.Intensity,
		"confidence": analysis.Confidence,
		"detected":   analysis.Detected,
	})
}

// handleSuggestions returns starter questions and a follow-up hint for a
// topic label, defaulting to the general set.
func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		topic = "general"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"topic":     topic,
		"questions": h.chatSvc.SuggestedQuestions(topic),
		"followUp":  h.chatSvc.SuggestedFollowUp(topic),
	})
}

// handleCreateSession issues an opaque session token for a user.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		respondFailure(w, http.StatusBadRequest, "userId is required")
		return
	}

	session := h.sessions.Issue(payload.UserID)
	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"session": session,
	})
}

// handleVerifySession resolves a session token back to its user.
func (h *Handler) handleVerifySession(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondFailure(w, http.StatusBadRequest, "token query parameter is required")
		return
	}

	userID, ok := h.sessions.Verify(token)
	if !ok {
		respondFailure(w, http.StatusUnauthorized, "invalid or expired session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"userId":  userID,
	})
}

// handleCacheStats reports fill levels of the response and emotion caches.
func (h *Handler) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"caches":  h.chatSvc.Stats(),
	})
}

// handleCacheClear drops both caches.
func (h *Handler) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	h.chatSvc.ClearResponseCache()
	h.chatSvc.ClearEmotionCache()
	log.Printf("[chat] caches cleared")
	utils.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	utils.RespondJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
