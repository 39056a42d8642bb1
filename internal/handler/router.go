package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jeesuva/companion/backend/internal/handler/chat"
	"github.com/jeesuva/companion/backend/internal/handler/stream"
	middlewarePkg "github.com/jeesuva/companion/backend/internal/middleware"
	"github.com/jeesuva/companion/backend/internal/security"
	aiService "github.com/jeesuva/companion/backend/internal/service/ai"
	chatService "github.com/jeesuva/companion/backend/internal/service/chat"
	"github.com/jeesuva/companion/backend/pkg/utils"
)

// Options tunes per-request limits enforced at the router level.
type Options struct {
	MaxMessageLength   int
	RateLimitPerMinute int
}

// NewRouter wires HTTP routes to core services. aiSvc may be nil, which
// disables the AI responder and the streaming endpoint.
func NewRouter(chatSvc *chatService.Service, aiSvc *aiService.Service, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)
	r.Use(middlewarePkg.SecurityHeaders)

	if opts.RateLimitPerMinute > 0 {
		limiter := security.NewRateLimiter(opts.RateLimitPerMinute, time.Minute)
		r.Use(middlewarePkg.RateLimit(limiter))
	}

	chatHandler := chat.New(chatSvc, aiSvc, opts.MaxMessageLength)
	wsHandler := chat.NewWebSocketHandler(chatHandler)

	var streamHandler *stream.Handler
	if aiSvc != nil {
		streamHandler = stream.New(aiSvc, chatSvc)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", handleHealth)
		api.Get("/info", handleInfo)

		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/chat/stream", func(w http.ResponseWriter, r *http.Request) {
			userMessage := r.URL.Query().Get("message")
			userID := r.URL.Query().Get("userId")

			if streamHandler == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai streaming unavailable")
				return
			}
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, userID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusNotFound, map[string]any{
			"success":   false,
			"error":     "endpoint not found",
			"available": []string{"/api/chat", "/api/emotion", "/api/health", "/api/info", "/api/suggestions"},
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "running",
		"server":    "jeesuva-companion",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func handleInfo(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"name":        "Jeesuva",
		"description": "Menstrual health companion",
		"features": []string{
			"Emotion detection with intensity levels",
			"Personalized responses",
			"Conversation tracking",
			"AI-assisted replies with rule-based fallback",
		},
		"endpoints": map[string]string{
			"chat":        "POST /api/chat",
			"emotion":     "POST /api/emotion",
			"suggestions": "GET /api/suggestions",
			"health":      "GET /api/health",
			"info":        "GET /api/info",
		},
	})
}
