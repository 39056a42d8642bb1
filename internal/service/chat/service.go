// Package chat orchestrates the rule-based response pipeline: emotion
// analysis, topic routing, composition, personalization, conversation
// tracking and caching.
package chat

import (
	"errors"
	"strings"

	"github.com/jeesuva/companion/backend/internal/analysis/emotion"
	"github.com/jeesuva/companion/backend/internal/analysis/topic"
	"github.com/jeesuva/companion/backend/internal/cache"
	"github.com/jeesuva/companion/backend/internal/conversation"
	chatmodel "github.com/jeesuva/companion/backend/internal/model/chat"
	"github.com/jeesuva/companion/backend/internal/respond"
)

var ErrUserRequired = errors.New("user id is required")

// Config bounds the service's in-memory state.
type Config struct {
	CacheSize       int
	HistoryWindow   int
	MaxTrackedUsers int
}

// DefaultConfig mirrors the production limits.
func DefaultConfig() Config {
	return Config{CacheSize: 1000, HistoryWindow: 10, MaxTrackedUsers: 1000}
}

// CacheStats pairs the fill levels of both caches.
type CacheStats struct {
	ResponseCache cache.Stats `json:"responseCache"`
	EmotionCache  cache.Stats `json:"emotionCache"`
}

// Service is the rule-based responder. It owns its caches and tracker and
// shares an immutable lexicon through the analyzer, so tests can construct
// isolated instances.
type Service struct {
	analyzer  *emotion.Analyzer
	tracker   *conversation.Tracker
	responses *cache.FIFO[string, string]
}

// NewService builds a responder with the default lexicon.
func NewService(cfg Config) *Service {
	if cfg.CacheSize < 1 {
		cfg.CacheSize = DefaultConfig().CacheSize
	}
	if cfg.HistoryWindow < 1 {
		cfg.HistoryWindow = DefaultConfig().HistoryWindow
	}
	if cfg.MaxTrackedUsers < 1 {
		cfg.MaxTrackedUsers = DefaultConfig().MaxTrackedUsers
	}
	return &Service{
		analyzer:  emotion.NewAnalyzer(emotion.DefaultLexicon(), cfg.CacheSize),
		tracker:   conversation.NewTracker(cfg.HistoryWindow, cfg.MaxTrackedUsers),
		responses: cache.NewFIFO[string, string](cfg.CacheSize),
	}
}

// AnalyzeEmotion classifies the emotional tone of a message. Results are
// cached per distinct message text; emotion does not depend on the user.
func (s *Service) AnalyzeEmotion(message string) emotion.Result {
	return s.analyzer.Analyze(message)
}

// GenerateResponse renders the canned response for a message, personalized
// for the user. The second return is false when no topic rule matched and
// the caller should fall back to its own responder. Responses are cached by
// message and user, since personalization is baked into the cached text.
func (s *Service) GenerateResponse(message string, analysis emotion.Result, userCtx *chatmodel.UserContext) (string, bool) {
	userID := chatmodel.GuestID
	userName := ""
	if userCtx != nil && userCtx.UserID != "" {
		userID = userCtx.UserID
	}
	if userCtx != nil {
		userName = userCtx.UserName
	}

	cacheKey := message + "|" + userID
	if cached, ok := s.responses.Get(cacheKey); ok {
		return cached, cached != ""
	}

	response := ""
	if matched, ok := topic.Route(message); ok {
		response = respond.Compose(matched, message)
		if analysis.Detected {
			prefix := respond.EmotionalPrefix(analysis.Emotion, analysis.Intensity)
			response = prefix + "\n\n" + response
		}
		response = respond.Personalize(response, userName)
	}

	// Misses are cached too, so repeated unmatched questions stay cheap.
	s.responses.Put(cacheKey, response)
	return response, response != ""
}

// TrackConversation records a message in the user's history. It is kept
// separate from response generation so hosts can treat tracking failures as
// best-effort without losing the reply.
func (s *Service) TrackConversation(userID, message string) error {
	if userID == "" {
		return ErrUserRequired
	}
	s.tracker.Track(userID, strings.ToLower(message))
	return nil
}

// IsFollowUp reports whether the message continues a prior exchange.
func (s *Service) IsFollowUp(message, userID string) bool {
	return s.tracker.IsFollowUp(message, userID)
}

// ConversationQuality reports interaction metrics for a user.
func (s *Service) ConversationQuality(userID string) conversation.Quality {
	return s.tracker.Quality(userID)
}

// ForgetUser drops a user's conversation history.
func (s *Service) ForgetUser(userID string) {
	s.tracker.Forget(userID)
}

// SuggestedFollowUp proxies the advisory follow-up hint for a topic label.
func (s *Service) SuggestedFollowUp(topicKeyword string) string {
	return respond.SuggestedFollowUp(topicKeyword)
}

// SuggestedQuestions proxies the starter questions for a topic.
func (s *Service) SuggestedQuestions(topicLabel string) []string {
	return respond.SuggestedQuestions(topicLabel)
}

// ClearResponseCache drops every cached response.
func (s *Service) ClearResponseCache() {
	s.responses.Clear()
}

// ClearEmotionCache drops every cached emotion result.
func (s *Service) ClearEmotionCache() {
	s.analyzer.ClearCache()
}

// Stats snapshots both cache fill levels.
func (s *Service) Stats() CacheStats {
	return CacheStats{
		ResponseCache: s.responses.Stats(),
		EmotionCache:  s.analyzer.CacheStats(),
	}
}
