// Package security covers the hardening concerns of the HTTP surface:
// response headers, input sanitization, rate limiting and session tokens.
package security

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Headers returns the security headers applied to every response.
func Headers() map[string]string {
	return map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"X-XSS-Protection":          "1; mode=block",
		"Strict-Transport-Security": "max-age=31536000",
		"Content-Security-Policy":   "default-src 'self'",
		"Referrer-Policy":           "no-referrer",
	}
}

// Sanitize strips angle brackets, trims whitespace and caps the input
// length before it reaches the responder.
func Sanitize(input string, maxLen int) string {
	cleaned := strings.NewReplacer("<", "", ">", "").Replace(input)
	cleaned = strings.TrimSpace(cleaned)
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}

// RateLimiter enforces a sliding-window request cap per caller.
type RateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	requests map[string][]time.Time
	now      func() time.Time
}

// NewRateLimiter allows max requests per caller within window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		window:   window,
		max:      max,
		requests: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records a request for the caller and reports whether it stays
// within the window cap.
func (l *RateLimiter) Allow(caller string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.requests[caller][:0]
	for _, at := range l.requests[caller] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= l.max {
		l.requests[caller] = recent
		return false
	}

	l.requests[caller] = append(recent, now)
	return true
}

// Session is an opaque bearer token bound to a user.
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionManager issues and verifies in-memory session tokens.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

// NewSessionManager creates a manager whose tokens expire after ttl.
func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Issue creates a session token for the user.
func (m *SessionManager) Issue(userID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	session := Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.sessions[session.Token] = session
	return session
}

// Verify resolves a token to its user, dropping expired sessions.
func (m *SessionManager) Verify(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if m.now().After(session.ExpiresAt) {
		delete(m.sessions, token)
		return "", false
	}
	return session.UserID, true
}

// Revoke invalidates a token.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
