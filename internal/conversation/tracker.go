// Package conversation keeps a bounded per-user window of recent messages
// used for follow-up detection and interaction-quality metrics.
package conversation

import (
	"strings"
	"sync"
	"time"
)

// Entry is one recorded message.
type Entry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Quality summarizes how engaged a conversation is.
type Quality struct {
	InteractionCount      int           `json:"interactionCount"`
	IsOngoingConversation bool          `json:"isOngoingConversation"`
	HasContext            bool          `json:"hasContext"`
	Timeframe             time.Duration `json:"timeframe"`
}

// followUpMarkers open messages that continue a prior exchange.
var followUpMarkers = []string{
	"also", "additionally", "more", "another", "what about", "how about",
	"plus", "furthermore",
}

// Tracker records recent messages per user. Each user's history is trimmed
// to the most recent window entries, and the set of tracked users itself is
// bounded: once maxUsers is reached the user whose history was created first
// gets dropped entirely.
type Tracker struct {
	mu        sync.Mutex
	window    int
	maxUsers  int
	userOrder []string
	histories map[string][]Entry
	now       func() time.Time
}

// NewTracker builds a tracker with the given per-user window and total
// tracked-user bound.
func NewTracker(window, maxUsers int) *Tracker {
	if window < 1 {
		window = 1
	}
	if maxUsers < 1 {
		maxUsers = 1
	}
	return &Tracker{
		window:    window,
		maxUsers:  maxUsers,
		histories: make(map[string][]Entry),
		now:       time.Now,
	}
}

// Track appends the message to the user's history, creating it lazily and
// trimming the oldest entry past the window.
func (t *Tracker) Track(userID, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	history, known := t.histories[userID]
	if !known {
		if len(t.userOrder) >= t.maxUsers {
			oldest := t.userOrder[0]
			t.userOrder = t.userOrder[1:]
			delete(t.histories, oldest)
		}
		t.userOrder = append(t.userOrder, userID)
	}

	history = append(history, Entry{Message: message, Timestamp: t.now()})
	if len(history) > t.window {
		history = history[1:]
	}
	t.histories[userID] = history
}

// IsFollowUp reports whether the message continues a prior exchange: it
// starts with a continuation marker, or the user has any history at all.
// The history branch makes every message after the first a follow-up; that
// looseness is intentional here, and tightening it is a product decision
// rather than a bug.
func (t *Tracker) IsFollowUp(message, userID string) bool {
	lower := strings.ToLower(message)
	for _, marker := range followUpMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}

	if userID == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.histories[userID]) > 0
}

// Quality reports interaction metrics for a user.
func (t *Tracker) Quality(userID string) Quality {
	t.mu.Lock()
	defer t.mu.Unlock()

	history := t.histories[userID]
	q := Quality{
		InteractionCount:      len(history),
		IsOngoingConversation: len(history) > 1,
		HasContext:            len(history) > 0,
	}
	if len(history) > 0 {
		q.Timeframe = t.now().Sub(history[0].Timestamp)
	}
	return q
}

// Forget removes every trace of a user, for hosts that expire users
// explicitly.
func (t *Tracker) Forget(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.histories[userID]; !ok {
		return
	}
	delete(t.histories, userID)
	for i, id := range t.userOrder {
		if id == userID {
			t.userOrder = append(t.userOrder[:i], t.userOrder[i+1:]...)
			break
		}
	}
}

// TrackedUsers returns how many users currently have history.
func (t *Tracker) TrackedUsers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.histories)
}
