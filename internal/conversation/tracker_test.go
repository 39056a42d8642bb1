package conversation

import (
	"fmt"
	"testing"
	"time"
)

func TestTrackTrimsToWindow(t *testing.T) {
	tr := NewTracker(10, 100)
	for i := 0; i < 15; i++ {
		tr.Track("u1", fmt.Sprintf("message %d", i))
	}

	q := tr.Quality("u1")
	if q.InteractionCount != 10 {
		t.Fatalf("expected window of 10 entries, got %d", q.InteractionCount)
	}
}

func TestIsFollowUpMarkers(t *testing.T) {
	tr := NewTracker(10, 100)
	for _, msg := range []string{
		"What about school?",
		"also, does it hurt",
		"How about swimming",
		"furthermore I wonder",
	} {
		if !tr.IsFollowUp(msg, "nobody") {
			t.Fatalf("expected %q to be a follow-up", msg)
		}
	}
	if tr.IsFollowUp("is this normal", "nobody") {
		t.Fatal("fresh question from unknown user is not a follow-up")
	}
}

func TestIsFollowUpAnyHistory(t *testing.T) {
	tr := NewTracker(10, 100)
	tr.Track("u1", "first question")

	// Any prior history flags subsequent messages as follow-ups, even
	// without a continuation marker.
	if !tr.IsFollowUp("is this normal", "u1") {
		t.Fatal("user with history should be treated as following up")
	}
}

func TestQualityMetrics(t *testing.T) {
	tr := NewTracker(10, 100)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	tr.now = func() time.Time { return current }

	if q := tr.Quality("u1"); q.HasContext || q.Timeframe != 0 {
		t.Fatalf("expected empty quality, got %+v", q)
	}

	tr.Track("u1", "hello")
	current = base.Add(90 * time.Second)
	tr.Track("u1", "more please")

	q := tr.Quality("u1")
	if q.InteractionCount != 2 || !q.IsOngoingConversation || !q.HasContext {
		t.Fatalf("unexpected quality: %+v", q)
	}
	if q.Timeframe != 90*time.Second {
		t.Fatalf("expected 90s timeframe, got %s", q.Timeframe)
	}
}

func TestUserLevelEviction(t *testing.T) {
	tr := NewTracker(10, 3)
	for i := 0; i < 4; i++ {
		tr.Track(fmt.Sprintf("user-%d", i), "hi")
	}

	if tr.TrackedUsers() != 3 {
		t.Fatalf("expected 3 tracked users, got %d", tr.TrackedUsers())
	}
	if q := tr.Quality("user-0"); q.HasContext {
		t.Fatal("oldest user should have been evicted")
	}
	if q := tr.Quality("user-3"); !q.HasContext {
		t.Fatal("newest user should be tracked")
	}
}

func TestForget(t *testing.T) {
	tr := NewTracker(10, 100)
	tr.Track("u1", "hello")
	tr.Forget("u1")

	if tr.TrackedUsers() != 0 {
		t.Fatalf("expected no tracked users, got %d", tr.TrackedUsers())
	}
	if tr.IsFollowUp("is this normal", "u1") {
		t.Fatal("forgotten user must lose follow-up context")
	}
}
