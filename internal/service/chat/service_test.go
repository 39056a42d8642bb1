package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jeesuva/companion/backend/internal/analysis/emotion"
	chatmodel "github.com/jeesuva/companion/backend/internal/model/chat"
)

func newTestService() *Service {
	return NewService(Config{CacheSize: 50, HistoryWindow: 10, MaxTrackedUsers: 50})
}

func TestSevereCrampsEndToEnd(t *testing.T) {
	s := newTestService()
	message := "I have severe cramps"

	analysis := s.AnalyzeEmotion(message)
	if analysis.Emotion != emotion.Pain || !analysis.Detected {
		t.Fatalf("expected pain detection, got %+v", analysis)
	}
	if analysis.Intensity != emotion.IntensityHigh {
		t.Fatalf("expected high intensity, got %s", analysis.Intensity)
	}

	reply, ok := s.GenerateResponse(message, analysis, nil)
	if !ok {
		t.Fatal("expected a rule match")
	}

	prefix := "I'm truly sorry - severe pain is really difficult."
	if !strings.HasPrefix(reply, prefix) {
		t.Fatalf("expected pain/high prefix, got %q", reply[:60])
	}
	if !strings.Contains(reply, "Managing Severe Pain") {
		t.Fatal("expected the severe pain template")
	}
	if strings.Count(reply, `class="step-item"`) != 4 {
		t.Fatal("severe pain reply should carry 4 steps")
	}
}

func TestSchoolFollowUpScenario(t *testing.T) {
	s := newTestService()
	if err := s.TrackConversation("u1", "I have cramps"); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	message := "What about school?"
	if !s.IsFollowUp(message, "u1") {
		t.Fatal("continuation marker should flag a follow-up")
	}

	analysis := s.AnalyzeEmotion(message)
	reply, ok := s.GenerateResponse(message, analysis, &chatmodel.UserContext{UserID: "u1"})
	if !ok {
		t.Fatal("expected the school rule to match")
	}
	if !strings.Contains(reply, "You CAN Go to School") {
		t.Fatalf("expected school template, got %q", reply)
	}
}

func TestUnmatchedMessageReturnsNoMatch(t *testing.T) {
	s := newTestService()
	analysis := s.AnalyzeEmotion("tell me a joke")
	if reply, ok := s.GenerateResponse("tell me a joke", analysis, nil); ok {
		t.Fatalf("expected no match, got %q", reply)
	}

	// The miss itself is cached and still reported as no-match.
	if reply, ok := s.GenerateResponse("tell me a joke", analysis, nil); ok {
		t.Fatalf("cached miss should stay a miss, got %q", reply)
	}
}

func TestResponseCacheIsByteIdentical(t *testing.T) {
	s := newTestService()
	user := chatmodel.NewUserContext("u1", "Asha")
	message := "my cramps are awful"
	analysis := s.AnalyzeEmotion(message)

	first, ok := s.GenerateResponse(message, analysis, &user)
	if !ok {
		t.Fatal("expected a match")
	}
	second, _ := s.GenerateResponse(message, analysis, &user)
	if first != second {
		t.Fatal("cache hit must replay the identical response")
	}
	if s.Stats().ResponseCache.Size != 1 {
		t.Fatalf("expected one cached response, got %d", s.Stats().ResponseCache.Size)
	}
}

func TestResponseCacheKeyedByUser(t *testing.T) {
	s := newTestService()
	message := "You know the bleeding is heavy"
	analysis := s.AnalyzeEmotion(message)

	asha := chatmodel.NewUserContext("u1", "Asha")
	anonymous, _ := s.GenerateResponse(message, analysis, nil)
	personalized, _ := s.GenerateResponse(message, analysis, &asha)

	if anonymous == personalized {
		t.Fatal("personalized response should differ from the guest one")
	}
	if !strings.Contains(personalized, "Asha, you deserve") {
		t.Fatalf("expected name substitution, got %q", personalized)
	}
	if s.Stats().ResponseCache.Size != 2 {
		t.Fatal("guest and named user must occupy distinct cache keys")
	}
}

func TestPlaceholderNameIsNotSubstituted(t *testing.T) {
	s := newTestService()
	message := "heavy bleeding again"
	analysis := s.AnalyzeEmotion(message)
	friend := chatmodel.NewUserContext("u2", "")

	reply, ok := s.GenerateResponse(message, analysis, &friend)
	if !ok {
		t.Fatal("expected a match")
	}
	if strings.Contains(reply, "Friend,") {
		t.Fatalf("placeholder name leaked into reply: %q", reply)
	}
}

func TestTrackConversationRequiresUser(t *testing.T) {
	s := newTestService()
	if err := s.TrackConversation("", "hello"); err != ErrUserRequired {
		t.Fatalf("expected ErrUserRequired, got %v", err)
	}
}

func TestClearCaches(t *testing.T) {
	s := newTestService()
	analysis := s.AnalyzeEmotion("cramps")
	s.GenerateResponse("cramps", analysis, nil)

	s.ClearResponseCache()
	s.ClearEmotionCache()

	stats := s.Stats()
	if stats.ResponseCache.Size != 0 || stats.EmotionCache.Size != 0 {
		t.Fatalf("expected empty caches, got %+v", stats)
	}
}

func TestFollowUpStatusDoesNotChangeContent(t *testing.T) {
	s := newTestService()
	message := "What about school?"
	analysis := s.AnalyzeEmotion(message)

	fresh, _ := s.GenerateResponse(message, analysis, &chatmodel.UserContext{UserID: "new-user"})

	s.TrackConversation("old-user", "earlier question")
	repeat, _ := s.GenerateResponse(message, analysis, &chatmodel.UserContext{UserID: "old-user"})

	if fresh != repeat {
		t.Fatal("follow-up detection must not alter composed content")
	}
}

func TestResponseCacheEviction(t *testing.T) {
	s := NewService(Config{CacheSize: 5, HistoryWindow: 10, MaxTrackedUsers: 10})
	for i := 0; i < 6; i++ {
		message := fmt.Sprintf("cramps number %d", i)
		s.GenerateResponse(message, emotion.Result{}, nil)
	}

	if size := s.Stats().ResponseCache.Size; size != 5 {
		t.Fatalf("expected cache bounded to 5, got %d", size)
	}
}
