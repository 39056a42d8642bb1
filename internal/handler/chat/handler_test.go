package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/jeesuva/companion/backend/internal/service/chat"
)

func setupRouter() (*chi.Mux, *chatservice.Service) {
	chatSvc := chatservice.NewService(chatservice.DefaultConfig())
	handler := New(chatSvc, nil, 1000)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, chatSvc
}

func postJSON(t *testing.T, r *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestChatRuleBasedReply(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{
		"message": "I have terrible period pain",
		"userId":  "user-1",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body chatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success")
	}
	if body.Source != "rule-based" {
		t.Fatalf("expected rule-based source, got %q", body.Source)
	}
	if body.Reply == "" {
		t.Fatal("expected a non-empty reply")
	}
	if body.ReplyID == "" {
		t.Fatal("expected a reply id")
	}
}

func TestChatPersonalizesReply(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{
		"message":  "Why does my period make me feel sad",
		"userId":   "user-2",
		"userName": "Asha",
	})

	var body chatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(body.Reply, "Asha") {
		t.Fatalf("expected personalized reply, got %q", body.Reply)
	}
}

func TestChatFallbackWhenNoRuleMatches(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{
		"message": "tell me a joke",
	})

	var body chatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Reply != fallbackResponses["default"] {
		t.Fatalf("expected default fallback, got %q", body.Reply)
	}
}

func TestChatFallbackMatchesKeyword(t *testing.T) {
	got := fallbackResponse("ouch the pain is back")
	if got != fallbackResponses["pain"] {
		t.Fatalf("expected pain fallback, got %q", got)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{"message": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatSanitizesMarkup(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/chat", map[string]string{
		"message": "<script>period pain</script>",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestEmotionEndpoint(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/emotion", map[string]string{
		"message": "I feel so happy and great today",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success  bool   `json:"success"`
		Emotion  string `json:"emotion"`
		Detected bool   `json:"detected"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success || !body.Detected {
		t.Fatalf("expected detected emotion, got %+v", body)
	}
	if body.Emotion != "happy" {
		t.Fatalf("expected happy, got %q", body.Emotion)
	}
}

func TestEmotionUndetectedIsNull(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/emotion", map[string]string{
		"message": "the weather outside",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"emotion":null`) {
		t.Fatalf("expected null emotion, got %s", resp.Body.String())
	}

	var body struct {
		Detected bool `json:"detected"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Detected {
		t.Fatal("expected no detection")
	}
}

func TestEmotionRequiresMessage(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/emotion", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSuggestionsDefaultTopic(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Topic     string   `json:"topic"`
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Topic != "general" {
		t.Fatalf("expected general topic, got %q", body.Topic)
	}
	if len(body.Questions) == 0 {
		t.Fatal("expected starter questions")
	}
}

func TestSessionIssueAndVerify(t *testing.T) {
	r, _ := setupRouter()

	resp := postJSON(t, r, "/session", map[string]string{"userId": "user-9"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var body struct {
		Session struct {
			Token string `json:"token"`
		} `json:"session"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Session.Token == "" {
		t.Fatal("expected a session token")
	}

	verifyReq := httptest.NewRequest(http.MethodGet, "/session/verify?token="+body.Session.Token, nil)
	verifyResp := httptest.NewRecorder()
	r.ServeHTTP(verifyResp, verifyReq)
	if verifyResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", verifyResp.Code)
	}

	badReq := httptest.NewRequest(http.MethodGet, "/session/verify?token=bogus", nil)
	badResp := httptest.NewRecorder()
	r.ServeHTTP(badResp, badReq)
	if badResp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", badResp.Code)
	}
}

func TestCacheStatsAndClear(t *testing.T) {
	r, chatSvc := setupRouter()

	postJSON(t, r, "/chat", map[string]string{"message": "period pain hurts"})
	if chatSvc.Stats().ResponseCache.Size == 0 {
		t.Fatal("expected a cached response")
	}

	resp := postJSON(t, r, "/cache/clear", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if chatSvc.Stats().ResponseCache.Size != 0 {
		t.Fatal("expected response cache to be empty after clear")
	}

	statsReq := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	statsResp := httptest.NewRecorder()
	r.ServeHTTP(statsResp, statsReq)
	if statsResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", statsResp.Code)
	}
}
