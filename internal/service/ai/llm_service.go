// Package ai delegates chat replies to a hosted LLM through an eino chain.
// The responder falls back to the rule-based composer when this service is
// unavailable or errors out.
package ai

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/jeesuva/companion/backend/internal/config"
)

const systemPrompt = `You are Jeesuva AI Assistant, an expert menstrual health chatbot for a social enterprise called Jeesuva.

ABOUT JEESUVA:
- We provide affordable, eco-friendly menstrual pain relief solutions
- Our main products: reusable heating pads (no electricity needed) and herbal sachets
- Mission: Make menstrual health accessible globally, especially in India and Africa
- We work with schools, NGOs, and communities to reduce period poverty

YOUR EXPERTISE:
- Menstrual health education (pain management, hygiene, nutrition, mental wellness)
- PCOS, Endometriosis, and other menstrual conditions
- Period poverty and stigma reduction
- Age-appropriate guidance (puberty, teens, adults)
- Cultural sensitivity (myths vs facts from India, Africa, Asia)
- Emergency situations and when to see a doctor

YOUR TONE:
- Warm, empathetic, and supportive
- Evidence-based and medically accurate
- Empowering and stigma-free
- Age-appropriate language
- Use emojis moderately for friendliness

JEESUVA PRODUCTS (mention when relevant):
1. **Heating Pad**: Reusable, click-activated, 4-6 hours warmth, no electricity, 100+ uses
2. **Herbal Sachets**: Ajwain, ginger, jaggery for pain relief and iron replenishment

Answer questions about menstrual health, our products, period care, and related topics. Be concise but informative. If asked about non-menstrual topics, politely redirect to menstrual health.`

// historyLimit bounds the turns replayed into the prompt per user.
const historyLimit = 10

type turn struct {
	role    schema.RoleType
	content string
}

// Service encapsulates AI-powered chat functionality.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]

	mu      sync.Mutex
	history map[string][]turn
}

// NewService creates a new AI service instance.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
		history:   make(map[string][]turn),
	}, nil
}

// StreamingEnabled reports whether SSE streaming output is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateResponse runs the chain for one user turn and records both sides
// of the exchange in the per-user history.
func (s *Service) GenerateResponse(ctx context.Context, userID, userMessage string) (string, error) {
	input := s.buildChainInput(userID, userMessage)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}

	s.remember(userID, userMessage, response.Content)
	log.Printf("[ai] generated response for user=%s, length=%d", userID, len(response.Content))
	return response.Content, nil
}

// StreamResponse streams AI response chunks via the configured chain. The
// caller is responsible for recording the assembled reply with Remember.
func (s *Service) StreamResponse(ctx context.Context, userID, userMessage string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	input := s.buildChainInput(userID, userMessage)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream AI chain output: %w", err)
	}

	return stream, nil
}

// Remember records a completed exchange so later turns see it as history.
func (s *Service) Remember(userID, userMessage, reply string) {
	s.remember(userID, userMessage, reply)
}

// GetChatModel returns the underlying chat model.
func (s *Service) GetChatModel() model.ChatModel {
	return s.chatModel
}

func (s *Service) buildChainInput(userID, userMessage string) map[string]any {
	return map[string]any{
		"system":  systemPrompt,
		"history": s.historyMessages(userID),
		"query":   userMessage,
	}
}

func (s *Service) historyMessages(userID string) []*schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.history[userID]
	if len(turns) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(turns))
	for _, t := range turns {
		switch t.role {
		case schema.User:
			messages = append(messages, schema.UserMessage(t.content))
		case schema.Assistant:
			messages = append(messages, schema.AssistantMessage(t.content, nil))
		}
	}
	return messages
}

func (s *Service) remember(userID, userMessage, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.history[userID],
		turn{role: schema.User, content: userMessage},
		turn{role: schema.Assistant, content: reply},
	)
	if len(turns) > historyLimit {
		turns = turns[len(turns)-historyLimit:]
	}
	s.history[userID] = turns
}
