package advisor

import (
	"context"
	"fmt"
)

const (
	maxSessions     = 1000
	maxHistoryTurns = 40
	windowTurns     = 20
)

// Service proxies chat-widget messages to the completion API, keeping a
// bounded per-session conversation so follow-up questions have context.
type Service struct {
	store  *SessionStore
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{
		store:  NewSessionStore(maxSessions, maxHistoryTurns),
		client: client,
	}
}

// Advise records the user's message, asks the completion API with the most
// recent turns, records the reply, and returns it. firstName personalizes
// the advisor's greeting and defaults to "user" for anonymous visitors.
func (s *Service) Advise(ctx context.Context, sessionID, message, firstName string) (string, error) {
	if firstName == "" {
		firstName = "user"
	}

	s.store.Init(sessionID, systemPrompt(firstName))
	history := s.store.Append(sessionID, Message{Role: "user", Content: message})

	window := history
	if len(window) > windowTurns {
		window = window[len(window)-windowTurns:]
	}

	reply, err := s.client.ChatCompletion(ctx, window)
	if err != nil {
		return "", err
	}

	s.store.Append(sessionID, Message{Role: "assistant", Content: reply})
	return reply, nil
}

func systemPrompt(firstName string) string {
	return fmt.Sprintf(`You are "Buyit", a professional business advisor.
The user's name is %s. Use it to greet them.

You help users with buying, selling, marketing, pricing, customer acquisition,
and business growth, using clear explanations, practical strategies, realistic
examples, and actionable steps.

You ONLY answer marketing and business-related questions. If a question is not
related to marketing, business, buying, or selling, respond politely that you
are a marketing-focused advisor and can only help with business, buying,
selling, and marketing questions.

When giving advice, focus on real-world strategies, prefer low-cost or
easy-access ideas, explain why a strategy works, and include risks and
limitations when relevant. Never promise guaranteed income.

Keep answers simple, practical, and beginner-friendly. Be encouraging, calm,
and professional.`, firstName)
}
