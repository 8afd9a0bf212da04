// Package assistant answers rider questions about routes through a hosted
// language model.
package assistant

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"mybusnow/internal/models"
)

// FallbackReply replaces the answer whenever the model call fails.
const FallbackReply = "Sorry, I encountered an error. Please try again."

// Greeting opens every transcript.
const Greeting = "Hello! I can help you with bus information. Ask me in English or Telugu! 🚌\n" +
	"నమస్కారం! నేను బస్ సమాచారంతో మీకు సహాయం చేయగలను. ఇంగ్లీష్ లేదా తెలుగులో అడగండి! 🚌"

// Client sends a prompt to the model and returns its free-text reply.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Reply is one assistant turn.
type Reply struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Fallback bool   `json:"fallback"`
}

// Observer is notified of the outcome of each question.
type Observer func(fallback bool)

// Assistant grounds questions on a route snapshot.
type Assistant struct {
	client  Client
	observe Observer
}

// New returns an Assistant. observe may be nil.
func New(client Client, observe Observer) *Assistant {
	return &Assistant{client: client, observe: observe}
}

// Ask never fails: any error from prompt building or the model is logged
// and the fixed apology is returned instead. There is no retry.
func (a *Assistant) Ask(ctx context.Context, routes []models.Route, question string, lang Language) Reply {
	reply, err := a.ask(ctx, routes, question, lang)
	fallback := err != nil
	if fallback {
		logrus.WithError(err).WithFields(logrus.Fields{
			"language": lang,
			"routes":   len(routes),
		}).Warn("Assistant call failed, sending fallback reply")
		reply = FallbackReply
	}
	if a.observe != nil {
		a.observe(fallback)
	}
	return Reply{Role: "assistant", Content: reply, Fallback: fallback}
}

func (a *Assistant) ask(ctx context.Context, routes []models.Route, question string, lang Language) (string, error) {
	if a.client == nil {
		return "", ErrNotConfigured
	}
	prompt, err := BuildPrompt(routes, strings.TrimSpace(question), lang)
	if err != nil {
		return "", err
	}
	answer, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return "", ErrEmptyReply
	}
	return answer, nil
}
