package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mybusnow/internal/assistant"
)

// Greeting returns the opening assistant message of a transcript.
func (h *Controller) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": assistant.Reply{Role: "assistant", Content: assistant.Greeting}})
}

// Chat answers a rider question grounded on the current routes. Failures
// never surface as errors: the rider gets the apology reply instead.
func (h *Controller) Chat(c *gin.Context) {
	var input struct {
		Message  string `json:"message" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	lang := assistant.ParseLanguage(input.Language)

	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Chat: could not load routes")
		h.metrics.ObserveAssistant(true)
		c.JSON(http.StatusOK, gin.H{"message": assistant.Reply{Role: "assistant", Content: assistant.FallbackReply, Fallback: true}})
		return
	}

	reply := h.assistant.Ask(c.Request.Context(), routes, input.Message, lang)
	c.JSON(http.StatusOK, gin.H{"message": reply, "language": lang})
}
