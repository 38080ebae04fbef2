package handlers

import (
	"log"
	"net/http"

	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ChatInput defines the structure of the JSON request body.
type ChatInput struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// ChatAssistant handles a shopper question for the AI assistant.
func (h *Handlers) ChatAssistant(c *gin.Context) {
	if h.Assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not available"})
		return
	}

	// 1. Parse Input
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Call the Assistant
	// The catalog search runs against the locale-scoped commerce client.
	locale := middleware.GetLocale(c).Code
	reply, tokens, err := h.Assistant.Answer(c.Request.Context(), h.api(c), locale, input.Message)
	if err != nil {
		log.Printf("assistant: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant unavailable"})
		return
	}

	// 3. Return the Answer
	c.JSON(http.StatusOK, gin.H{
		"response":   reply,
		"tokensUsed": tokens,
	})
}
