package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/01moynul/taptosell-storefront/internal/middleware"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/gin-gonic/gin"
)

// GetPage is the handler for GET /v1/pages/:slug
func (h *Handlers) GetPage(c *gin.Context) {
	pageSlug, ok := cleanSlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	api := h.api(c)
	page, err := fetchCached(c.Request.Context(), h.Cache, cache.Key("page", api.Locale(), pageSlug), func(ctx context.Context) (models.Page, error) {
		return api.GetPage(ctx, pageSlug)
	})
	if err != nil {
		respondCommerceError(c, err, "Page not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// ContactInput defines the JSON for the contact form.
type ContactInput struct {
	Name    string  `json:"name" binding:"required,max=120"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" binding:"required,max=200"`
	Message string  `json:"message" binding:"required,max=5000"`
}

// SubmitContact is the handler for POST /v1/contact
func (h *Handlers) SubmitContact(c *gin.Context) {
	if h.Contacts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not available"})
		return
	}

	// 1. --- Bind & Validate JSON ---
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Save Message ---
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Locale:  middleware.GetLocale(c).Code,
	}
	if err := h.Contacts.SaveMessage(c.Request.Context(), msg); err != nil {
		log.Printf("contact form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message received",
		"id":      msg.ID,
	})
}

// NewsletterInput defines the JSON for a newsletter sign-up.
type NewsletterInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe is the handler for POST /v1/newsletter
func (h *Handlers) Subscribe(c *gin.Context) {
	if h.Newsletter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Newsletter is not available"})
		return
	}

	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	created, err := h.Newsletter.Subscribe(c.Request.Context(), input.Email, middleware.GetLocale(c).Code)
	if err != nil {
		log.Printf("newsletter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": "Subscribed"})
}
