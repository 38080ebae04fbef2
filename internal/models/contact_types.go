package models

import "time"

// ContactMessage is the model for the 'contact_messages' table
type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Locale    string    `json:"locale" db:"locale"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewsletterSubscription is the model for the 'newsletter_subscriptions' table
type NewsletterSubscription struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Locale    string    `json:"locale" db:"locale"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
