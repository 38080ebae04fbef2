package models

// StoreSettings are the store-wide settings served by the commerce API.
type StoreSettings struct {
	StoreName     string            `json:"storeName"`
	Currency      string            `json:"currency"`
	MinStock      *int              `json:"minStock,omitempty"` // Overrides the configured threshold when set
	ContactEmail  string            `json:"contactEmail"`
	ContactPhone  string            `json:"contactPhone"`
	SocialLinks   map[string]string `json:"socialLinks,omitempty"`
	Announcement  string            `json:"announcement,omitempty"`
	FreeShipping  *string           `json:"freeShippingThreshold,omitempty"`
	SupportedLang []string          `json:"supportedLocales,omitempty"`
}

// Page is an informational page (about, privacy, terms, ...).
type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"` // HTML authored in the commerce back office
}
