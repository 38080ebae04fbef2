package models

// Category is a catalog category from the commerce API.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId,omitempty"` // Use pointer for root categories

	// Virtual Field - Used for constructing the Tree View in the UI
	Children []Category `json:"children,omitempty"`
}
