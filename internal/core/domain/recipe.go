package domain

import "time"

// Recipe is owned by the user referenced in AuthorID. Deleting a user does not
// cascade to their recipes.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Image        string    `json:"image,omitempty"`
	AuthorID     string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID authored the recipe.
func (r *Recipe) OwnedBy(userID string) bool {
	return userID != "" && r.AuthorID == userID
}
