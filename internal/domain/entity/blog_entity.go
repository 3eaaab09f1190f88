package entity

import "time"

// Blog categories shown in the post composer. "I'm Feeling Lucky"
// in the UI maps to Inspiration.
const (
	CategoryTechnology  = "Technology"
	CategoryLifestyle   = "Lifestyle"
	CategoryInspiration = "Inspiration"
)

// ValidCategory reports whether s is one of the known blog categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryTechnology, CategoryLifestyle, CategoryInspiration:
		return true
	}
	return false
}

// Blog is a single post. User references the owning account; it is set
// at creation and never changes afterwards.
type Blog struct {
	ID         string    `json:"_id"`
	User       string    `json:"user"`
	Title      string    `json:"title"`
	Caption    string    `json:"caption"`
	Desc       string    `json:"desc"`
	Pic        string    `json:"pic,omitempty"`
	Category   string    `json:"category"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
