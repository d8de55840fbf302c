package domain

import "time"

// ContentItem is one workout or program in the content catalog.
type ContentItem struct {
	ID          string
	ContentType ContentType
	Name        string
	Category    string
	Difficulty  Difficulty
	DurationMin int
	Equipment   Equipment
	Format      string
	ImageURL    string
	Description string
	IsPremium   bool
	IsVisible   bool
	CreatedAt   time.Time
}

// IsHighIntensity reports whether the item is hard enough to warrant an
// overtraining caution.
func (c ContentItem) IsHighIntensity() bool {
	return c.Difficulty == DifficultyAdvanced || c.Category == "hiit"
}
