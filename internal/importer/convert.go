package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated CatalogSchema into content items ready for
// persistence. Call ValidateCatalogSchema first.
func Convert(schema *CatalogSchema, now time.Time) ([]*domain.ContentItem, error) {
	d := DefaultsImport{}
	if schema.Defaults != nil {
		d = *schema.Defaults
	}

	items := make([]*domain.ContentItem, 0, len(schema.Items))
	for i, it := range schema.Items {
		createdAt := now.UTC()
		if it.CreatedAt != nil {
			t, err := parseCreatedAt(*it.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("items[%d].created_at: %w", i, err)
			}
			createdAt = t.UTC()
		}

		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}

		items = append(items, &domain.ContentItem{
			ID:          id,
			ContentType: domain.ContentType(firstNonEmpty(it.Type, d.ContentType)),
			Name:        it.Name,
			Category:    it.Category,
			Difficulty:  domain.Difficulty(firstNonEmpty(it.Difficulty, d.Difficulty, string(domain.DifficultyIntermediate))),
			DurationMin: it.DurationMin,
			Equipment:   domain.Equipment(firstNonEmpty(it.Equipment, d.Equipment, string(domain.EquipmentBodyweight))),
			Format:      firstNonEmpty(it.Format, d.Format),
			ImageURL:    it.ImageURL,
			Description: it.Description,
			IsPremium:   it.Premium,
			IsVisible:   !it.Hidden,
			CreatedAt:   createdAt,
		})
	}
	return items, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
