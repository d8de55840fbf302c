package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
)

const maxDurationMin = 240

// ValidateCatalogSchema checks the schema before conversion and returns
// every problem found, not just the first.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	if len(schema.Items) == 0 {
		errs = append(errs, fmt.Errorf("items: at least one item is required"))
	}
	errs = append(errs, validateDefaults(schema.Defaults)...)

	ids := make(map[string]bool)
	for i, it := range schema.Items {
		errs = append(errs, validateItem(i, it, schema.Defaults, ids)...)
	}
	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.ContentType != "" && !domain.ContentType(d.ContentType).Valid() {
		errs = append(errs, fmt.Errorf("defaults.content_type: invalid value %q", d.ContentType))
	}
	if d.Difficulty != "" && !domain.Difficulty(d.Difficulty).Valid() {
		errs = append(errs, fmt.Errorf("defaults.difficulty: invalid value %q", d.Difficulty))
	}
	if d.Equipment != "" && !domain.Equipment(d.Equipment).Valid() {
		errs = append(errs, fmt.Errorf("defaults.equipment: invalid value %q", d.Equipment))
	}
	return errs
}

func validateItem(i int, it ItemImport, d *DefaultsImport, ids map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("items[%d]", i)
	if it.Name != "" {
		prefix = fmt.Sprintf("items[%d] (%s)", i, it.Name)
	}

	if it.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if it.ID != "" {
		if ids[it.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, it.ID))
		}
		ids[it.ID] = true
	}

	if it.Category == "" {
		errs = append(errs, fmt.Errorf("%s.category is required", prefix))
	} else if !domain.ValidCategories[it.Category] {
		errs = append(errs, fmt.Errorf("%s.category: unknown category %q", prefix, it.Category))
	}

	if it.DurationMin <= 0 || it.DurationMin > maxDurationMin {
		errs = append(errs, fmt.Errorf("%s.duration_min must be between 1 and %d, got %d", prefix, maxDurationMin, it.DurationMin))
	}

	if it.Type != "" && !domain.ContentType(it.Type).Valid() {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, it.Type))
	} else if it.Type == "" && (d == nil || d.ContentType == "") {
		errs = append(errs, fmt.Errorf("%s.type is required when defaults.content_type is unset", prefix))
	}
	if it.Difficulty != "" && !domain.Difficulty(it.Difficulty).Valid() {
		errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", prefix, it.Difficulty))
	}
	if it.Equipment != "" && !domain.Equipment(it.Equipment).Valid() {
		errs = append(errs, fmt.Errorf("%s.equipment: invalid value %q", prefix, it.Equipment))
	}

	if it.CreatedAt != nil {
		if _, err := parseCreatedAt(*it.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.created_at: invalid date %q (expected YYYY-MM-DD or RFC3339)", prefix, *it.CreatedAt))
		}
	}
	return errs
}

func parseCreatedAt(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
