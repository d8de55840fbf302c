package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
defaults:
  content_type: workout
  equipment: bodyweight
items:
  - id: hiit-20
    name: Fat Burner HIIT
    category: hiit
    difficulty: advanced
    duration_min: 20
    created_at: "2025-03-01"
  - name: Gentle Flow
    category: yoga
    difficulty: beginner
    duration_min: 25
    hidden: true
  - type: program
    name: Barbell Basics
    category: strength
    duration_min: 45
    equipment: equipment
    premium: true
`

var convertNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoadCatalogSchema_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	schema, err := LoadCatalogSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Items, 3)
	require.NotNil(t, schema.Defaults)
	assert.Equal(t, "workout", schema.Defaults.ContentType)
	assert.Empty(t, ValidateCatalogSchema(schema))
}

func TestParseCatalogSchema_JSON(t *testing.T) {
	schema, err := ParseCatalogSchema([]byte(`{"items":[{"type":"workout","name":"Run","category":"cardio","duration_min":30}]}`))
	require.NoError(t, err)
	require.Len(t, schema.Items, 1)
	assert.Equal(t, 30, schema.Items[0].DurationMin)
}

func TestParseCatalogSchema_Malformed(t *testing.T) {
	_, err := ParseCatalogSchema([]byte("items: [oops"))
	assert.Error(t, err)
}

func TestConvert_AppliesDefaultsAndFlags(t *testing.T) {
	schema, err := ParseCatalogSchema([]byte(sampleCatalog))
	require.NoError(t, err)

	items, err := Convert(schema, convertNow)
	require.NoError(t, err)
	require.Len(t, items, 3)

	hiit := items[0]
	assert.Equal(t, "hiit-20", hiit.ID)
	assert.Equal(t, domain.ContentWorkout, hiit.ContentType)
	assert.Equal(t, domain.DifficultyAdvanced, hiit.Difficulty)
	assert.Equal(t, domain.EquipmentBodyweight, hiit.Equipment)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), hiit.CreatedAt)
	assert.True(t, hiit.IsVisible)

	yoga := items[1]
	assert.NotEmpty(t, yoga.ID)
	assert.False(t, yoga.IsVisible)
	assert.Equal(t, convertNow, yoga.CreatedAt)

	program := items[2]
	assert.Equal(t, domain.ContentProgram, program.ContentType)
	assert.Equal(t, domain.DifficultyIntermediate, program.Difficulty)
	assert.Equal(t, domain.EquipmentRequired, program.Equipment)
	assert.True(t, program.IsPremium)
}
