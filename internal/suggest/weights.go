package suggest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the single table of scoring contributions. Negative values
// down-weight without excluding an item.
type Weights struct {
	GoalMatch         float64 `yaml:"goal_match"`
	DurationExact     float64 `yaml:"duration_exact"`
	DurationNear      float64 `yaml:"duration_near"`
	EquipmentMatch    float64 `yaml:"equipment_match"`
	EquipmentMismatch float64 `yaml:"equipment_mismatch"`
	EnergyLowEasy     float64 `yaml:"energy_low_easy"`
	EnergyLowShort    float64 `yaml:"energy_low_short"`
	EnergyLowHard     float64 `yaml:"energy_low_hard"`
	EnergyHighHard    float64 `yaml:"energy_high_hard"`
	EnergyHighLong    float64 `yaml:"energy_high_long"`
	MoodLow           float64 `yaml:"mood_low"`
	MoodHigh          float64 `yaml:"mood_high"`
	Novelty           float64 `yaml:"novelty"`
}

func DefaultWeights() Weights {
	return Weights{
		GoalMatch:         40,
		DurationExact:     25,
		DurationNear:      10,
		EquipmentMatch:    20,
		EquipmentMismatch: -10,
		EnergyLowEasy:     10,
		EnergyLowShort:    5,
		EnergyLowHard:     -10,
		EnergyHighHard:    8,
		EnergyHighLong:    4,
		MoodLow:           5,
		MoodHigh:          5,
		Novelty:           5,
	}
}

// LoadWeights reads a YAML weight table from path. Keys missing from the
// file keep their default values. An empty path returns the defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("reading weights file: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("parsing weights file %s: %w", path, err)
	}
	return w, nil
}
