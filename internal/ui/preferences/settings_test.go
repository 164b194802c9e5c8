package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"burnwatch/internal/core/model"
)

func TestDefaultSettings_MatchMonitorDefaults(t *testing.T) {
	assert.Equal(t, model.DefaultMonitorConfig(), DefaultSettings().MonitorConfig())
}

func TestMonitorConfig_CarriesProfileAndBudget(t *testing.T) {
	settings := Settings{
		WeightKg:       90,
		AgeYears:       52,
		Gender:         model.GenderMale,
		UpdateInterval: 10 * time.Second,
		BudgetBTU:      12000,
	}

	config := settings.MonitorConfig()

	assert.Equal(t, model.PersonProfile{WeightKg: 90, AgeYears: 52, Gender: model.GenderMale}, config.Profile)
	assert.Equal(t, 10*time.Second, config.UpdateInterval)
	assert.Equal(t, 12000.0, config.BudgetBTU)
	assert.Equal(t, 20*time.Second, config.Retention)
	assert.Equal(t, 50, config.MinConfidence)
}

func TestParsePositiveFloat(t *testing.T) {
	value, ok := parsePositiveFloat(" 72.5 ")
	assert.True(t, ok)
	assert.Equal(t, 72.5, value)

	_, ok = parsePositiveFloat("0")
	assert.False(t, ok)
	_, ok = parsePositiveFloat("heavy")
	assert.False(t, ok)
}
