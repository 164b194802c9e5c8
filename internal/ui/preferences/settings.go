package preferences

import (
	"time"

	"burnwatch/internal/core/model"
)

// Settings defines the wearer profile and budget stored on disk.
type Settings struct {
	WeightKg float64
	AgeYears float64
	Gender   model.Gender

	UpdateInterval time.Duration
	BudgetBTU      float64
}

// DefaultSettings returns default settings for BurnWatch.
func DefaultSettings() Settings {
	profile := model.DefaultProfile()
	config := model.DefaultMonitorConfig()
	return Settings{
		WeightKg:       profile.WeightKg,
		AgeYears:       profile.AgeYears,
		Gender:         profile.Gender,
		UpdateInterval: config.UpdateInterval,
		BudgetBTU:      config.BudgetBTU,
	}
}

// MonitorConfig converts settings to a MonitorConfig.
func (settings Settings) MonitorConfig() model.MonitorConfig {
	config := model.DefaultMonitorConfig()
	config.Profile = model.PersonProfile{
		WeightKg: settings.WeightKg,
		AgeYears: settings.AgeYears,
		Gender:   settings.Gender,
	}
	config.UpdateInterval = settings.UpdateInterval
	config.BudgetBTU = settings.BudgetBTU
	return config
}
