package model

import "time"

// Gender selects the coefficient set of the metabolic-rate estimate.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

// String returns the settings-file spelling of the gender.
func (gender Gender) String() string {
	if gender == GenderMale {
		return "male"
	}
	return "female"
}

// PersonProfile holds the wearer coefficients used by the energy estimate.
type PersonProfile struct {
	WeightKg float64
	AgeYears float64
	Gender   Gender
}

// MonitorConfig contains runtime settings for the Monitor state machine.
type MonitorConfig struct {
	Profile PersonProfile

	UpdateInterval time.Duration
	BudgetBTU      float64

	Retention      time.Duration
	MinConfidence  int
	AverageSamples int

	BrightnessInterval time.Duration
	ActiveBrightness   float64
	IdleBrightness     float64

	ButtonDebounce time.Duration
}

// DefaultProfile returns the profile used when no settings file exists.
func DefaultProfile() PersonProfile {
	return PersonProfile{
		WeightKg: 70,
		AgeYears: 25,
		Gender:   GenderFemale,
	}
}

// DefaultMonitorConfig returns the stock watch-app tunables.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Profile:            DefaultProfile(),
		UpdateInterval:     20 * time.Second,
		BudgetBTU:          5000,
		Retention:          20 * time.Second,
		MinConfidence:      50,
		AverageSamples:     20,
		BrightnessInterval: 5 * time.Second,
		ActiveBrightness:   1,
		IdleBrightness:     0.1,
		ButtonDebounce:     50 * time.Millisecond,
	}
}
