package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"burnwatch/internal/core/model"
	"burnwatch/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WeightKg              float64 `yaml:"weight_kg"`
	AgeYears              float64 `yaml:"age_years"`
	Gender                string  `yaml:"gender"`
	UpdateIntervalSeconds int     `yaml:"update_interval_seconds"`
	BudgetBTU             float64 `yaml:"budget_btu"`
}

// SettingsPath returns the settings file inside configDir.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

// LoadSettings reads the wearer profile from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(configDir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(SettingsPath(configDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes the wearer profile to YAML.
func SaveSettings(configDir string, settings preferences.Settings) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(SettingsPath(configDir), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// MarshalSettings renders settings in the file format.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	fileData := yamlSettings{
		WeightKg:              settings.WeightKg,
		AgeYears:              settings.AgeYears,
		Gender:                settings.Gender.String(),
		UpdateIntervalSeconds: int(settings.UpdateInterval / time.Second),
		BudgetBTU:             settings.BudgetBTU,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WeightKg > 0 {
		settings.WeightKg = fileData.WeightKg
	}
	if fileData.AgeYears > 0 {
		settings.AgeYears = fileData.AgeYears
	}
	switch strings.ToLower(strings.TrimSpace(fileData.Gender)) {
	case "male", "m":
		settings.Gender = model.GenderMale
	case "female", "f":
		settings.Gender = model.GenderFemale
	}
	if fileData.UpdateIntervalSeconds > 0 {
		settings.UpdateInterval = time.Duration(fileData.UpdateIntervalSeconds) * time.Second
	}
	if fileData.BudgetBTU > 0 {
		settings.BudgetBTU = fileData.BudgetBTU
	}
}
