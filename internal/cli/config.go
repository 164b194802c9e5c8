package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"burnwatch/internal/core/model"
	"burnwatch/internal/storage"
	"burnwatch/internal/ui/preferences"
)

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing settings file with defaults."`
}

func (c *ConfigInitCmd) Run(ctx *Context) error {
	path := storage.SettingsPath(ctx.ConfigDir)
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("settings already exist at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to access settings: %w", err)
	}

	if err := storage.SaveSettings(ctx.ConfigDir, preferences.DefaultSettings()); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Wrote settings to %s\n", path)
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	serialized, err := storage.MarshalSettings(settings)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "# %s\n", storage.SettingsPath(ctx.ConfigDir))
	_, err = ctx.Out.Write(serialized)
	return err
}

type ConfigSetCmd struct {
	Weight   *float64 `help:"Body weight in kilograms."`
	Age      *float64 `help:"Age in years."`
	Gender   *string  `help:"Gender used by the metabolic formula (male or female)."`
	Budget   *float64 `help:"Energy budget in BTU."`
	Interval *int     `help:"Seconds between energy updates."`
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	updated := false
	if c.Weight != nil {
		if *c.Weight <= 0 {
			return fmt.Errorf("weight must be positive")
		}
		settings.WeightKg = *c.Weight
		updated = true
	}
	if c.Age != nil {
		if *c.Age <= 0 {
			return fmt.Errorf("age must be positive")
		}
		settings.AgeYears = *c.Age
		updated = true
	}
	if c.Gender != nil {
		switch strings.ToLower(strings.TrimSpace(*c.Gender)) {
		case "male", "m":
			settings.Gender = model.GenderMale
		case "female", "f":
			settings.Gender = model.GenderFemale
		default:
			return fmt.Errorf("gender must be male or female, got %q", *c.Gender)
		}
		updated = true
	}
	if c.Budget != nil {
		if *c.Budget <= 0 {
			return fmt.Errorf("budget must be positive")
		}
		settings.BudgetBTU = *c.Budget
		updated = true
	}
	if c.Interval != nil {
		if *c.Interval <= 0 {
			return fmt.Errorf("interval must be positive")
		}
		settings.UpdateInterval = time.Duration(*c.Interval) * time.Second
		updated = true
	}

	if !updated {
		fmt.Fprintln(ctx.Out, "No changes specified. Use 'config show' to view settings or flags to update them.")
		return nil
	}
	if err := storage.SaveSettings(ctx.ConfigDir, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(ctx.Out, "Settings updated successfully.")
	return nil
}
