package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burnwatch/internal/core/model"
	"burnwatch/internal/storage"
)

func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Context{ConfigDir: t.TempDir(), Out: &out}, &out
}

func TestConfigInitCmd(t *testing.T) {
	ctx, out := newTestContext(t)

	require.NoError(t, (&ConfigInitCmd{}).Run(ctx))
	assert.FileExists(t, storage.SettingsPath(ctx.ConfigDir))
	assert.Contains(t, out.String(), "Wrote settings to")

	err := (&ConfigInitCmd{}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, (&ConfigInitCmd{Force: true}).Run(ctx))
}

func TestConfigSetCmd(t *testing.T) {
	ctx, out := newTestContext(t)
	weight := 82.5
	gender := "male"
	interval := 10

	require.NoError(t, (&ConfigSetCmd{Weight: &weight, Gender: &gender, Interval: &interval}).Run(ctx))
	assert.Contains(t, out.String(), "Settings updated successfully.")

	settings, err := storage.LoadSettings(ctx.ConfigDir)
	require.NoError(t, err)
	assert.Equal(t, 82.5, settings.WeightKg)
	assert.Equal(t, model.GenderMale, settings.Gender)
	assert.Equal(t, 10*time.Second, settings.UpdateInterval)
	assert.Equal(t, 25.0, settings.AgeYears)
	assert.Equal(t, 5000.0, settings.BudgetBTU)
}

func TestConfigSetCmdRejectsNonPositive(t *testing.T) {
	ctx, _ := newTestContext(t)
	budget := 0.0

	require.Error(t, (&ConfigSetCmd{Budget: &budget}).Run(ctx))
	assert.NoFileExists(t, storage.SettingsPath(ctx.ConfigDir))
}

func TestConfigSetCmdWithoutFlags(t *testing.T) {
	ctx, out := newTestContext(t)

	require.NoError(t, (&ConfigSetCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No changes specified.")
	assert.NoFileExists(t, storage.SettingsPath(ctx.ConfigDir))
}

func TestConfigShowCmd(t *testing.T) {
	ctx, out := newTestContext(t)

	require.NoError(t, (&ConfigShowCmd{}).Run(ctx))
	text := out.String()
	assert.Contains(t, text, "weight_kg: 70")
	assert.Contains(t, text, "gender: female")
	assert.Contains(t, text, "budget_btu: 5000")
	assert.Contains(t, text, "update_interval_seconds: 20")
}

func TestNewSessionSelectsSource(t *testing.T) {
	settings, err := storage.LoadSettings(t.TempDir())
	require.NoError(t, err)

	simulated := (&RunCmd{Source: "sim", SimBPM: 90}).newSession(settings)
	require.NotNil(t, simulated.simulator)
	assert.Equal(t, 90.0, simulated.simulator.BPM())
	simulated.setHeartRate(120)
	assert.Equal(t, 120.0, simulated.simulator.BPM())

	networked := (&RunCmd{Source: "nats", NatsURL: "nats://127.0.0.1:4222", NatsSubject: "ecg.params"}).newSession(settings)
	assert.Nil(t, networked.simulator)
	networked.setHeartRate(120)
	assert.False(t, networked.heartRate.Powered())
}

func TestConfigSetCmdRejectsUnknownGender(t *testing.T) {
	ctx, _ := newTestContext(t)
	gender := "other"

	require.Error(t, (&ConfigSetCmd{Gender: &gender}).Run(ctx))
	assert.NoFileExists(t, storage.SettingsPath(ctx.ConfigDir))
}
