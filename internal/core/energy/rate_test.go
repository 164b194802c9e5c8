package energy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"burnwatch/internal/core/model"
)

func TestMetabolicRateKJPerHour_Male(t *testing.T) {
	profile := model.PersonProfile{WeightKg: 70, AgeYears: 25, Gender: model.GenderMale}

	rate := MetabolicRateKJPerHour(120, profile)

	// -55.0969 + 75.708 + 13.916 + 5.0425
	assert.InDelta(t, 39.57, rate, 0.005)
}

func TestMetabolicRateKJPerHour_Female(t *testing.T) {
	profile := model.PersonProfile{WeightKg: 70, AgeYears: 25, Gender: model.GenderFemale}

	rate := MetabolicRateKJPerHour(150, profile)

	// -20.4022 + 67.08 - 8.841 + 1.85
	assert.InDelta(t, 39.69, rate, 0.005)
}

func TestMetabolicRateKJPerHour_NotClamped(t *testing.T) {
	profile := model.PersonProfile{WeightKg: 70, AgeYears: 25, Gender: model.GenderMale}

	assert.Less(t, MetabolicRateKJPerHour(10, profile), 0.0)
}

func TestRateForAverage_NoDataShortCircuits(t *testing.T) {
	profile := model.DefaultProfile()

	assert.Equal(t, 0.0, RateForAverage(0, profile))
	assert.Equal(t, 0.0, RateForAverage(-12, profile))
	assert.Equal(t, MetabolicRateKJPerHour(90, profile), RateForAverage(90, profile))
}

func TestTickEnergyKJ(t *testing.T) {
	assert.Equal(t, (72.0/3600)*20, TickEnergyKJ(72, 20*time.Second))
	assert.Equal(t, 0.0, TickEnergyKJ(0, 20*time.Second))
}

func TestWarningThreshold_IsTenPercentOfBudget(t *testing.T) {
	assert.Equal(t, 5275.0, BudgetKJ(5000))
	assert.Equal(t, 527.5, WarningThresholdKJ(5000))

	assert.True(t, ThresholdReached(527.5, 5000))
	assert.True(t, ThresholdReached(600, 5000))
	assert.False(t, ThresholdReached(math.Nextafter(527.5, 0), 5000))
	assert.False(t, ThresholdReached(0, 5000))
}

func TestTickEnergy_MonotonicForNonNegativeRates(t *testing.T) {
	profile := model.PersonProfile{WeightKg: 80, AgeYears: 40, Gender: model.GenderMale}

	cumulative := 0.0
	for _, avg := range []float64{0, 95, 120, 0, 160, 140} {
		rate := RateForAverage(avg, profile)
		if rate < 0 {
			continue
		}
		next := cumulative + TickEnergyKJ(rate, 20*time.Second)
		assert.GreaterOrEqual(t, next, cumulative)
		cumulative = next
	}
}
