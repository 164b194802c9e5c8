// Package energy holds the heart-rate based energy expenditure math.
package energy

import (
	"time"

	"burnwatch/internal/core/model"
)

// KJPerBTU converts British thermal units to kilojoules.
const KJPerBTU = 1.055

// warningMargin is subtracted from the budget as a fraction of itself.
// The warning therefore fires at 10% of the converted budget.
const warningMargin = 0.9

// MetabolicRateKJPerHour evaluates the linear heart-rate energy estimate.
// The result is not clamped and can be negative for low heart rates.
func MetabolicRateKJPerHour(avgHR float64, profile model.PersonProfile) float64 {
	if profile.Gender == model.GenderMale {
		return -55.0969 + 0.6309*avgHR + 0.1988*profile.WeightKg + 0.2017*profile.AgeYears
	}
	return -20.4022 + 0.4472*avgHR - 0.1263*profile.WeightKg + 0.074*profile.AgeYears
}

// RateForAverage returns the energy rate for a window average.
// A non-positive average means no usable data and yields 0 without
// evaluating the formula.
func RateForAverage(avgHR float64, profile model.PersonProfile) float64 {
	if avgHR <= 0 {
		return 0
	}
	return MetabolicRateKJPerHour(avgHR, profile)
}

// TickEnergyKJ converts an hourly rate into the energy spent during width.
func TickEnergyKJ(rateKJPerHour float64, width time.Duration) float64 {
	return (rateKJPerHour / 3600) * width.Seconds()
}

// BudgetKJ converts a BTU budget to kilojoules.
func BudgetKJ(budgetBTU float64) float64 {
	return budgetBTU * KJPerBTU
}

// WarningThresholdKJ returns the cumulative energy at which the warning fires.
func WarningThresholdKJ(budgetBTU float64) float64 {
	maxKJ := BudgetKJ(budgetBTU)
	return maxKJ - maxKJ*warningMargin
}

// ThresholdReached reports whether cumulativeKJ has hit the warning threshold.
func ThresholdReached(cumulativeKJ, budgetBTU float64) bool {
	return cumulativeKJ >= WarningThresholdKJ(budgetBTU)
}
