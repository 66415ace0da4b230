// ABOUTME: BMI engine: unit conversion, computation, classification
// ABOUTME: Pure functions over numeric inputs, independent of any presentation layer

package bmi

import (
	"fmt"
	"math"

	"github.com/harper/bmi/internal/models"
)

// Category thresholds. Each is the inclusive lower bound of the next band.
const (
	NormalMin     = 18.5
	OverweightMin = 25.0
	ObeseMin      = 30.0

	// IdealMax is the upper BMI used for the ideal weight range.
	IdealMax = 24.9
)

// RawInput holds the user-entered numbers before unit conversion.
// Only the fields relevant to the active unit system are read.
type RawInput struct {
	HeightCm float64 `json:"height_cm,omitempty"`
	HeightFt float64 `json:"height_ft,omitempty"`
	HeightIn float64 `json:"height_in,omitempty"`
	Weight   float64 `json:"weight"`
}

// ConvertToMetric converts raw input to a Measurement in meters and kilograms.
// It never fails; a non-positive field simply yields an invalid Measurement.
func ConvertToMetric(unit models.UnitSystem, raw RawInput) models.Measurement {
	if unit == models.Imperial {
		totalInches := raw.HeightFt*12 + raw.HeightIn
		return models.Measurement{
			HeightMeters: totalInches * models.MetersPerInch,
			WeightKg:     raw.Weight * models.KgPerLb,
		}
	}
	return models.Measurement{
		HeightMeters: raw.HeightCm / 100,
		WeightKg:     raw.Weight,
	}
}

// HasValidInputs reports whether raw input is complete enough for an automatic
// recalculation. Imperial inches are optional.
func HasValidInputs(unit models.UnitSystem, raw RawInput) bool {
	if unit == models.Imperial {
		return raw.HeightFt > 0 && raw.Weight > 0
	}
	return raw.HeightCm > 0 && raw.Weight > 0
}

// Compute calculates BMI for a measurement.
// Returns ErrInvalidInput if height or weight is not strictly positive, or if
// the measurement is so extreme that the BMI or ideal range is not a positive
// finite number.
func Compute(m models.Measurement) (models.Result, error) {
	if !m.Valid() {
		return models.Result{}, fmt.Errorf("%w: height %.4g m, weight %.4g kg", ErrInvalidInput, m.HeightMeters, m.WeightKg)
	}

	value := m.WeightKg / (m.HeightMeters * m.HeightMeters)
	low, high := IdealWeightRange(m.HeightMeters)
	if !positiveFinite(value) || !positiveFinite(low) || !positiveFinite(high) {
		return models.Result{}, fmt.Errorf("%w: height %.4g m, weight %.4g kg out of range", ErrInvalidInput, m.HeightMeters, m.WeightKg)
	}
	return models.Result{
		Value:       value,
		Category:    Classify(value),
		IdealLowKg:  low,
		IdealHighKg: high,
	}, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Classify maps a BMI value to its category. Boundary values belong to the higher band.
func Classify(value float64) models.Category {
	switch {
	case value < NormalMin:
		return models.CategoryAt(models.Underweight)
	case value < OverweightMin:
		return models.CategoryAt(models.Normal)
	case value < ObeseMin:
		return models.CategoryAt(models.Overweight)
	default:
		return models.CategoryAt(models.Obese)
	}
}

// IdealWeightRange returns the weight range in kg that keeps the given height
// inside the Normal band.
func IdealWeightRange(heightMeters float64) (lowKg, highKg float64) {
	h2 := heightMeters * heightMeters
	return NormalMin * h2, IdealMax * h2
}

// ProgressBarPosition maps a BMI onto a 0-100 scale for the visual indicator.
// The Normal and Overweight bands are drawn at their own width; everything
// above 30 is compressed into the remaining 70%.
func ProgressBarPosition(value float64) float64 {
	var pos float64
	switch {
	case value < NormalMin:
		pos = math.Min(value/NormalMin*NormalMin, NormalMin)
	case value < OverweightMin:
		pos = NormalMin + (value-NormalMin)/(OverweightMin-NormalMin)*6.5
	case value < ObeseMin:
		pos = OverweightMin + (value-OverweightMin)/(ObeseMin-OverweightMin)*5
	default:
		pos = math.Min(ObeseMin+(value-ObeseMin)/20*70, 100)
	}
	if pos < 0 || math.IsNaN(pos) {
		return 0
	}
	return pos
}

// ProgressBand returns the category index (models.Underweight..models.Obese)
// drawn at pos on the 0-100 progress scale.
func ProgressBand(pos float64) int {
	switch {
	case pos < NormalMin:
		return models.Underweight
	case pos < OverweightMin:
		return models.Normal
	case pos < ObeseMin:
		return models.Overweight
	default:
		return models.Obese
	}
}

// KgToLbs converts kilograms to pounds for display.
func KgToLbs(kg float64) float64 {
	return kg * models.LbsPerKg
}
