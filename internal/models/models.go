// ABOUTME: Core data models for BMI measurements, results, and history
// ABOUTME: Provides unit system parsing and history entry construction

package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conversion factors between imperial and SI units.
const (
	MetersPerInch = 0.0254
	KgPerLb       = 0.453592
	LbsPerKg      = 2.20462
)

// UnitSystem identifies how raw height and weight values were entered.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem parses a unit system name. Accepts "metric"/"si" and "imperial"/"us".
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	default:
		return "", fmt.Errorf("unknown unit system %q (use 'metric' or 'imperial')", s)
	}
}

// Toggle returns the other unit system.
func (u UnitSystem) Toggle() UnitSystem {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

// Measurement is a height and weight in SI units.
type Measurement struct {
	HeightMeters float64 `json:"height_m"`
	WeightKg     float64 `json:"weight_kg"`
}

// Valid reports whether both fields are finite and strictly positive.
func (m Measurement) Valid() bool {
	return positive(m.HeightMeters) && positive(m.WeightKg)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Result is a computed BMI with its classification.
type Result struct {
	Value       float64  `json:"bmi"`
	Category    Category `json:"category"`
	IdealLowKg  float64  `json:"ideal_low_kg"`
	IdealHighKg float64  `json:"ideal_high_kg"`
}

// HistoryEntry is an immutable record of one explicit calculation.
type HistoryEntry struct {
	ID           uuid.UUID  `json:"id"`
	BMI          float64    `json:"bmi"`
	Category     string     `json:"category"`
	Color        string     `json:"color"`
	Height       string     `json:"height"`
	Weight       string     `json:"weight"`
	CalculatedAt time.Time  `json:"calculated_at"`
	Unit         UnitSystem `json:"unit"`
}

// NewHistoryEntry creates a history entry with generated UUID, formatting height and
// weight in the unit system the calculation was made in.
func NewHistoryEntry(res Result, m Measurement, unit UnitSystem, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		ID:           uuid.New(),
		BMI:          math.Round(res.Value*10) / 10,
		Category:     res.Category.Name,
		Color:        res.Category.Color,
		CalculatedAt: at,
		Unit:         unit,
	}
	if unit == Imperial {
		entry.Height = FormatImperialHeight(m.HeightMeters)
		entry.Weight = fmt.Sprintf("%.1f lbs", m.WeightKg*LbsPerKg)
	} else {
		entry.Height = fmt.Sprintf("%.0f cm", m.HeightMeters*100)
		entry.Weight = fmt.Sprintf("%.1f kg", m.WeightKg)
	}
	return entry
}

// FormatImperialHeight renders meters as feet and inches, e.g. 5' 7".
func FormatImperialHeight(meters float64) string {
	totalInches := meters / MetersPerInch
	feet := int(math.Floor(totalInches / 12))
	inches := int(math.Round(math.Mod(totalInches, 12)))
	if inches == 12 {
		feet++
		inches = 0
	}
	return fmt.Sprintf("%d' %d\"", feet, inches)
}
