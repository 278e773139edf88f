// Package earnings contains the pure payment-model evaluation logic.
// Functions here have no side effects and perform no I/O.
package earnings

import (
	"math"
	"time"

	"github.com/example/shiftledger/internal/models"
)

// ReferenceShiftHours is the full-shift length used for pro-rata estimation.
const ReferenceShiftHours = 24.0

// Compute derives a shift's monetary value from a hospital's payment
// configuration and the shift inputs.
//
// A positive customRate overrides all other computation regardless of the
// payment model. A nil hospital or an unrecognized payment model yields 0.
// Negative or out-of-range counts are not rejected here; clamping is the
// caller's responsibility.
func Compute(hospital *models.Hospital, casesCount int, customRate float64, itemCounts map[string]int) float64 {
	if hospital == nil {
		return 0
	}

	if customRate > 0 {
		return customRate
	}

	switch hospital.PaymentModel {
	case models.PaymentFixed:
		return hospital.FixedRate
	case models.PaymentPerPatient:
		return float64(casesCount) * hospital.PerPatientRate
	case models.PaymentMixed:
		return hospital.FixedRate + float64(casesCount)*hospital.PerPatientRate
	case models.PaymentDetailed:
		total := hospital.FixedSalary
		for _, item := range hospital.ItemRates {
			total += float64(itemCounts[item.ID]) * item.Rate
		}
		return total
	default:
		// Unknown models fall back to zero rather than erroring.
		return 0
	}
}

// DurationHours computes the elapsed hours between two "HH:MM" wall-clock
// times, rounded to two decimal places. A non-positive raw difference is
// treated as spanning midnight and wraps by 24 hours.
func DurationHours(start, end string) (float64, error) {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return 0, err
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return 0, err
	}

	hours := endAt.Sub(startAt).Hours()
	if hours <= 0 {
		hours += 24
	}
	return math.Round(hours*100) / 100, nil
}

// ProRata estimates the value of a shift shorter than the full reference
// shift. The result is advisory: callers decide whether to apply it as a
// custom rate override.
func ProRata(fullAmount, hours float64) float64 {
	return math.Round(fullAmount / ReferenceShiftHours * hours)
}
