package fund

import (
	"math"
	"time"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

// ComputeProgress returns totalFunds/targetAmount as a percentage rounded to two decimals.
// A zero (or negative) target yields 0.
func ComputeProgress(s Summary) float64 {
	if s.TargetAmount <= 0 {
		return 0
	}
	p := s.TotalFunds / s.TargetAmount * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return core.Round(p, 2)
}

// FormatProgress renders the progress with one decimal: "49.2%".
func FormatProgress(s Summary) string {
	return core.FormatPercent(ComputeProgress(s))
}

// DeriveStatus computes a month's status from its amounts and due date as of today.
func DeriveStatus(actual, fixed float64, due, today time.Time) PaymentStatus {
	switch {
	case actual >= fixed:
		return StatusPaid
	case today.After(endOfDay(due)):
		return StatusOverdue
	case today.Year() == due.Year() && today.Month() == due.Month():
		return StatusDue
	default:
		return StatusUpcoming
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// OffersTopUp reports whether additional contributions can still be made for a month in status.
func OffersTopUp(status PaymentStatus) bool {
	return status != StatusPaid
}

// Tier buckets a consistency percentage: >= 95 high, >= 85 medium, otherwise low.
func Tier(consistency int) ConsistencyTier {
	switch {
	case consistency >= 95:
		return TierHigh
	case consistency >= 85:
		return TierMedium
	default:
		return TierLow
	}
}

// withPercents fills every share's Percent from its value, rounded to two decimals.
func withPercents(shares []Share) []Share {
	var total float64
	for _, s := range shares {
		total += s.Value
	}
	for i := range shares {
		if total > 0 {
			shares[i].Percent = core.Round(shares[i].Value/total*100, 2)
		} else {
			shares[i].Percent = 0
		}
	}
	return shares
}
