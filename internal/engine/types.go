package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntervalStatus marks whether an interval still occupies its dates.
type IntervalStatus string

const (
	IntervalActive    IntervalStatus = "active"
	IntervalCancelled IntervalStatus = "cancelled"
)

// Interval is a closed date range occupied by a booking or an admin block.
// Both Start and End days are occupied; the first day available again is
// End + 1 day.
type Interval struct {
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status IntervalStatus `json:"status"`
}

// Occupies reports whether day d falls inside the interval. Cancelled
// intervals never occupy anything.
func (iv Interval) Occupies(d time.Time) bool {
	if iv.Status == IntervalCancelled {
		return false
	}
	day := Midnight(d)
	return !day.Before(Midnight(iv.Start)) && !day.After(Midnight(iv.End))
}

// Mode classifies how a requested stay relates to the surrounding intervals.
type Mode string

const (
	// ModeStandard means the requested duration fits without any special
	// accommodation.
	ModeStandard Mode = "standard"
	// ModeGapFilling means the stay is bounded by an upcoming interval and
	// fits (possibly shortened) into the gap before it.
	ModeGapFilling Mode = "gap-filling"
	// ModeAutoExtended means no upcoming interval bounds the stay, so the
	// duration may grow to reach a better discount tier.
	ModeAutoExtended Mode = "auto-extended"
)

// RangeCheck is the result of testing a candidate range against a studio's
// occupied intervals.
type RangeCheck struct {
	IsValid      bool       `json:"isValid"`
	ConflictDate *time.Time `json:"conflictDate"`
}

// Availability describes the contiguous free run starting at a candidate
// date. When Unbounded is true no upcoming interval limits the stay;
// MaxAvailableDays then holds the configured cap so JSON consumers still
// receive a number, but the flag is authoritative.
type Availability struct {
	MaxAvailableDays int  `json:"maxAvailableDays"`
	Unbounded        bool `json:"unbounded"`
	Mode             Mode `json:"mode"`
	// RecommendedDays is the duration the resolver suggests: the requested
	// duration shortened to fit a gap, or stretched to the next discount
	// breakpoint when unbounded. Zero means no recommendation.
	RecommendedDays int `json:"recommendedDays,omitempty"`
}

// CleaningRateType says which billing period the cleaning fee used.
type CleaningRateType string

const (
	CleaningWeekly  CleaningRateType = "weekly"
	CleaningMonthly CleaningRateType = "monthly"
)

// PriceBreakdown is the priced result for a stay. TotalPrice already
// includes the cleaning fee; the fee stays broken out for display.
type PriceBreakdown struct {
	TotalPrice       decimal.Decimal  `json:"totalPrice"`
	OriginalPrice    decimal.Decimal  `json:"originalPrice"`
	Days             int              `json:"days"`
	Savings          decimal.Decimal  `json:"savings"`
	SavingsPercent   int              `json:"savingsPercent"`
	CleaningFee      decimal.Decimal  `json:"cleaningFee"`
	CleaningPeriods  int              `json:"cleaningPeriods,omitempty"`
	CleaningRateType CleaningRateType `json:"cleaningRateType,omitempty"`
}

// Midnight truncates t to its calendar day in UTC. Every date the engine
// compares goes through here so "same day" never depends on clock time or
// zone.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}
