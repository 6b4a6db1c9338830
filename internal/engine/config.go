package engine

import "github.com/shopspring/decimal"

// DiscountTier maps a stay length (in rounded months) to a discount
// percentage. A stay matches the last tier whose FromMonths it reaches.
type DiscountTier struct {
	FromMonths int `json:"fromMonths"`
	Percent    int `json:"percent"`
}

// Config carries every business constant the engine needs. The engine never
// reads globals; callers construct one Config and pass it in, which keeps
// the calculations testable independent of site-specific numbers.
type Config struct {
	DiscountTiers []DiscountTier

	// Cleaning service billing: stays shorter than
	// CleaningMonthlyThresholdDays bill in whole weeks, longer stays in
	// whole 30-day months.
	CleaningWeeklyRate           decimal.Decimal
	CleaningMonthlyRate          decimal.Decimal
	CleaningMonthlyThresholdDays int

	// MinBookingDays is the policy minimum stay. The engine itself accepts
	// any positive duration; booking creation enforces the minimum, so gap
	// suggestions below it still reach the caller.
	MinBookingDays int

	// CleaningBufferDays are reserved after each checkout before the unit
	// is bookable again. Applied by callers when building interval lists;
	// the resolver itself is buffer-agnostic.
	CleaningBufferDays int

	// UnboundedCapDays is the numeric stand-in reported for an unbounded
	// run of free days.
	UnboundedCapDays int
}

// DefaultConfig returns the production tier table and billing constants.
func DefaultConfig() Config {
	return Config{
		DiscountTiers: []DiscountTier{
			{FromMonths: 0, Percent: 0},
			{FromMonths: 3, Percent: 5},
			{FromMonths: 6, Percent: 7},
			{FromMonths: 9, Percent: 9},
			{FromMonths: 12, Percent: 11},
			{FromMonths: 15, Percent: 13},
			{FromMonths: 18, Percent: 15},
			{FromMonths: 21, Percent: 17},
			{FromMonths: 24, Percent: 19},
			{FromMonths: 27, Percent: 21},
			{FromMonths: 30, Percent: 23},
			{FromMonths: 33, Percent: 25},
		},
		CleaningWeeklyRate:           decimal.NewFromInt(100),
		CleaningMonthlyRate:          decimal.NewFromInt(350),
		CleaningMonthlyThresholdDays: 90,
		MinBookingDays:               30,
		CleaningBufferDays:           0,
		UnboundedCapDays:             3650,
	}
}

// discountPercent returns the discount for a stay of the given rounded
// month count.
func (c Config) discountPercent(months int) int {
	pct := 0
	for _, t := range c.DiscountTiers {
		if months >= t.FromMonths {
			pct = t.Percent
		}
	}
	return pct
}
