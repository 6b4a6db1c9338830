package engine

import "github.com/shopspring/decimal"

var (
	thirty  = decimal.NewFromInt(30)
	hundred = decimal.NewFromInt(100)
)

// CalculatePrice prices a stay of durationDays at the given monthly rate.
// The daily-equivalent rate is monthlyRate/30; the duration-based discount
// applies to it, and amounts round half up to whole cents. When the
// cleaning service is enabled the stay is billed in whole periods (weekly
// under cfg.CleaningMonthlyThresholdDays, monthly at or above) and the fee
// is added into TotalPrice while staying broken out in the result.
//
// Non-positive duration or rate is a validation error, never clamped.
func CalculatePrice(cfg Config, monthlyRate decimal.Decimal, durationDays int, cleaningEnabled bool) (PriceBreakdown, error) {
	if durationDays <= 0 {
		return PriceBreakdown{}, &ValidationError{
			Field:     "durationDays",
			Message:   "duration must be a positive number of days",
			MessageAr: "يجب أن تكون المدة عدداً موجباً من الأيام",
		}
	}
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		return PriceBreakdown{}, &ValidationError{
			Field:     "monthlyRate",
			Message:   "monthly rate must be greater than zero",
			MessageAr: "يجب أن يكون السعر الشهري أكبر من صفر",
		}
	}

	days := decimal.NewFromInt(int64(durationDays))
	pct := cfg.discountPercent(roundedMonths(durationDays))

	// Keep the raw amounts unrounded until the end so the discount does not
	// compound a rounding error.
	rawOriginal := monthlyRate.Mul(days).Div(thirty)
	discounted := rawOriginal.Mul(hundred.Sub(decimal.NewFromInt(int64(pct)))).Div(hundred).Round(2)
	original := rawOriginal.Round(2)

	breakdown := PriceBreakdown{
		TotalPrice:     discounted,
		OriginalPrice:  original,
		Days:           durationDays,
		Savings:        original.Sub(discounted),
		SavingsPercent: pct,
		CleaningFee:    decimal.Zero,
	}

	if cleaningEnabled {
		periodLen := 7
		rate := cfg.CleaningWeeklyRate
		rateType := CleaningWeekly
		if durationDays >= cfg.CleaningMonthlyThresholdDays {
			periodLen = 30
			rate = cfg.CleaningMonthlyRate
			rateType = CleaningMonthly
		}
		periods := (durationDays + periodLen - 1) / periodLen
		fee := rate.Mul(decimal.NewFromInt(int64(periods))).Round(2)

		breakdown.CleaningFee = fee
		breakdown.CleaningPeriods = periods
		breakdown.CleaningRateType = rateType
		breakdown.TotalPrice = discounted.Add(fee)
	}

	return breakdown, nil
}
