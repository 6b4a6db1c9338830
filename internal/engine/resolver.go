package engine

import "time"

// ResolveAvailability computes the maximum contiguous run of free days from
// start and classifies the opportunity.
//
// Interval semantics: an interval whose End has already passed is
// irrelevant; one that straddles start still occupies it, so its effective
// bound is max(Interval.Start, start). Checkout day equals next check-in
// day is disallowed since intervals occupy both their boundary days. Cleaning
// buffers are the caller's concern: extend the intervals before calling.
//
// Mode selection: auto-extended only when no upcoming interval bounds the
// stay. Gap-filling when a non-empty bounded gap is strictly smaller than
// the tier-snapped ideal the request would otherwise grow to; the caller
// decides whether the shortened stay still meets its policy minimum.
// Standard in every other case.
func ResolveAvailability(cfg Config, intervals []Interval, start time.Time, requestedDays int) (Availability, error) {
	if requestedDays <= 0 {
		return Availability{}, &ValidationError{
			Field:     "durationDays",
			Message:   "duration must be a positive number of days",
			MessageAr: "يجب أن تكون المدة عدداً موجباً من الأيام",
		}
	}

	day := Midnight(start)

	var nearest *time.Time
	for _, iv := range intervals {
		if iv.Status == IntervalCancelled {
			continue
		}
		if Midnight(iv.End).Before(day) {
			continue
		}
		bound := Midnight(iv.Start)
		if bound.Before(day) {
			bound = day
		}
		if nearest == nil || bound.Before(*nearest) {
			nearest = &bound
		}
	}

	if nearest == nil {
		rec := SnapToNextTier(cfg, requestedDays)
		if rec > cfg.UnboundedCapDays {
			rec = requestedDays
		}
		return Availability{
			MaxAvailableDays: cfg.UnboundedCapDays,
			Unbounded:        true,
			Mode:             ModeAutoExtended,
			RecommendedDays:  rec,
		}, nil
	}

	gap := DaysBetween(day, *nearest)
	if gap == 0 {
		// The start date itself is occupied.
		return Availability{MaxAvailableDays: 0, Mode: ModeStandard}, nil
	}

	ideal := SnapToNextTier(cfg, requestedDays)
	if gap < ideal {
		rec := requestedDays
		if rec > gap {
			rec = gap
		}
		return Availability{
			MaxAvailableDays: gap,
			Mode:             ModeGapFilling,
			RecommendedDays:  rec,
		}, nil
	}

	return Availability{MaxAvailableDays: gap, Mode: ModeStandard}, nil
}

// SnapToNextTier returns the smallest duration at or above requestedDays
// that lands exactly on the next discount-tier breakpoint (breakpoint
// months times 30 days). A request already in the top tier comes back
// unchanged.
func SnapToNextTier(cfg Config, requestedDays int) int {
	current := cfg.discountPercent(roundedMonths(requestedDays))
	for _, t := range cfg.DiscountTiers {
		if t.Percent <= current {
			continue
		}
		days := t.FromMonths * 30
		if days >= requestedDays {
			return days
		}
	}
	return requestedDays
}

// roundedMonths converts a day count to whole months, half up.
func roundedMonths(days int) int {
	return (days + 15) / 30
}
