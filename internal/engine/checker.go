package engine

import "time"

// CheckRange tests whether every day in [start, start+durationDays-1] is
// free of the given intervals. It returns the earliest occupied day as the
// conflict and short-circuits on the first hit. Whether start lies in the
// past is the caller's policy; this is a pure interval-membership test.
func CheckRange(intervals []Interval, start time.Time, durationDays int) (RangeCheck, error) {
	if durationDays <= 0 {
		return RangeCheck{}, &ValidationError{
			Field:     "durationDays",
			Message:   "duration must be a positive number of days",
			MessageAr: "يجب أن تكون المدة عدداً موجباً من الأيام",
		}
	}

	day := Midnight(start)
	for i := 0; i < durationDays; i++ {
		for _, iv := range intervals {
			if iv.Occupies(day) {
				conflict := day
				return RangeCheck{IsValid: false, ConflictDate: &conflict}, nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return RangeCheck{IsValid: true, ConflictDate: nil}, nil
}
