package application

import (
	"fmt"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/shopspring/decimal"
)

// AvailabilityCheck is the live feedback payload the date-picker UI polls
// on every start-date or duration change. It is never persisted.
type AvailabilityCheck struct {
	IsValid      bool                   `json:"isValid"`
	ConflictDate *time.Time             `json:"conflictDate"`
	Availability engine.Availability    `json:"availability"`
	Price        *engine.PriceBreakdown `json:"price,omitempty"`
}

type AvailabilityService struct {
	bookingRepo domain.BookingRepository
	blockRepo   domain.BlockRepository
	studioRepo  domain.StudioRepository
	engineCfg   engine.Config
	cache       *BlockedDatesCache
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(
	bookingRepo domain.BookingRepository,
	blockRepo domain.BlockRepository,
	studioRepo domain.StudioRepository,
	engineCfg engine.Config,
	cache *BlockedDatesCache,
) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		studioRepo:  studioRepo,
		engineCfg:   engineCfg,
		cache:       cache,
	}
}

// EffectiveIntervals builds the interval list the engine sees for a studio:
// every non-cancelled booking (its end extended by the cleaning buffer) and
// every admin block. The engine itself stays buffer-agnostic.
func EffectiveIntervals(bookings []domain.Booking, blocks []domain.Block, bufferDays int) []engine.Interval {
	out := make([]engine.Interval, 0, len(bookings)+len(blocks))
	for _, b := range bookings {
		if b.Status == domain.BookingCancelled {
			continue
		}
		out = append(out, engine.Interval{
			Start:  b.StartDate,
			End:    b.EndDate.AddDate(0, 0, bufferDays),
			Status: engine.IntervalActive,
		})
	}
	for _, bl := range blocks {
		out = append(out, engine.Interval{
			Start:  bl.StartDate,
			End:    bl.EndDate,
			Status: engine.IntervalActive,
		})
	}
	return out
}

// intervalsForStudio loads a studio's current bookings and blocks and turns
// them into engine intervals.
func (s *AvailabilityService) intervalsForStudio(studioID string) ([]engine.Interval, error) {
	bookings, err := s.bookingRepo.GetBookingsByStudio(studioID)
	if err != nil {
		return nil, fmt.Errorf("load bookings for studio %s: %w", studioID, err)
	}
	blocks, err := s.blockRepo.GetBlocksByStudio(studioID)
	if err != nil {
		return nil, fmt.Errorf("load blocks for studio %s: %w", studioID, err)
	}
	return EffectiveIntervals(bookings, blocks, s.engineCfg.CleaningBufferDays), nil
}

// Resolve answers the date picker: is the requested range free, how far can
// the stay run, which mode applies, and what would it cost.
func (s *AvailabilityService) Resolve(studioID string, start time.Time, requestedDays int, cleaning bool) (*AvailabilityCheck, error) {
	studio, err := s.studioRepo.GetStudioByID(studioID)
	if err != nil {
		return nil, err
	}

	intervals, err := s.intervalsForStudio(studioID)
	if err != nil {
		return nil, err
	}

	check, err := engine.CheckRange(intervals, start, requestedDays)
	if err != nil {
		return nil, err
	}
	availability, err := engine.ResolveAvailability(s.engineCfg, intervals, start, requestedDays)
	if err != nil {
		return nil, err
	}

	result := &AvailabilityCheck{
		IsValid:      check.IsValid,
		ConflictDate: check.ConflictDate,
		Availability: availability,
	}

	if check.IsValid {
		price, err := engine.CalculatePrice(s.engineCfg, studio.MonthlyRate, requestedDays, cleaning)
		if err != nil {
			return nil, err
		}
		result.Price = &price
	}
	return result, nil
}

// Quote prices a stay without touching availability.
func (s *AvailabilityService) Quote(studioID string, days int, cleaning bool) (*engine.PriceBreakdown, error) {
	studio, err := s.studioRepo.GetStudioByID(studioID)
	if err != nil {
		return nil, err
	}
	if studio.MonthlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("studio %s has no monthly rate configured", studioID)
	}
	price, err := engine.CalculatePrice(s.engineCfg, studio.MonthlyRate, days, cleaning)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// BlockedDates returns every occupied day for a studio in [from, to], the
// flat list the public calendar greys out. Responses are cached per studio
// and range until a booking or block write invalidates them.
func (s *AvailabilityService) BlockedDates(studioID string, from, to time.Time) ([]time.Time, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("range end precedes start")
	}

	if s.cache != nil {
		if days, ok := s.cache.Get(studioID, from, to); ok {
			return days, nil
		}
	}

	intervals, err := s.intervalsForStudio(studioID)
	if err != nil {
		return nil, err
	}

	var days []time.Time
	for d := engine.Midnight(from); !d.After(engine.Midnight(to)); d = d.AddDate(0, 0, 1) {
		for _, iv := range intervals {
			if iv.Occupies(d) {
				days = append(days, d)
				break
			}
		}
	}

	if s.cache != nil {
		s.cache.Set(studioID, from, to, days)
	}
	return days, nil
}
