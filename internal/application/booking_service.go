package application

import (
	"fmt"
	"log"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/email"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/google/uuid"
)

// CreateBookingInput carries everything a guest submits from the booking
// funnel. Prices are computed server-side and never accepted from clients.
type CreateBookingInput struct {
	StudioID              string
	GuestName             string
	GuestEmail            string
	GuestPhone            string
	GuestWhatsApp         string
	StartDate             time.Time
	DurationDays          int
	WeeklyCleaningService bool
}

type BookingService struct {
	bookingRepo domain.BookingRepository
	studioRepo  domain.StudioRepository
	blockRepo   domain.BlockRepository
	engineCfg   engine.Config
	emailClient *email.Client
	cache       *BlockedDatesCache
	validator   *Validator
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	studioRepo domain.StudioRepository,
	blockRepo domain.BlockRepository,
	engineCfg engine.Config,
	emailClient *email.Client,
	cache *BlockedDatesCache,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		studioRepo:  studioRepo,
		blockRepo:   blockRepo,
		engineCfg:   engineCfg,
		emailClient: emailClient,
		cache:       cache,
		validator:   &Validator{},
	}
}

// CreateBooking validates the request, re-checks availability against the
// freshly loaded interval set (the authoritative defense against a race
// with a competing booking), prices the stay, and persists it as pending.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*domain.Booking, error) {
	if in.DurationDays < s.engineCfg.MinBookingDays {
		return nil, &engine.ValidationError{
			Field:     "durationDays",
			Message:   fmt.Sprintf("minimum stay is %d days", s.engineCfg.MinBookingDays),
			MessageAr: fmt.Sprintf("الحد الأدنى للإقامة هو %d يوماً", s.engineCfg.MinBookingDays),
		}
	}
	if errs := s.validator.ValidateGuest(in.GuestName, in.GuestEmail, in.GuestPhone); len(errs) > 0 {
		return nil, errs[0]
	}

	studio, err := s.studioRepo.GetStudioByID(in.StudioID)
	if err != nil {
		return nil, err
	}
	if !studio.Active {
		return nil, &engine.ValidationError{
			Field:     "studioId",
			Message:   "this studio is not open for booking",
			MessageAr: "هذا الاستوديو غير متاح للحجز حالياً",
		}
	}

	// Authoritative re-check, immediately before the write. The client's
	// earlier availability call is only informational.
	bookings, err := s.bookingRepo.GetBookingsByStudio(in.StudioID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	blocks, err := s.blockRepo.GetBlocksByStudio(in.StudioID)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	intervals := EffectiveIntervals(bookings, blocks, s.engineCfg.CleaningBufferDays)

	check, err := engine.CheckRange(intervals, in.StartDate, in.DurationDays)
	if err != nil {
		return nil, err
	}
	if !check.IsValid {
		return nil, &engine.ConflictError{Date: *check.ConflictDate, StudioID: in.StudioID}
	}

	price, err := engine.CalculatePrice(s.engineCfg, studio.MonthlyRate, in.DurationDays, in.WeeklyCleaningService)
	if err != nil {
		return nil, err
	}

	start := engine.Midnight(in.StartDate)
	booking := &domain.Booking{
		ID:                    uuid.NewString(),
		StudioID:              in.StudioID,
		GuestName:             in.GuestName,
		GuestEmail:            in.GuestEmail,
		GuestPhone:            in.GuestPhone,
		GuestWhatsApp:         in.GuestWhatsApp,
		StartDate:             start,
		EndDate:               start.AddDate(0, 0, in.DurationDays-1),
		DurationDays:          in.DurationDays,
		WeeklyCleaningService: in.WeeklyCleaningService,
		Status:                domain.BookingPending,
		TotalPrice:            price.TotalPrice,
		OriginalPrice:         price.OriginalPrice,
		SavingsPercent:        price.SavingsPercent,
		CleaningFee:           price.CleaningFee,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.bookingRepo.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(in.StudioID)
	}

	return booking, nil
}

// GetBookingByID returns a booking by its id.
func (s *BookingService) GetBookingByID(id string) (*domain.Booking, error) {
	return s.bookingRepo.GetBookingByID(id)
}

// GetBookingsByStudio returns all bookings for a studio.
func (s *BookingService) GetBookingsByStudio(studioID string) ([]domain.Booking, error) {
	return s.bookingRepo.GetBookingsByStudio(studioID)
}

// GetBookingsInRange returns all bookings overlapping a date range.
func (s *BookingService) GetBookingsInRange(from, to time.Time) ([]domain.Booking, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("range end must follow range start")
	}
	return s.bookingRepo.GetBookingsInRange(from, to)
}

// UpdateBookingStatus applies a status transition.
func (s *BookingService) UpdateBookingStatus(id string, status domain.BookingStatus) error {
	valid := map[domain.BookingStatus]bool{
		domain.BookingPending:   true,
		domain.BookingConfirmed: true,
		domain.BookingCancelled: true,
		domain.BookingCompleted: true,
	}
	if !valid[status] {
		return fmt.Errorf("invalid booking status: %s", status)
	}

	var confirmedAt *time.Time
	if status == domain.BookingConfirmed {
		now := time.Now().UTC()
		confirmedAt = &now
	}
	if err := s.bookingRepo.UpdateBookingStatus(id, status, confirmedAt); err != nil {
		return err
	}

	if s.cache != nil {
		if b, err := s.bookingRepo.GetBookingByID(id); err == nil {
			s.cache.Invalidate(b.StudioID)
		}
	}
	return nil
}

// ConfirmBooking confirms a pending booking and sends the confirmation
// email. The email is best-effort: a dispatch failure is logged and never
// rolls back the confirmation.
func (s *BookingService) ConfirmBooking(id string) error {
	if err := s.UpdateBookingStatus(id, domain.BookingConfirmed); err != nil {
		return err
	}

	if s.emailClient == nil {
		return nil
	}

	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		log.Printf("confirmation email skipped, reload booking %s: %v", id, err)
		return nil
	}
	studio, err := s.studioRepo.GetStudioByID(booking.StudioID)
	if err != nil {
		log.Printf("confirmation email skipped, load studio %s: %v", booking.StudioID, err)
		return nil
	}

	info := email.BookingInfo{
		ID:             booking.ID,
		GuestName:      booking.GuestName,
		GuestEmail:     booking.GuestEmail,
		StudioNameEn:   studio.NameEn,
		StudioNameAr:   studio.NameAr,
		StartDate:      booking.StartDate,
		EndDate:        booking.EndDate,
		DurationDays:   booking.DurationDays,
		TotalPrice:     booking.TotalPrice,
		OriginalPrice:  booking.OriginalPrice,
		SavingsPercent: booking.SavingsPercent,
		CleaningFee:    booking.CleaningFee,
	}
	if err := s.emailClient.SendBookingConfirmation(info); err != nil {
		log.Printf("confirmation email for booking %s failed: %v", id, err)
	}
	return nil
}

// CancelBooking cancels a booking and frees its dates.
func (s *BookingService) CancelBooking(id string) error {
	return s.UpdateBookingStatus(id, domain.BookingCancelled)
}

// CompleteBooking marks a booking as completed.
func (s *BookingService) CompleteBooking(id string) error {
	return s.UpdateBookingStatus(id, domain.BookingCompleted)
}
