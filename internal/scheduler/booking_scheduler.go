package scheduler

import (
	"log"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
)

// BookingScheduler sweeps confirmed bookings whose checkout has passed and
// marks them completed, once a day shortly after midnight.
type BookingScheduler struct {
	bookingRepo domain.BookingRepository
	ticker      *time.Ticker
}

// NewBookingScheduler creates a new booking scheduler.
func NewBookingScheduler(bookingRepo domain.BookingRepository) *BookingScheduler {
	return &BookingScheduler{
		bookingRepo: bookingRepo,
	}
}

// Start runs the sweep immediately, then every 24 hours starting at 00:01.
func (s *BookingScheduler) Start() {
	log.Println("booking scheduler started, sweeping every 24 hours")

	s.SweepCompletedBookings()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())

	log.Printf("next sweep scheduled for %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(time.Until(nextRun), func() {
		s.SweepCompletedBookings()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.SweepCompletedBookings()
			}
		}()
	})
}

// Stop halts the scheduler.
func (s *BookingScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("booking scheduler stopped")
	}
}

// SweepCompletedBookings marks confirmed bookings past checkout as completed.
func (s *BookingScheduler) SweepCompletedBookings() {
	changed, err := s.bookingRepo.UpdateExpiredBookings(engine.Midnight(time.Now()))
	if err != nil {
		log.Printf("completed-booking sweep failed: %v", err)
		return
	}
	if changed > 0 {
		log.Printf("completed-booking sweep: %d booking(s) marked completed", changed)
	}
}
