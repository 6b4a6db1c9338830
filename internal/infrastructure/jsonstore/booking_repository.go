package jsonstore

import (
	"fmt"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
)

type bookingRepository struct {
	store *Store
}

// NewBookingRepository creates a booking repository over the JSON store.
func NewBookingRepository(store *Store) domain.BookingRepository {
	return &bookingRepository{store: store}
}

// GetBookingByID returns a booking by its id.
func (r *bookingRepository) GetBookingByID(id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.data.Bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

// GetBookingsByStudio returns all bookings for a studio, any status.
func (r *bookingRepository) GetBookingsByStudio(studioID string) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Booking
	for _, b := range r.store.data.Bookings {
		if b.StudioID == studioID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetBookingsInRange returns bookings whose stay overlaps [from, to].
func (r *bookingRepository) GetBookingsInRange(from, to time.Time) ([]domain.Booking, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s precedes start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Booking
	for _, b := range r.store.data.Bookings {
		if !b.EndDate.Before(from) && !b.StartDate.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

// CreateBooking persists a new booking.
func (r *bookingRepository) CreateBooking(booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range r.store.data.Bookings {
		if b.ID == booking.ID {
			return fmt.Errorf("booking %s already exists", booking.ID)
		}
	}

	r.store.data.Bookings = append(r.store.data.Bookings, *booking)
	if err := r.store.persistLocked(); err != nil {
		// Roll the in-memory copy back so memory and disk stay in step.
		r.store.data.Bookings = r.store.data.Bookings[:len(r.store.data.Bookings)-1]
		return fmt.Errorf("persist booking: %w", err)
	}
	return nil
}

// UpdateBookingStatus updates the status of a booking.
func (r *bookingRepository) UpdateBookingStatus(id string, status domain.BookingStatus, confirmedAt *time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.data.Bookings {
		if r.store.data.Bookings[i].ID != id {
			continue
		}
		prev := r.store.data.Bookings[i]
		r.store.data.Bookings[i].Status = status
		if confirmedAt != nil {
			r.store.data.Bookings[i].ConfirmedAt = confirmedAt
		}
		if err := r.store.persistLocked(); err != nil {
			r.store.data.Bookings[i] = prev
			return fmt.Errorf("persist status change: %w", err)
		}
		return nil
	}
	return fmt.Errorf("booking %s not found", id)
}

// UpdateExpiredBookings marks confirmed bookings whose checkout has passed
// as completed and returns how many changed.
func (r *bookingRepository) UpdateExpiredBookings(today time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	changed := 0
	for i := range r.store.data.Bookings {
		b := &r.store.data.Bookings[i]
		if b.Status == domain.BookingConfirmed && b.EndDate.Before(today) {
			b.Status = domain.BookingCompleted
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := r.store.persistLocked(); err != nil {
		return 0, fmt.Errorf("persist completed bookings: %w", err)
	}
	return changed, nil
}
