package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a guest's stay in a studio. StartDate and EndDate are both
// occupied days (closed range); DurationDays = EndDate - StartDate + 1.
// The price fields are a snapshot of the pricing breakdown at creation
// time; guests never supply a price.
type Booking struct {
	ID                    string          `json:"id"`
	StudioID              string          `json:"studioId"`
	GuestName             string          `json:"guestName"`
	GuestEmail            string          `json:"guestEmail"`
	GuestPhone            string          `json:"guestPhone"`
	GuestWhatsApp         string          `json:"guestWhatsapp,omitempty"`
	StartDate             time.Time       `json:"startDate"`
	EndDate               time.Time       `json:"endDate"`
	DurationDays          int             `json:"durationDays"`
	WeeklyCleaningService bool            `json:"weeklyCleaningService"`
	Status                BookingStatus   `json:"status"`
	TotalPrice            decimal.Decimal `json:"totalPrice"`
	OriginalPrice         decimal.Decimal `json:"originalPrice"`
	SavingsPercent        int             `json:"savingsPercent"`
	CleaningFee           decimal.Decimal `json:"cleaningFee"`
	CreatedAt             time.Time       `json:"createdAt"`
	ConfirmedAt           *time.Time      `json:"confirmedAt,omitempty"`
}

// BookingRepository defines the operations available on bookings.
type BookingRepository interface {
	// GetBookingByID returns a booking by its id.
	GetBookingByID(id string) (*Booking, error)
	// GetBookingsByStudio returns all bookings for a studio, any status.
	GetBookingsByStudio(studioID string) ([]Booking, error)
	// GetBookingsInRange returns bookings whose stay overlaps [from, to].
	GetBookingsInRange(from, to time.Time) ([]Booking, error)
	// CreateBooking persists a new booking.
	CreateBooking(booking *Booking) error
	// UpdateBookingStatus updates the status of a booking.
	UpdateBookingStatus(id string, status BookingStatus, confirmedAt *time.Time) error
	// UpdateExpiredBookings marks confirmed bookings past checkout as completed.
	UpdateExpiredBookings(today time.Time) (int, error)
}
