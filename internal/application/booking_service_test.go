package application

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/infrastructure/jsonstore"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	bookings domain.BookingRepository
	studios  domain.StudioRepository
	blocks   domain.BlockRepository
	cfg      engine.Config
}

// newTestEnv opens a JSON store seeded with one active and one inactive
// studio.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	seed := map[string]interface{}{
		"studios": []domain.Studio{
			{
				ID:          "s-1",
				Slug:        "sunrise-studio",
				NameEn:      "Sunrise Studio",
				NameAr:      "استوديو الشروق",
				MonthlyRate: decimal.NewFromInt(4900),
				Active:      true,
			},
			{
				ID:          "s-closed",
				Slug:        "closed-studio",
				NameEn:      "Closed Studio",
				NameAr:      "استوديو مغلق",
				MonthlyRate: decimal.NewFromInt(4900),
				Active:      false,
			},
		},
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := jsonstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return &testEnv{
		bookings: jsonstore.NewBookingRepository(store),
		studios:  jsonstore.NewStudioRepository(store),
		blocks:   jsonstore.NewBlockRepository(store),
		cfg:      engine.DefaultConfig(),
	}
}

func newTestBookingService(t *testing.T) (*BookingService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	svc := NewBookingService(env.bookings, env.studios, env.blocks, env.cfg, nil, nil)
	return svc, env
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		StudioID:     "s-1",
		GuestName:    "Sara Ahmed",
		GuestEmail:   "sara@example.com",
		GuestPhone:   "+966501234567",
		StartDate:    date(2026, time.March, 1),
		DurationDays: 30,
	}
}

func TestCreateBookingPersistsPriceSnapshot(t *testing.T) {
	svc, env := newTestBookingService(t)

	booking, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if booking.Status != domain.BookingPending {
		t.Errorf("Status = %s, want pending", booking.Status)
	}
	if !booking.EndDate.Equal(date(2026, time.March, 30)) {
		t.Errorf("EndDate = %s, want 2026-03-30", booking.EndDate.Format("2006-01-02"))
	}
	// 30 days at 4900/month, no discount at one month.
	if !booking.TotalPrice.Equal(decimal.NewFromInt(4900)) {
		t.Errorf("TotalPrice = %s, want 4900", booking.TotalPrice)
	}
	if booking.SavingsPercent != 0 {
		t.Errorf("SavingsPercent = %d, want 0", booking.SavingsPercent)
	}

	stored, err := env.bookings.GetBookingByID(booking.ID)
	if err != nil {
		t.Fatalf("booking was not persisted: %v", err)
	}
	if !stored.TotalPrice.Equal(booking.TotalPrice) {
		t.Errorf("persisted TotalPrice = %s, want %s", stored.TotalPrice, booking.TotalPrice)
	}
}

func TestCreateBookingAppliesLongStayDiscount(t *testing.T) {
	svc, _ := newTestBookingService(t)

	in := validInput()
	in.DurationDays = 365

	booking, err := svc.CreateBooking(in)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.SavingsPercent != 11 {
		t.Errorf("SavingsPercent = %d, want 11", booking.SavingsPercent)
	}
	want := decimal.RequireFromString("53058.83")
	if !booking.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %s, want %s", booking.TotalPrice, want)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc, _ := newTestBookingService(t)

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Second stay starts on the first stay's checkout day, which is still
	// occupied under closed intervals.
	in := validInput()
	in.StartDate = date(2026, time.March, 30)

	_, err := svc.CreateBooking(in)
	var cerr *engine.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if !cerr.Date.Equal(date(2026, time.March, 30)) {
		t.Errorf("conflict date = %s, want 2026-03-30", cerr.Date.Format("2006-01-02"))
	}
}

func TestCreateBookingAllowsBackToBackStays(t *testing.T) {
	svc, _ := newTestBookingService(t)

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := validInput()
	in.StartDate = date(2026, time.March, 31)
	if _, err := svc.CreateBooking(in); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestCreateBookingHonorsCleaningBuffer(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.CleaningBufferDays = 1
	svc := NewBookingService(env.bookings, env.studios, env.blocks, env.cfg, nil, nil)

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// March 31 is now a buffer day after the March 1-30 stay.
	in := validInput()
	in.StartDate = date(2026, time.March, 31)
	_, err := svc.CreateBooking(in)
	var cerr *engine.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConflictError on buffer day", err)
	}

	in.StartDate = date(2026, time.April, 1)
	if _, err := svc.CreateBooking(in); err != nil {
		t.Fatalf("booking after buffer day: %v", err)
	}
}

func TestCreateBookingEnforcesMinimumStay(t *testing.T) {
	svc, _ := newTestBookingService(t)

	in := validInput()
	in.DurationDays = 29

	_, err := svc.CreateBooking(in)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "durationDays" {
		t.Errorf("Field = %s, want durationDays", verr.Field)
	}
	if verr.MessageAr == "" {
		t.Error("Arabic message missing")
	}
}

func TestCreateBookingRejectsInvalidGuest(t *testing.T) {
	svc, _ := newTestBookingService(t)

	in := validInput()
	in.GuestEmail = "not-an-email"

	_, err := svc.CreateBooking(in)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "guestEmail" {
		t.Errorf("Field = %s, want guestEmail", verr.Field)
	}
}

func TestCreateBookingRejectsInactiveStudio(t *testing.T) {
	svc, _ := newTestBookingService(t)

	in := validInput()
	in.StudioID = "s-closed"

	_, err := svc.CreateBooking(in)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "studioId" {
		t.Errorf("Field = %s, want studioId", verr.Field)
	}
}

func TestCancelledBookingFreesDates(t *testing.T) {
	svc, _ := newTestBookingService(t)

	booking, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if err := svc.CancelBooking(booking.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	// Same dates are bookable again.
	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestAdminBlockPreventsBooking(t *testing.T) {
	env := newTestEnv(t)
	svc := NewBookingService(env.bookings, env.studios, env.blocks, env.cfg, nil, nil)

	if err := env.blocks.CreateBlock(&domain.Block{
		ID:        "blk-1",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 12),
		Reason:    "maintenance",
	}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateBooking(validInput())
	var cerr *engine.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if !cerr.Date.Equal(date(2026, time.March, 10)) {
		t.Errorf("conflict date = %s, want first blocked day", cerr.Date.Format("2006-01-02"))
	}
}

func TestConfirmBookingWithoutEmailClient(t *testing.T) {
	svc, env := newTestBookingService(t)

	booking, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ConfirmBooking(booking.ID); err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	got, _ := env.bookings.GetBookingByID(booking.ID)
	if got.Status != domain.BookingConfirmed {
		t.Errorf("Status = %s, want confirmed", got.Status)
	}
	if got.ConfirmedAt == nil {
		t.Error("ConfirmedAt not set")
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestBookingService(t)

	if err := svc.UpdateBookingStatus("any", domain.BookingStatus("archived")); err == nil {
		t.Error("expected error for unknown status")
	}
}
