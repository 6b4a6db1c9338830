package application

import (
	"testing"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/shopspring/decimal"
)

func newTestAvailabilityService(t *testing.T, env *testEnv, cache *BlockedDatesCache) *AvailabilityService {
	t.Helper()
	return NewAvailabilityService(env.bookings, env.blocks, env.studios, env.cfg, cache)
}

func TestResolveOpenCalendarAutoExtends(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAvailabilityService(t, env, nil)

	check, err := svc.Resolve("s-1", date(2026, time.March, 1), 40, false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !check.IsValid {
		t.Fatal("expected valid range on an empty calendar")
	}
	if check.Availability.Mode != engine.ModeAutoExtended {
		t.Errorf("Mode = %s, want auto-extended", check.Availability.Mode)
	}
	if !check.Availability.Unbounded {
		t.Error("expected unbounded availability")
	}
	// 40 days rounds to one month; the next tier with a discount starts at
	// three months.
	if check.Availability.RecommendedDays != 90 {
		t.Errorf("RecommendedDays = %d, want 90", check.Availability.RecommendedDays)
	}
	if check.Price == nil {
		t.Fatal("expected a price for a valid range")
	}
}

func TestResolveGapFillingBeforeExistingBooking(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAvailabilityService(t, env, nil)

	if err := env.bookings.CreateBooking(&domain.Booking{
		ID:        "b-next",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 29),
		EndDate:   date(2026, time.April, 27),
		Status:    domain.BookingConfirmed,
	}); err != nil {
		t.Fatal(err)
	}

	check, err := svc.Resolve("s-1", date(2026, time.March, 1), 30, false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if check.IsValid {
		t.Error("30 days from March 1 run into the existing booking")
	}
	if check.Availability.Mode != engine.ModeGapFilling {
		t.Errorf("Mode = %s, want gap-filling", check.Availability.Mode)
	}
	if check.Availability.MaxAvailableDays != 28 {
		t.Errorf("MaxAvailableDays = %d, want 28", check.Availability.MaxAvailableDays)
	}
	if check.Availability.RecommendedDays != 28 {
		t.Errorf("RecommendedDays = %d, want 28", check.Availability.RecommendedDays)
	}
	if check.Price != nil {
		t.Error("no price should be quoted for an invalid range")
	}
}

func TestResolveIgnoresCancelledBookings(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAvailabilityService(t, env, nil)

	if err := env.bookings.CreateBooking(&domain.Booking{
		ID:        "b-cancelled",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 20),
		Status:    domain.BookingCancelled,
	}); err != nil {
		t.Fatal(err)
	}

	check, err := svc.Resolve("s-1", date(2026, time.March, 1), 30, false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !check.IsValid {
		t.Error("cancelled bookings must not block the range")
	}
}

func TestQuoteUsesStudioRate(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAvailabilityService(t, env, nil)

	price, err := svc.Quote("s-1", 30, false)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !price.TotalPrice.Equal(decimal.NewFromInt(4900)) {
		t.Errorf("TotalPrice = %s, want 4900", price.TotalPrice)
	}

	if _, err := svc.Quote("missing", 30, false); err == nil {
		t.Error("expected error for unknown studio")
	}
}

func TestBlockedDatesMergesBookingsAndBlocks(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAvailabilityService(t, env, nil)

	if err := env.bookings.CreateBooking(&domain.Booking{
		ID:        "b-1",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 2),
		Status:    domain.BookingConfirmed,
	}); err != nil {
		t.Fatal(err)
	}
	if err := env.blocks.CreateBlock(&domain.Block{
		ID:        "blk-1",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 5),
		EndDate:   date(2026, time.March, 5),
	}); err != nil {
		t.Fatal(err)
	}

	days, err := svc.BlockedDates("s-1", date(2026, time.March, 1), date(2026, time.March, 10))
	if err != nil {
		t.Fatalf("BlockedDates: %v", err)
	}

	want := []time.Time{
		date(2026, time.March, 1),
		date(2026, time.March, 2),
		date(2026, time.March, 5),
	}
	if len(days) != len(want) {
		t.Fatalf("got %d blocked days, want %d: %v", len(days), len(want), days)
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Errorf("days[%d] = %s, want %s", i, days[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func TestBlockedDatesCacheInvalidation(t *testing.T) {
	env := newTestEnv(t)
	cache := NewBlockedDatesCache(time.Minute)
	svc := newTestAvailabilityService(t, env, cache)

	from, to := date(2026, time.March, 1), date(2026, time.March, 31)

	days, err := svc.BlockedDates("s-1", from, to)
	if err != nil {
		t.Fatalf("BlockedDates: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected empty calendar, got %v", days)
	}
	if cache.Size() != 1 {
		t.Errorf("cache Size = %d, want 1", cache.Size())
	}

	if err := env.blocks.CreateBlock(&domain.Block{
		ID:        "blk-1",
		StudioID:  "s-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 10),
	}); err != nil {
		t.Fatal(err)
	}

	// The stale entry still answers until someone invalidates it.
	days, _ = svc.BlockedDates("s-1", from, to)
	if len(days) != 0 {
		t.Fatalf("expected cached answer, got %v", days)
	}

	cache.Invalidate("s-1")
	days, _ = svc.BlockedDates("s-1", from, to)
	if len(days) != 1 {
		t.Fatalf("expected fresh answer with 1 blocked day, got %v", days)
	}
}

func TestEffectiveIntervalsExtendsBookingsByBuffer(t *testing.T) {
	bookings := []domain.Booking{
		{StartDate: date(2026, time.March, 1), EndDate: date(2026, time.March, 30), Status: domain.BookingConfirmed},
		{StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 10), Status: domain.BookingCancelled},
	}
	blocks := []domain.Block{
		{StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 3)},
	}

	got := EffectiveIntervals(bookings, blocks, 2)

	if len(got) != 2 {
		t.Fatalf("got %d intervals, want 2 (cancelled dropped)", len(got))
	}
	if !got[0].End.Equal(date(2026, time.April, 1)) {
		t.Errorf("booking interval end = %s, want extended to 2026-04-01", got[0].End.Format("2006-01-02"))
	}
	// Blocks are never buffer-extended.
	if !got[1].End.Equal(date(2026, time.June, 3)) {
		t.Errorf("block interval end = %s, want 2026-06-03", got[1].End.Format("2006-01-02"))
	}
}
