package application

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if ok, err := rl.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d blocked: %v", i+1, err)
		}
	}
	if ok, err := rl.Allow("1.2.3.4"); ok {
		t.Fatal("fourth request should be blocked")
	} else if err == nil {
		t.Fatal("blocked request should explain the wait")
	}

	// Other identifiers keep their own window.
	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Error("different identifier should not be blocked")
	}

	rl.Reset("1.2.3.4")
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("reset identifier should be allowed again")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	rl := NewRateLimiter(10*time.Millisecond, 1)

	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatal("first request blocked")
	}
	if ok, _ := rl.Allow("ip"); ok {
		t.Fatal("second request in window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if ok, _ := rl.Allow("ip"); !ok {
		t.Error("request after window expiry should be allowed")
	}
}

func TestRateLimiterEmptyIdentifier(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	if ok, _ := rl.Allow(""); !ok {
		t.Fatal("first anonymous request blocked")
	}
	// Empty identifiers share one bucket.
	if ok, _ := rl.Allow(""); ok {
		t.Error("second anonymous request should be blocked")
	}
	if rl.Size() != 1 {
		t.Errorf("Size = %d, want 1", rl.Size())
	}
}
