package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestChecker_IsAvailable(t *testing.T) {
	repo := newFakeRepo()
	checker := NewChecker(repo)

	serviceID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	free, err := checker.IsAvailable(context.Background(), serviceID, date, "14:00", uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("empty store must be available")
	}

	existing := &Booking{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ServiceID: serviceID,
		EventDate: date,
		EventTime: "14:00",
		Status:    StatusPending,
	}
	if err := repo.Create(context.Background(), existing); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if free, _ = checker.IsAvailable(context.Background(), serviceID, date, "14:00", uuid.Nil); free {
		t.Fatal("occupied slot must not be available")
	}

	// The occupying booking keeps its own slot during edit
	if free, _ = checker.IsAvailable(context.Background(), serviceID, date, "14:00", existing.ID); !free {
		t.Fatal("excluded booking must not conflict with itself")
	}

	// Other time, other service, other date are free
	if free, _ = checker.IsAvailable(context.Background(), serviceID, date, "18:00", uuid.Nil); !free {
		t.Fatal("different time must be available")
	}
	if free, _ = checker.IsAvailable(context.Background(), uuid.New(), date, "14:00", uuid.Nil); !free {
		t.Fatal("different service must be available")
	}
	if free, _ = checker.IsAvailable(context.Background(), serviceID, date.AddDate(0, 0, 1), "14:00", uuid.Nil); !free {
		t.Fatal("different date must be available")
	}
}

func TestChecker_CancelledIgnored(t *testing.T) {
	repo := newFakeRepo()
	checker := NewChecker(repo)

	serviceID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cancelled := &Booking{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ServiceID: serviceID,
		EventDate: date,
		EventTime: "14:00",
		Status:    StatusCancelled,
	}
	if err := repo.Create(context.Background(), cancelled); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	free, err := checker.IsAvailable(context.Background(), serviceID, date, "14:00", uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("cancelled bookings must not block the slot")
	}
}
