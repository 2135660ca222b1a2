package booking

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/catalog"
)

// fakeRepo simulates the bookings table including the partial unique index
// on (service_id, event_date, event_time) for non-cancelled rows.
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking
	carts    *fakeCartRepo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[uuid.UUID]*Booking{}}
}

func (r *fakeRepo) slotTaken(b *Booking) bool {
	for _, existing := range r.bookings {
		if existing.ID != b.ID &&
			existing.ServiceID == b.ServiceID &&
			existing.EventDate.Equal(b.EventDate) &&
			existing.EventTime == b.EventTime &&
			existing.Status != StatusCancelled {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Status != StatusCancelled && r.slotTaken(b) {
		return ErrSlotUnavailable
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) CreateFromCart(ctx context.Context, b *Booking, cartEntryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Status != StatusCancelled && r.slotTaken(b) {
		return ErrSlotUnavailable
	}
	if r.carts != nil {
		if _, ok := r.carts.entries[cartEntryID]; !ok {
			return ErrCartItemNotFound
		}
		delete(r.carts.entries, cartEntryID)
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID uuid.UUID, status Status) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Booking
	for _, b := range r.bookings {
		if b.UserID == userID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Status != StatusCancelled && r.slotTaken(b) {
		return ErrSlotUnavailable
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil
	}
	if status != StatusCancelled {
		check := *b
		check.Status = status
		if r.slotTaken(&check) {
			return ErrSlotUnavailable
		}
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) CountConflicts(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.ServiceID == serviceID &&
			b.EventDate.Equal(eventDate) &&
			b.EventTime == eventTime &&
			b.Status != StatusCancelled &&
			b.ID != excludeID {
			count++
		}
	}
	return count, nil
}

type fakeCatalogRepo struct {
	services map[uuid.UUID]*catalog.Service
}

func newFakeCatalogRepo(ids ...uuid.UUID) *fakeCatalogRepo {
	f := &fakeCatalogRepo{services: map[uuid.UUID]*catalog.Service{}}
	for _, id := range ids {
		f.services[id] = &catalog.Service{
			ID:       id,
			Name:     "Wedding Video",
			Category: catalog.CategoryVideo,
			Price:    1500,
			ImageKey: sql.NullString{},
		}
	}
	return f
}

func (f *fakeCatalogRepo) List(ctx context.Context, category string) ([]catalog.Service, error) {
	var out []catalog.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.services[id]
	return ok, nil
}

type fakeCartRepo struct {
	entries map[uuid.UUID]*cart.Entry
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{entries: map[uuid.UUID]*cart.Entry{}}
}

func (f *fakeCartRepo) Create(ctx context.Context, e *cart.Entry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]cart.Item, error) {
	return nil, nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*cart.Entry, error) {
	if e, ok := f.entries[entryID]; ok && e.UserID == userID {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	if e, ok := f.entries[entryID]; ok && e.UserID == userID {
		delete(f.entries, entryID)
		return true, nil
	}
	return false, nil
}

func newTestService(repo *fakeRepo, catalogRepo *fakeCatalogRepo, cartRepo *fakeCartRepo) *Service {
	repo.carts = cartRepo
	return NewService(repo, NewChecker(repo), catalogRepo, cartRepo, nil, nil)
}

func TestCreateDirect(t *testing.T) {
	serviceID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), uuid.New(), &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != string(StatusPending) {
		t.Fatalf("expected pending, got %s", resp.Status)
	}
}

func TestCreateDirect_UnknownService(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(), newFakeCartRepo())

	_, err := svc.CreateDirect(context.Background(), uuid.New(), &CreateRequest{
		ServiceID:     uuid.New(),
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCreateDirect_SlotConflict(t *testing.T) {
	serviceID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	req := &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}

	if _, err := svc.CreateDirect(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.CreateDirect(context.Background(), uuid.New(), req); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}

	// A different time on the same day is free
	other := *req
	other.EventTime = "18:00"
	if _, err := svc.CreateDirect(context.Background(), uuid.New(), &other); err != nil {
		t.Fatalf("different time should succeed: %v", err)
	}
}

func TestCreateDirect_CancelledDoesNotBlock(t *testing.T) {
	serviceID := uuid.New()
	userU := uuid.New()
	userV := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	req := &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}

	first, err := svc.CreateDirect(context.Background(), userU, req)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	if _, err := svc.CreateDirect(context.Background(), userV, req); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected conflict for second user, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), userU, false, first.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := svc.CreateDirect(context.Background(), userV, req); err != nil {
		t.Fatalf("retry after cancel should succeed: %v", err)
	}
}

func TestCreateDirect_ConcurrentRequestsOneWins(t *testing.T) {
	serviceID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	req := &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateDirect(context.Background(), uuid.New(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one winner, got %d", succeeded)
	}
}

func TestCreateFromCart(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	cartRepo := newFakeCartRepo()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), cartRepo)

	entry := &cart.Entry{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceID:     serviceID,
		EventDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EventTime:     "14:00:00",
		EventLocation: "Main hall",
		AddedAt:       time.Now(),
	}
	cartRepo.Create(context.Background(), entry)

	resp, err := svc.CreateFromCart(context.Background(), userID, entry.ID)
	if err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	if resp.Status != string(StatusPending) {
		t.Fatalf("expected pending, got %s", resp.Status)
	}
	if resp.EventTime != "14:00" {
		t.Fatalf("expected normalized time 14:00, got %s", resp.EventTime)
	}
	if _, ok := cartRepo.entries[entry.ID]; ok {
		t.Fatal("cart entry should be removed after promotion")
	}
}

func TestCreateFromCart_ConflictKeepsEntry(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	cartRepo := newFakeCartRepo()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), cartRepo)

	// Occupy the slot first
	if _, err := svc.CreateDirect(context.Background(), uuid.New(), &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	entry := &cart.Entry{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceID:     serviceID,
		EventDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}
	cartRepo.Create(context.Background(), entry)

	if _, err := svc.CreateFromCart(context.Background(), userID, entry.ID); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	if _, ok := cartRepo.entries[entry.ID]; !ok {
		t.Fatal("cart entry must survive a failed promotion")
	}
}

func TestCreateFromCart_UnknownEntry(t *testing.T) {
	serviceID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	if _, err := svc.CreateFromCart(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestUpdate_CompletedIsTerminal(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), userID, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), userID, true, resp.ID, StatusCompleted); err != nil {
		t.Fatalf("staff complete failed: %v", err)
	}

	_, err = svc.Update(context.Background(), userID, resp.ID, &UpdateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-07-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if !errors.Is(err, ErrBookingCompleted) {
		t.Fatalf("expected ErrBookingCompleted, got %v", err)
	}
}

func TestUpdate_KeepsOwnSlot(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), userID, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// Same slot, new location: must not conflict with itself
	updated, err := svc.Update(context.Background(), userID, resp.ID, &UpdateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Garden",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.EventLocation != "Garden" {
		t.Fatalf("expected updated location, got %s", updated.EventLocation)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), userID, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// Owner cannot complete
	if _, err := svc.UpdateStatus(context.Background(), userID, false, resp.ID, StatusCompleted); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for owner complete, got %v", err)
	}

	// Owner cancel and re-activate
	if _, err := svc.UpdateStatus(context.Background(), userID, false, resp.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), userID, false, resp.ID, StatusPending); err != nil {
		t.Fatalf("re-activate failed: %v", err)
	}

	// Staff complete, then terminal
	if _, err := svc.UpdateStatus(context.Background(), userID, true, resp.ID, StatusCompleted); err != nil {
		t.Fatalf("staff complete failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), userID, true, resp.ID, StatusCancelled); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestUpdateStatus_ReactivateBlockedWhenSlotTaken(t *testing.T) {
	serviceID := uuid.New()
	userU := uuid.New()
	userV := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	req := &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}

	first, err := svc.CreateDirect(context.Background(), userU, req)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), userU, false, first.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.CreateDirect(context.Background(), userV, req); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), userU, false, first.ID, StatusPending); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable on re-activate, got %v", err)
	}
}

func TestDelete_Permissions(t *testing.T) {
	serviceID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), owner, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// Stranger cannot delete
	if err := svc.Delete(context.Background(), stranger, false, resp.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}

	// Owner cannot delete a completed booking
	if _, err := svc.UpdateStatus(context.Background(), owner, true, resp.ID, StatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, false, resp.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for owner on completed, got %v", err)
	}

	// Staff deletes regardless of status
	if err := svc.Delete(context.Background(), stranger, true, resp.ID); err != nil {
		t.Fatalf("staff delete failed: %v", err)
	}

	if err := svc.Delete(context.Background(), owner, false, resp.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound after delete, got %v", err)
	}
}

func TestDelete_OwnerPending(t *testing.T) {
	serviceID := uuid.New()
	owner := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), owner, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := svc.Delete(context.Background(), owner, false, resp.ID); err != nil {
		t.Fatalf("owner delete of pending booking failed: %v", err)
	}
}

func TestList_StatusFilter(t *testing.T) {
	serviceID := uuid.New()
	userID := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	first, err := svc.CreateDirect(context.Background(), userID, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := svc.CreateDirect(context.Background(), userID, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-02",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), userID, false, first.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	cancelled, err := svc.List(context.Background(), userID, "cancelled")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cancelled) != 1 {
		t.Fatalf("expected 1 cancelled booking, got %d", len(cancelled))
	}

	all, err := svc.List(context.Background(), userID, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}

	if _, err := svc.List(context.Background(), userID, "bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bogus status, got %v", err)
	}
}

func TestGet_OtherUsersBookingHidden(t *testing.T) {
	serviceID := uuid.New()
	owner := uuid.New()
	svc := newTestService(newFakeRepo(), newFakeCatalogRepo(serviceID), newFakeCartRepo())

	resp, err := svc.CreateDirect(context.Background(), owner, &CreateRequest{
		ServiceID:     serviceID,
		EventDate:     "2025-06-01",
		EventTime:     "14:00",
		EventLocation: "Main hall",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), uuid.New(), resp.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for non-owner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, resp.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}
