package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/booking"
	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/catalog"
	"github.com/owm/studio-api/internal/domain/profile"
	"github.com/owm/studio-api/internal/domain/user"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}

func (f *fakeUserRepo) UpdateProfileImage(ctx context.Context, id uuid.UUID, key string) error {
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*booking.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) CreateFromCart(ctx context.Context, b *booking.Booking, cartEntryID uuid.UUID) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, status booking.Status) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *booking.Booking) error { return nil }

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBookingRepo) CountConflicts(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (int, error) {
	return 0, nil
}

type fakeCatalogRepo struct{}

func (f *fakeCatalogRepo) List(ctx context.Context, category string) ([]catalog.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	return &catalog.Service{ID: id, Name: "Wedding Video", Category: catalog.CategoryVideo, Price: 1500}, nil
}

func (f *fakeCatalogRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

type fakeCartRepo struct {
	entries map[uuid.UUID]*cart.Entry
}

func (f *fakeCartRepo) Create(ctx context.Context, e *cart.Entry) error {
	f.entries[e.ID] = e
	return nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]cart.Item, error) {
	var items []cart.Item
	for _, e := range f.entries {
		if e.UserID == userID {
			items = append(items, cart.Item{
				ID:           e.ID,
				ServiceID:    e.ServiceID,
				ServiceName:  "Wedding Video",
				ServicePrice: 1500,
				EventDate:    e.EventDate,
				EventTime:    e.EventTime,
				AddedAt:      e.AddedAt,
			})
		}
	}
	return items, nil
}

func (f *fakeCartRepo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*cart.Entry, error) {
	if e, ok := f.entries[entryID]; ok && e.UserID == userID {
		return e, nil
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

type fixture struct {
	svc      *Service
	userID   uuid.UUID
	bookings *fakeBookingRepo
	carts    *fakeCartRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userID := uuid.New()
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		userID: {ID: userID, Username: "aruzhan", Email: "aruzhan@example.com", Role: user.RoleCustomer},
	}}
	bookingRepo := &fakeBookingRepo{bookings: map[uuid.UUID]*booking.Booking{}}
	cartRepo := &fakeCartRepo{entries: map[uuid.UUID]*cart.Entry{}}
	catalogRepo := &fakeCatalogRepo{}

	profileSvc := profile.NewService(userRepo, nil, nil)
	bookingSvc := booking.NewService(bookingRepo, booking.NewChecker(bookingRepo), catalogRepo, cartRepo, nil, nil)
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	return &fixture{
		svc:      NewService(profileSvc, bookingSvc, cartSvc),
		userID:   userID,
		bookings: bookingRepo,
		carts:    cartRepo,
	}
}

func (fx *fixture) addBooking(status booking.Status) {
	id := uuid.New()
	fx.bookings.bookings[id] = &booking.Booking{
		ID:        id,
		UserID:    fx.userID,
		ServiceID: uuid.New(),
		EventDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EventTime: "14:00",
		Status:    status,
		BookedAt:  time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestGet_GroupsBookingsByStatus(t *testing.T) {
	fx := newFixture(t)
	fx.addBooking(booking.StatusPending)
	fx.addBooking(booking.StatusPending)
	fx.addBooking(booking.StatusCompleted)
	fx.addBooking(booking.StatusCancelled)

	resp, err := fx.svc.Get(context.Background(), fx.userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.Profile == nil || resp.Profile.Username != "aruzhan" {
		t.Fatalf("unexpected profile: %+v", resp.Profile)
	}
	if len(resp.Bookings.Pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(resp.Bookings.Pending))
	}
	if len(resp.Bookings.Completed) != 1 {
		t.Fatalf("expected 1 completed, got %d", len(resp.Bookings.Completed))
	}
	if len(resp.Bookings.Cancelled) != 1 {
		t.Fatalf("expected 1 cancelled, got %d", len(resp.Bookings.Cancelled))
	}
}

func TestGet_EmptyGroupsAreNotNil(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.svc.Get(context.Background(), fx.userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.Bookings.Pending == nil || resp.Bookings.Completed == nil || resp.Bookings.Cancelled == nil {
		t.Fatal("empty groups must serialize as [], not null")
	}
}

func TestGet_UnknownUser(t *testing.T) {
	fx := newFixture(t)

	if _, err := fx.svc.Get(context.Background(), uuid.New()); !errors.Is(err, profile.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRemoveCartItem(t *testing.T) {
	fx := newFixture(t)
	entry := &cart.Entry{
		ID:        uuid.New(),
		UserID:    fx.userID,
		ServiceID: uuid.New(),
		EventDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EventTime: "14:00",
		AddedAt:   time.Now(),
	}
	fx.carts.entries[entry.ID] = entry

	refreshed, err := fx.svc.RemoveCartItem(context.Background(), fx.userID, entry.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(refreshed.Items) != 0 {
		t.Fatalf("expected empty refreshed cart, got %d items", len(refreshed.Items))
	}

	if _, err := fx.svc.RemoveCartItem(context.Background(), fx.userID, entry.ID); !errors.Is(err, cart.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
