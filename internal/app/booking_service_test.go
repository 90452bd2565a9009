package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zacharypellouchoud1/stringup-backend/internal/clock"
	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

type fakeBookingRepo struct {
	stringers map[int64]domain.Stringer
	bookings  []domain.Booking
	nextID    int64

	failCreate error
}

func newFakeBookingRepo(stringers ...domain.Stringer) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		stringers: make(map[int64]domain.Stringer),
		nextID:    1,
	}
	for _, s := range stringers {
		repo.stringers[s.ID] = s
	}
	return repo
}

func (r *fakeBookingRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Snapshot state so a failed "transaction" rolls back fully.
	stringers := make(map[int64]domain.Stringer, len(r.stringers))
	for id, s := range r.stringers {
		stringers[id] = s
	}
	bookings := append([]domain.Booking(nil), r.bookings...)

	if err := fn(ctx); err != nil {
		r.stringers = stringers
		r.bookings = bookings
		return err
	}
	return nil
}

func (r *fakeBookingRepo) GetStringerForUpdate(ctx context.Context, stringerID int64) (domain.Stringer, error) {
	s, ok := r.stringers[stringerID]
	if !ok {
		return domain.Stringer{}, domain.ErrStringerNotFound
	}
	return s, nil
}

func (r *fakeBookingRepo) UpdateStringerCapacity(ctx context.Context, stringerID int64, capacity int) error {
	s, ok := r.stringers[stringerID]
	if !ok {
		return domain.ErrStringerNotFound
	}
	s.CapacityToday = capacity
	r.stringers[stringerID] = s
	return nil
}

func (r *fakeBookingRepo) CreateBooking(ctx context.Context, booking domain.Booking) (int64, error) {
	if r.failCreate != nil {
		return 0, r.failCreate
	}
	booking.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, booking)
	return booking.ID, nil
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	makeSvc := func(stringers ...domain.Stringer) (*BookingService, *fakeBookingRepo) {
		repo := newFakeBookingRepo(stringers...)
		return NewBookingService(repo, clock.NewFixed(now)), repo
	}

	t.Run("books and decrements capacity", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, Name: "Alex Kim", CapacityToday: 4})

		booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 1,
			PlayerName: "P1",
		})
		require.NoError(t, err)
		require.NotZero(t, booking.ID)
		require.Equal(t, int64(1), booking.StringerID)
		require.Equal(t, "P1", booking.PlayerName)
		require.Nil(t, booking.Notes)
		require.Equal(t, now, booking.CreatedAt)

		require.Equal(t, 3, repo.stringers[1].CapacityToday)
		require.Len(t, repo.bookings, 1)
	})

	t.Run("books at zero capacity without going negative", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, Name: "Jay S", CapacityToday: 0})

		booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 1,
			PlayerName: "P2",
		})
		require.NoError(t, err)
		require.NotZero(t, booking.ID)

		require.Equal(t, 0, repo.stringers[1].CapacityToday)
		require.Len(t, repo.bookings, 1)
	})

	t.Run("capacity never drops below zero over repeated bookings", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, Name: "Maria G", CapacityToday: 2})

		for i := 0; i < 5; i++ {
			_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
				StringerID: 1,
				PlayerName: "P",
			})
			require.NoError(t, err)
			require.GreaterOrEqual(t, repo.stringers[1].CapacityToday, 0)
		}
		require.Equal(t, 0, repo.stringers[1].CapacityToday)
		require.Len(t, repo.bookings, 5)
	})

	t.Run("unknown stringer writes nothing", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, CapacityToday: 3})

		_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 99,
			PlayerName: "P1",
		})
		require.ErrorIs(t, err, domain.ErrStringerNotFound)
		require.Empty(t, repo.bookings)
		require.Equal(t, 3, repo.stringers[1].CapacityToday)
	})

	t.Run("insert failure rolls back capacity decrement", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, CapacityToday: 3})
		repo.failCreate = errors.New("connection reset")

		_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 1,
			PlayerName: "P1",
		})
		require.Error(t, err)
		require.Empty(t, repo.bookings)
		require.Equal(t, 3, repo.stringers[1].CapacityToday)
	})

	t.Run("rejects empty player name", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, CapacityToday: 3})

		_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 1,
		})
		require.ErrorIs(t, err, domain.ErrPlayerNameRequired)
		require.Empty(t, repo.bookings)
	})

	t.Run("rejects non-positive stringer id", func(t *testing.T) {
		svc, _ := makeSvc()

		_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 0,
			PlayerName: "P1",
		})
		require.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("keeps notes when supplied", func(t *testing.T) {
		svc, repo := makeSvc(domain.Stringer{ID: 1, CapacityToday: 1})

		notes := "16x19, 52 lbs"
		booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
			StringerID: 1,
			PlayerName: "P1",
			Notes:      &notes,
		})
		require.NoError(t, err)
		require.NotNil(t, booking.Notes)
		require.Equal(t, notes, *booking.Notes)
		require.Len(t, repo.bookings, 1)
	})
}
