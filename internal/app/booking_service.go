package app

import (
	"context"

	"github.com/zacharypellouchoud1/stringup-backend/internal/clock"
	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetStringerForUpdate(ctx context.Context, stringerID int64) (domain.Stringer, error)
	UpdateStringerCapacity(ctx context.Context, stringerID int64, capacity int) error
	CreateBooking(ctx context.Context, booking domain.Booking) (int64, error)
}

type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
	}
}

type CreateBookingInput struct {
	StringerID int64
	PlayerName string
	Notes      *string
}

// CreateBooking validates the stringer exists, decrements its remaining
// capacity when there is any, and records the booking. All writes happen in
// one transaction; a failure leaves the stringer untouched.
//
// Capacity is advisory: a booking at zero capacity still succeeds and the
// counter stays at zero. It never gates admission and never goes negative.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	if in.StringerID <= 0 {
		return domain.Booking{}, domain.ErrInvalidID
	}
	if in.PlayerName == "" {
		return domain.Booking{}, domain.ErrPlayerNameRequired
	}

	now := s.clock.Now()
	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		stringer, err := s.repo.GetStringerForUpdate(txCtx, in.StringerID)
		if err != nil {
			return err
		}

		if stringer.CapacityToday > 0 {
			if err := s.repo.UpdateStringerCapacity(txCtx, stringer.ID, stringer.CapacityToday-1); err != nil {
				return err
			}
		}

		booking := domain.Booking{
			StringerID: in.StringerID,
			PlayerName: in.PlayerName,
			Notes:      in.Notes,
			CreatedAt:  now,
		}

		id, err := s.repo.CreateBooking(txCtx, booking)
		if err != nil {
			return err
		}
		booking.ID = id

		result = booking
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}

	return result, nil
}
