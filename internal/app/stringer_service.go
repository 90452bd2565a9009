package app

import (
	"context"

	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

type StringerRepository interface {
	Create(ctx context.Context, stringer domain.Stringer) (int64, error)
	Get(ctx context.Context, id int64) (domain.Stringer, error)
	List(ctx context.Context) ([]domain.Stringer, error)
}

type StringerService struct {
	repo StringerRepository
}

func NewStringerService(repo StringerRepository) *StringerService {
	return &StringerService{repo: repo}
}

type CreateStringerInput struct {
	Name              string
	RatePerRacket     float64
	Availability      string
	CapacityToday     int
	RatingQuality     float64
	RatingPunctuality float64
	Location          string
}

func (s *StringerService) CreateStringer(ctx context.Context, in CreateStringerInput) (domain.Stringer, error) {
	if in.Name == "" {
		return domain.Stringer{}, domain.ErrNameRequired
	}
	if in.RatePerRacket < 0 {
		return domain.Stringer{}, domain.ErrInvalidRate
	}
	if in.CapacityToday < 0 {
		return domain.Stringer{}, domain.ErrInvalidCapacity
	}

	stringer := domain.Stringer{
		Name:              in.Name,
		RatePerRacket:     in.RatePerRacket,
		Availability:      in.Availability,
		CapacityToday:     in.CapacityToday,
		RatingQuality:     in.RatingQuality,
		RatingPunctuality: in.RatingPunctuality,
		Location:          in.Location,
	}

	id, err := s.repo.Create(ctx, stringer)
	if err != nil {
		return domain.Stringer{}, err
	}
	stringer.ID = id

	return stringer, nil
}

func (s *StringerService) GetStringer(ctx context.Context, id int64) (domain.Stringer, error) {
	if id <= 0 {
		return domain.Stringer{}, domain.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *StringerService) ListStringers(ctx context.Context) ([]domain.Stringer, error) {
	return s.repo.List(ctx)
}
