package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/timeofday"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(input.Spaces) == 0 {
		return nil, fmt.Errorf("%w: at least one space is required", domain.ErrValidation)
	}
	for day, w := range input.Hours {
		if _, err := timeofday.Parse(w.Open); err != nil {
			return nil, fmt.Errorf("%w: %s open time: %v", domain.ErrValidation, day, err)
		}
		if _, err := timeofday.Parse(w.Close); err != nil {
			return nil, fmt.Errorf("%w: %s close time: %v", domain.ErrValidation, day, err)
		}
	}

	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      input.Name,
		VenueType: input.VenueType,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Hours:     input.Hours,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, sp := range input.Spaces {
		if sp.Name == "" {
			return nil, fmt.Errorf("%w: space name is required", domain.ErrValidation)
		}
		venue.Spaces = append(venue.Spaces, domain.Space{
			ID:        uuid.New().String(),
			VenueID:   venue.ID,
			Name:      sp.Name,
			SpaceType: sp.SpaceType,
			Capacity:  sp.Capacity,
		})
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}
