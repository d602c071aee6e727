package service

import (
	"context"
	"testing"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVenueService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Name:      "Riverside Park",
		VenueType: "park",
		Spaces: []domain.CreateSpaceInput{
			{Name: "Field 1", SpaceType: "field", Capacity: 22},
			{Name: "Field 2", SpaceType: "field", Capacity: 22},
		},
		Hours: domain.OperatingHours{
			"monday": {Open: "9:00 AM", Close: "5:00 PM"},
			"sunday": {Open: "10:00", Close: "16:00"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	require.Len(t, venue.Spaces, 2)
	assert.Equal(t, venue.ID, venue.Spaces[0].VenueID)
	assert.NotEmpty(t, venue.Spaces[0].ID)
}

func TestVenueService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	_, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Spaces: []domain.CreateSpaceInput{{Name: "Field 1"}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Create_NoSpaces(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	_, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Name: "Riverside Park",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Create_BadHours(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	_, err := svc.Create(context.Background(), domain.CreateVenueInput{
		Name:   "Riverside Park",
		Spaces: []domain.CreateSpaceInput{{Name: "Field 1"}},
		Hours: domain.OperatingHours{
			"monday": {Open: "13:00 PM", Close: "17:00"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_GetByID(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}
