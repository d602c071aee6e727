package ports

import (
	"context"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
