package courier

import (
	"context"
	"fmt"

	"bakeryops/internal/entities"
)

// Courier - только чтение: ростер курьеров ведется вне сервиса.
type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}
