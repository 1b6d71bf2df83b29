package courier

import (
	"context"
	"errors"
	"fmt"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/courier"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, name, phone, status, service_areas, created_at, updated_at`

// Repository - ростер курьеров только на чтение, жизненным циклом курьеров управляет другая система.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + selectColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := scanCourier(r.querier.QueryRow(ctx, query, id), &courierModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// GetAll отдает ростер в порядке id, этот порядок задает порядок колонок сетки.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `
	SELECT ` + selectColumns + `
	FROM couriers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		if err := scanCourier(rows, &courierModel); err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func scanCourier(row pgx.Row, courierModel *CourierDB) error {
	return row.Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.Status,
		&courierModel.ServiceAreas,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
}
