package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/repository"
	"bakeryops/internal/service/order"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = `id, customer_name, customer_phone, address, method, delivery_at, status, items,
	shipping_fee::text, deposit::text, courier_id, courier_external, courier_phone, note, failure_reason,
	created_at, updated_at`

var searchEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query, args, err := qb.
		Insert("orders").
		Columns(
			"id", "customer_name", "customer_phone", "address", "method", "delivery_at", "status", "items",
			"shipping_fee", "deposit", "courier_id", "courier_external", "courier_phone", "note",
			"failure_reason", "created_at", "updated_at",
		).
		Values(
			orderModel.ID, orderModel.CustomerName, orderModel.CustomerPhone, orderModel.Address,
			orderModel.Method, orderModel.DeliveryAt, orderModel.Status, orderModel.Items,
			orderModel.ShippingFee, orderModel.Deposit, orderModel.CourierID, orderModel.CourierExternal,
			orderModel.CourierPhone, orderModel.Note, orderModel.FailureReason,
			orderModel.CreatedAt, orderModel.UpdatedAt,
		).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	var created OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &created)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&created)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + returningColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

// List - listOrders(filter). День берется в часовом поясе фильтра, чтобы заказ на 00:30 местного
// времени не уехал в соседние сутки.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(returningColumns).
		From("orders")

	if filter.Day != nil {
		loc := filter.Location
		if loc == nil {
			loc = filter.Day.Location()
		}
		day := filter.Day.In(loc)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		builder = builder.Where(sq.And{
			sq.GtOrEq{"delivery_at": start},
			sq.Lt{"delivery_at": start.AddDate(0, 0, 1)},
		})
	}
	if filter.Method != nil {
		builder = builder.Where(sq.Eq{"method": filter.Method.String()})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = status.String()
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.NotEq{"status": entities.OrderCompleted.String()})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + searchEscaper.Replace(search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_phone": pattern},
			sq.Expr("id::text ILIKE ?", pattern),
		})
	}

	query, args, err := builder.
		OrderBy("delivery_at", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels)
}

// Update - updateOrder(id, partial). UpdatedAt пишется как есть, его выставляет движок переходов
// (или восстанавливает откат назначения).
func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, order.ErrInvalidOrderID
	}

	builder := qb.
		Update("orders")

	// опционнные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.DeliveryAt != nil {
		builder = builder.Set("delivery_at", *orderModify.DeliveryAt)
	}
	if orderModify.Note != nil {
		builder = builder.Set("note", *orderModify.Note)
	}
	if orderModify.FailureReason != nil {
		builder = builder.Set("failure_reason", *orderModify.FailureReason)
	}

	switch {
	case orderModify.ClearCourier:
		builder = builder.
			Set("courier_id", nil).
			Set("courier_external", false).
			Set("courier_phone", "")
	case orderModify.Courier != nil:
		builder = builder.
			Set("courier_id", orderModify.Courier.CourierID).
			Set("courier_external", orderModify.Courier.External).
			Set("courier_phone", orderModify.Courier.Phone)
	}

	if orderModify.UpdatedAt != nil {
		builder = builder.Set("updated_at", *orderModify.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": *orderModify.ID}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM orders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.CustomerName,
		&orderModel.CustomerPhone,
		&orderModel.Address,
		&orderModel.Method,
		&orderModel.DeliveryAt,
		&orderModel.Status,
		&orderModel.Items,
		&orderModel.ShippingFee,
		&orderModel.Deposit,
		&orderModel.CourierID,
		&orderModel.CourierExternal,
		&orderModel.CourierPhone,
		&orderModel.Note,
		&orderModel.FailureReason,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}
