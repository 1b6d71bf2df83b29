package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/repository"
	"bakeryops/internal/service/assignment"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = `token, order_id, target_courier_id, target_external, state, optimistic, applied_at,
	previous_courier_id, previous_external, previous_phone, previous_updated_at, deadline, reason,
	created_at, resolved_at`

// Repository хранит попытки назначения. Токен выдает BIGSERIAL, поэтому он монотонен
// для всех инстансов сервиса сразу.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, attempt entities.AssignmentAttempt) (*entities.AssignmentAttempt, error) {
	attemptModel := FromDomain(&attempt)

	query, args, err := qb.
		Insert("assignment_attempts").
		Columns(
			"order_id", "target_courier_id", "target_external", "state", "optimistic", "applied_at",
			"previous_courier_id", "previous_external", "previous_phone", "previous_updated_at",
			"deadline", "reason", "created_at", "resolved_at",
		).
		Values(
			attemptModel.OrderID, attemptModel.TargetCourierID, attemptModel.TargetExternal,
			attemptModel.State, attemptModel.Optimistic, attemptModel.AppliedAt,
			attemptModel.PreviousCourierID, attemptModel.PreviousExternal, attemptModel.PreviousPhone,
			attemptModel.PreviousUpdatedAt, attemptModel.Deadline, attemptModel.Reason,
			attemptModel.CreatedAt, attemptModel.ResolvedAt,
		).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	var created AttemptDB
	if err := scanAttempt(r.querier.QueryRow(ctx, query, args...), &created); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

// Latest - попытка с максимальным токеном, только она может менять заказ.
func (r *Repository) Latest(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error) {
	query := `SELECT ` + returningColumns + `
		FROM assignment_attempts
		WHERE order_id = $1
		ORDER BY token DESC
		LIMIT 1`

	var attemptModel AttemptDB
	err := scanAttempt(r.querier.QueryRow(ctx, query, orderID), &attemptModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, assignment.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository latest error: %w", err)
	}

	return ToDomain(&attemptModel), nil
}

func (r *Repository) Update(ctx context.Context, attemptModify entities.AssignmentAttemptModify) (*entities.AssignmentAttempt, error) {
	if attemptModify.Token == nil {
		return nil, assignment.ErrAttemptNotFound
	}

	builder := qb.
		Update("assignment_attempts")

	if attemptModify.State != nil {
		builder = builder.Set("state", attemptModify.State.String())
	}
	if attemptModify.Optimistic != nil {
		builder = builder.Set("optimistic", *attemptModify.Optimistic)
	}
	if attemptModify.AppliedAt != nil {
		builder = builder.Set("applied_at", *attemptModify.AppliedAt)
	}
	if attemptModify.Reason != nil {
		builder = builder.Set("reason", *attemptModify.Reason)
	}
	if attemptModify.ResolvedAt != nil {
		builder = builder.Set("resolved_at", *attemptModify.ResolvedAt)
	}

	query, args, err := builder.
		Where(sq.Eq{"token": *attemptModify.Token}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	var attemptModel AttemptDB
	err = scanAttempt(r.querier.QueryRow(ctx, query, args...), &attemptModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(&attemptModel), nil
}

// ListExpired отдает просроченные попытки в состоянии requesting. Выборка идет без блокировок:
// каждую попытку вызывающий перепроверяет в своей транзакции.
func (r *Repository) ListExpired(ctx context.Context, now time.Time, limit uint64) ([]entities.AssignmentAttempt, error) {
	query, args, err := qb.
		Select(returningColumns).
		From("assignment_attempts").
		Where(sq.Eq{"state": entities.AssignmentRequesting.String()}).
		Where(sq.Lt{"deadline": now}).
		OrderBy("deadline", "token").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list expired error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list expired error: %w", err)
	}
	defer rows.Close()

	attemptModels := make([]AttemptDB, 0, limit)
	for rows.Next() {
		var attemptModel AttemptDB
		if err := scanAttempt(rows, &attemptModel); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list expired error: %w", err)
		}
		attemptModels = append(attemptModels, attemptModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list expired error: %w", err)
	}

	return ToDomainList(attemptModels), nil
}

func scanAttempt(row pgx.Row, attemptModel *AttemptDB) error {
	return row.Scan(
		&attemptModel.Token,
		&attemptModel.OrderID,
		&attemptModel.TargetCourierID,
		&attemptModel.TargetExternal,
		&attemptModel.State,
		&attemptModel.Optimistic,
		&attemptModel.AppliedAt,
		&attemptModel.PreviousCourierID,
		&attemptModel.PreviousExternal,
		&attemptModel.PreviousPhone,
		&attemptModel.PreviousUpdatedAt,
		&attemptModel.Deadline,
		&attemptModel.Reason,
		&attemptModel.CreatedAt,
		&attemptModel.ResolvedAt,
	)
}
