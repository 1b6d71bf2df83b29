package visibility

import (
	"context"
	"fmt"
	"sort"
)

const keyPrefix = "visibility:hidden:"

// Repository хранит скрытые колонки оператора как Redis set. Пустой set - видно всё.
type Repository struct {
	client Cmdable
}

func New(client Cmdable) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Hidden(ctx context.Context, operator string) ([]string, error) {
	members, err := r.client.SMembers(ctx, key(operator)).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected visibility repository hidden error: %w", err)
	}
	sort.Strings(members)
	return members, nil
}

func (r *Repository) Hide(ctx context.Context, operator string, courierKey string) error {
	if err := r.client.SAdd(ctx, key(operator), courierKey).Err(); err != nil {
		return fmt.Errorf("unexpected visibility repository hide error: %w", err)
	}
	return nil
}

func (r *Repository) Show(ctx context.Context, operator string, courierKey string) error {
	if err := r.client.SRem(ctx, key(operator), courierKey).Err(); err != nil {
		return fmt.Errorf("unexpected visibility repository show error: %w", err)
	}
	return nil
}

func key(operator string) string {
	return keyPrefix + operator
}
