//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=visibility_test
package visibility

import "context"

// ToggleStore хранит скрытые оператором колонки. По умолчанию видны все курьеры.
type ToggleStore interface {
	Hidden(ctx context.Context, operator string) ([]string, error)
	Hide(ctx context.Context, operator string, key string) error
	Show(ctx context.Context, operator string, key string) error
}
