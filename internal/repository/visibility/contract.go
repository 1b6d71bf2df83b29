//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=visibility_test
package visibility

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cmdable - подмножество redis.Cmdable, которым пользуется хранилище.
type Cmdable interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
}
