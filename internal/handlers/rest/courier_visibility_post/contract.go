//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_visibility_post_test
package courier_visibility_post

import (
	"context"

	"bakeryops/internal/service/visibility"
	"bakeryops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ToggleVisibility(ctx context.Context, operator string, key string) (*visibility.ToggleResult, error)
}
