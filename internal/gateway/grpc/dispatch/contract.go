//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"google.golang.org/grpc"
)

// invoker - *grpc.ClientConn. Сгенерированного клиента у канала диспетчеризации нет,
// сообщения ходят как google.protobuf.Struct.
type invoker interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
