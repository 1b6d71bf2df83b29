package dispatch

import (
	"context"
	"fmt"
	"time"

	"bakeryops/internal/entities"
	retrierconfig "bakeryops/pkg/retrier"
	"bakeryops/pkg/retrier/backoff_adapter"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "dispatch-service"

	SendAssignmentRequestMethod = "/dispatch.v1.DispatchService/SendAssignmentRequest"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// DispatchGateway - канал диспетчеризации поверх gRPC. Ack синхронный: ответ канала
// говорит только о том, что запрос принят, решение курьера придет событием.
type DispatchGateway struct {
	conn    invoker
	retrier retrier
}

func New(conn invoker) *DispatchGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &DispatchGateway{
		conn:    conn,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// SendAssignmentRequest ретраит только транспортные ошибки. Повтор безопасен:
// канал дедуплицирует по request_id.
func (d *DispatchGateway) SendAssignmentRequest(ctx context.Context, request entities.AssignmentRequest) (*entities.DispatchAck, error) {
	payload, err := toProto(request)
	if err != nil {
		return nil, err
	}

	reply := &structpb.Struct{}
	err = d.executeWithMetrics(ctx, "SendAssignmentRequest", func(ctx context.Context) error {
		return d.conn.Invoke(ctx, SendAssignmentRequestMethod, payload, reply)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, send assignment request: order %s: %w", request.OrderID, err)
	}

	return toDomainAck(reply), nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (d *DispatchGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := d.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
