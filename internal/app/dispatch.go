package app

import (
	"context"
	"fmt"

	grpcDispatch "bakeryops/internal/gateway/grpc/dispatch"
	kafkaDispatch "bakeryops/internal/gateway/kafka/dispatch"
	"bakeryops/internal/pkg/config"
	"bakeryops/internal/pkg/grpcclient"
	"bakeryops/internal/pkg/kafka"
	"bakeryops/internal/service/assignment"
	"bakeryops/pkg/logger"
)

// NewDispatchChannel поднимает транспорт канала диспетчеризации по DISPATCH_TRANSPORT.
// Возвращаемый cleanup закрывает соединение и должен вызываться после остановки серверов.
func NewDispatchChannel(ctx context.Context, log logger.Logger, cfg *config.Config) (assignment.DispatchChannel, func(), error) {
	dispatchLog := log.With(logger.NewField("transport", cfg.Dispatch.Transport))

	switch cfg.Dispatch.Transport {
	case config.DispatchTransportKafka:
		producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}

		cleanup := func() {
			if err := producer.Close(); err != nil {
				dispatchLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}
		return kafkaDispatch.New(producer, cfg.Dispatch.KafkaTopic), cleanup, nil

	case config.DispatchTransportGRPC:
		conn, err := grpcclient.NewConnClient(ctx, log, &cfg.Dispatch)
		if err != nil {
			return nil, nil, fmt.Errorf("gRPC client: %w", err)
		}

		cleanup := func() {
			if err := conn.Close(); err != nil {
				dispatchLog.Error("failed to close gRPC connection", logger.NewField("error", err))
			}
		}
		return grpcDispatch.New(conn), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown dispatch transport %q", cfg.Dispatch.Transport)
	}
}
