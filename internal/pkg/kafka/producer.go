package kafka

import (
	"context"
	"fmt"
	"strings"

	"bakeryops/internal/pkg/config"
	"bakeryops/pkg/logger"
	"github.com/IBM/sarama"
)

// NewSyncProducer - продюсер для канала диспетчеризации. Ключ сообщения - id заказа,
// hash-партиционер кладет все события заказа в одну партицию.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	saramaConfig.Net.MaxOpenRequests = 1

	brokers := SplitBrokers(cfg.Brokers)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("component", "kafka-producer"),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}
	return producer, nil
}

// SplitBrokers разбирает KAFKA_BROKERS вида "host1:9092,host2:9092".
func SplitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
