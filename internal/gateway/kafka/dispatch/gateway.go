package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakeryops/internal/entities"
	"github.com/IBM/sarama"
)

// DispatchGateway публикует запросы назначения в Kafka. Ack = брокер записал сообщение
// (WaitForAll), ответ курьера придет отдельным событием в courier.assignment.resolved.
type DispatchGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *DispatchGateway {
	return &DispatchGateway{
		producer: producer,
		topic:    topic,
	}
}

func (d *DispatchGateway) SendAssignmentRequest(ctx context.Context, request entities.AssignmentRequest) (*entities.DispatchAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("gateway dispatch, publish: %w", err)
	}

	body, err := json.Marshal(toMessage(request))
	if err != nil {
		return nil, fmt.Errorf("gateway dispatch, encode request: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: d.topic,
		// ключ - id заказа: все запросы по заказу попадают в одну партицию и не обгоняют друг друга
		Key:   sarama.StringEncoder(request.OrderID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("request_id"), Value: []byte(request.RequestID)},
		},
	}

	start := time.Now()
	partition, offset, err := d.producer.SendMessage(msg)
	DispatchPublishDuration.WithLabelValues(d.topic).Observe(time.Since(start).Seconds())
	if err != nil {
		DispatchPublishTotal.WithLabelValues(d.topic, "error").Inc()
		return nil, fmt.Errorf("gateway dispatch, publish order %s: %w", request.OrderID, err)
	}
	DispatchPublishTotal.WithLabelValues(d.topic, "ok").Inc()

	return &entities.DispatchAck{
		Accepted: true,
		Message:  fmt.Sprintf("%s/%d/%d", d.topic, partition, offset),
	}, nil
}
