package assignment_resolved

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bakeryops/internal/repository"
	"bakeryops/internal/service/assignment"
	"bakeryops/pkg/logger"
	"bakeryops/pkg/retrier"
	"bakeryops/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	conflictInitialInterval = 20 * time.Millisecond
	conflictMaxInterval     = 200 * time.Millisecond
	conflictRandomization   = 0.3
	conflictMultiplier      = 2.0
	conflictMaxRetries      = 3
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	retrier                  retrier.Retrier
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "courier.assignment.resolved"))

	// повторяются только конфликты сериализации, остальное решает messageProcessing
	conflictRetrier := backoff_adapter.New(retrier.Config{
		InitialInterval: conflictInitialInterval,
		MaxInterval:     conflictMaxInterval,
		MaxElapsedTime:  timeout,
		Randomization:   conflictRandomization,
		Multiplier:      conflictMultiplier,
		MaxRetries:      conflictMaxRetries,
		ShouldRetry:     repository.IsSerializationConflict,
		Notify: func(err error, next time.Duration) {
			handlerLog.Warn("assignment.resolved: serialization conflict, retrying",
				logger.NewField("error", err),
				logger.NewField("retry_in", next.String()),
			)
		},
	})

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		retrier:                  conflictRetrier,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim обрабатывает сообщения партиции строго последовательно:
// события одного заказа приходят в одну партицию и применяются по порядку.
func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("assignment.resolved: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("assignment.resolved: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если сообщение нужно оставить непомеченным для
// повторной доставки: контекст отменен или ошибка не доменная.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var raw resolvedEvent
	if err := json.Unmarshal(message.Value, &raw); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("assignment.resolved handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	event, err := raw.toDomain()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("assignment.resolved handler received bad token")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("token", event.Token),
		logger.NewField("outcome", event.Outcome.String()),
		logger.NewField("offset", message.Offset),
	)

	var result *assignment.ReconcileResult
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var reconcileErr error
		result, reconcileErr = h.service.Reconcile(ctx, event)
		return reconcileErr
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("assignment.resolved handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, assignment.ErrStaleReconciliation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("assignment.resolved handler dropped stale event")

		case errors.Is(err, assignment.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("assignment.resolved handler invalid event")

		case errors.Is(err, assignment.ErrOrderNotFound),
			errors.Is(err, assignment.ErrCourierNotFound),
			errors.Is(err, assignment.ErrAttemptNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("assignment.resolved handler dropped event for missing entity")

		case errors.Is(err, assignment.ErrRollbackConflict):
			// повтор не поможет, нужен оператор
			msgLog.With(
				logger.NewField("error", err),
			).Error("assignment.resolved handler could not roll back courier")

		default:
			// reconcile идемпотентен, повторная доставка безопасна
			msgLog.With(
				logger.NewField("error", err),
			).Error("assignment.resolved handler failed to reconcile, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	if result.Duplicate {
		msgLog.With(
			logger.NewField("state", result.Attempt.State.String()),
		).Warn("assignment.resolved: duplicate event, attempt already resolved")
	} else {
		msgLog.With(
			logger.NewField("state", result.Attempt.State.String()),
		).Info("assignment.resolved: processed")
	}

	sess.MarkMessage(message, "")
	return false
}
