package assignment_resolved

import (
	"encoding/json"
	"fmt"
	"strconv"

	"bakeryops/internal/entities"
)

// resolvedEvent - тело сообщения courier.assignment.resolved.
// token принимается и числом, и строкой.
type resolvedEvent struct {
	OrderID      string      `json:"order_id"`
	Token        json.Number `json:"token"`
	Outcome      string      `json:"outcome"`
	CourierPhone string      `json:"courier_phone"`
}

func (e resolvedEvent) toDomain() (entities.ReconciliationEvent, error) {
	token, err := strconv.ParseInt(e.Token.String(), 10, 64)
	if err != nil {
		return entities.ReconciliationEvent{}, fmt.Errorf("parse token %q: %w", e.Token, err)
	}

	return entities.ReconciliationEvent{
		OrderID:      e.OrderID,
		Token:        token,
		Outcome:      entities.ReconciliationOutcome(e.Outcome),
		CourierPhone: e.CourierPhone,
	}, nil
}
