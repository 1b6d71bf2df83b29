package dispatch

import (
	"time"

	"bakeryops/internal/entities"
)

// AssignmentRequestedMessage - тело сообщения в courier.assignment.requested.
type AssignmentRequestedMessage struct {
	RequestID        string            `json:"request_id"`
	OrderID          string            `json:"order_id"`
	Token            int64             `json:"token,string"`
	CourierID        *int64            `json:"courier_id,omitempty"`
	External         bool              `json:"external"`
	CourierName      string            `json:"courier_name"`
	CourierPhone     string            `json:"courier_phone"`
	CustomerName     string            `json:"customer_name"`
	CustomerPhone    string            `json:"customer_phone"`
	Address          *entities.Address `json:"address,omitempty"`
	DeliveryAt       time.Time         `json:"delivery_at"`
	CollectionAmount string            `json:"collection_amount"`
	Note             string            `json:"note,omitempty"`
}

func toMessage(request entities.AssignmentRequest) AssignmentRequestedMessage {
	return AssignmentRequestedMessage{
		RequestID:        request.RequestID,
		OrderID:          request.OrderID,
		Token:            request.Token,
		CourierID:        request.Target.CourierID,
		External:         request.Target.External,
		CourierName:      request.CourierName,
		CourierPhone:     request.CourierPhone,
		CustomerName:     request.CustomerName,
		CustomerPhone:    request.CustomerPhone,
		Address:          request.Address,
		DeliveryAt:       request.DeliveryAt.UTC(),
		CollectionAmount: request.CollectionAmount.String(),
		Note:             request.Note,
	}
}
