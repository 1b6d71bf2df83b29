package transition

import "bakeryops/internal/entities"

var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderDraft:          {entities.OrderCreated},
	entities.OrderCreated:        {entities.OrderInProduction},
	entities.OrderInProduction:   {entities.OrderReady, entities.OrderReadyToDeliver},
	entities.OrderReady:          {entities.OrderReadyToDeliver},
	entities.OrderReadyToDeliver: {entities.OrderOutForDelivery, entities.OrderCompleted},
	entities.OrderOutForDelivery: {entities.OrderCompleted, entities.OrderDeliveryFailed},
	entities.OrderDeliveryFailed: {entities.OrderReadyToDeliver},
	entities.OrderCompleted:      {},
}

// Allowed возвращает таблицу переходов без учета способа получения заказа.
func Allowed(status entities.OrderStatusType) []entities.OrderStatusType {
	targets := transitions[status]
	result := make([]entities.OrderStatusType, len(targets))
	copy(result, targets)
	return result
}

// AllowedFor дополнительно отсекает переходы, запрещенные для способа получения.
func AllowedFor(order entities.Order) []entities.OrderStatusType {
	result := make([]entities.OrderStatusType, 0, len(transitions[order.Status]))
	for _, target := range transitions[order.Status] {
		if methodAllows(order.Method, order.Status, target) {
			result = append(result, target)
		}
	}
	return result
}

// AssignmentEligible - статусы, в которых можно назначать курьера.
func AssignmentEligible(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderInProduction, entities.OrderReady, entities.OrderReadyToDeliver:
		return true
	default:
		return false
	}
}

func isAllowed(from, to entities.OrderStatusType) bool {
	for _, target := range transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

func methodAllows(method entities.FulfillmentMethod, from, to entities.OrderStatusType) bool {
	if from != entities.OrderReadyToDeliver {
		return true
	}

	switch to {
	case entities.OrderOutForDelivery:
		return method == entities.HomeDelivery
	case entities.OrderCompleted:
		return method == entities.StorePickup
	default:
		return true
	}
}
