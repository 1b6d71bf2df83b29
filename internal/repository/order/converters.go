package order

import (
	"encoding/json"
	"fmt"

	"bakeryops/internal/entities"
	"github.com/shopspring/decimal"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	shippingFee, err := decimal.NewFromString(o.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("parse shipping fee: %w", err)
	}
	deposit, err := decimal.NewFromString(o.Deposit)
	if err != nil {
		return nil, fmt.Errorf("parse deposit: %w", err)
	}

	items := []entities.OrderItem{}
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}

	var address *entities.Address
	if len(o.Address) > 0 && string(o.Address) != "null" {
		address = &entities.Address{}
		if err := json.Unmarshal(o.Address, address); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
	}

	var courierRef *entities.CourierRef
	if o.CourierID != nil || o.CourierExternal || o.CourierPhone != "" {
		courierRef = &entities.CourierRef{
			CourierID: o.CourierID,
			External:  o.CourierExternal,
			Phone:     o.CourierPhone,
		}
	}

	return &entities.Order{
		ID: o.ID,
		Customer: entities.Customer{
			Name:    o.CustomerName,
			Phone:   o.CustomerPhone,
			Address: address,
		},
		Method:        entities.FulfillmentMethod(o.Method),
		DeliveryAt:    o.DeliveryAt,
		Status:        entities.OrderStatusType(o.Status),
		Items:         items,
		ShippingFee:   shippingFee,
		Deposit:       deposit,
		Courier:       courierRef,
		Note:          o.Note,
		FailureReason: o.FailureReason,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}, nil
}

func FromDomain(order *entities.Order) (*OrderDB, error) {
	items := order.Items
	if items == nil {
		items = []entities.OrderItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	var addressJSON []byte
	if order.Customer.Address != nil {
		addressJSON, err = json.Marshal(order.Customer.Address)
		if err != nil {
			return nil, fmt.Errorf("encode address: %w", err)
		}
	}

	orderDB := &OrderDB{
		ID:            order.ID,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		Address:       addressJSON,
		Method:        order.Method.String(),
		DeliveryAt:    order.DeliveryAt,
		Status:        order.Status.String(),
		Items:         itemsJSON,
		ShippingFee:   order.ShippingFee.String(),
		Deposit:       order.Deposit.String(),
		Note:          order.Note,
		FailureReason: order.FailureReason,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	if order.Courier != nil {
		orderDB.CourierID = order.Courier.CourierID
		orderDB.CourierExternal = order.Courier.External
		orderDB.CourierPhone = order.Courier.Phone
	}

	return orderDB, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", ordersDB[i].ID, err)
		}
		result = append(result, *order)
	}
	return result, nil
}
