package order

import "time"

// OrderDB - строка orders. Деньги ходят как текст NUMERIC, адрес и позиции как JSONB.
type OrderDB struct {
	ID              string
	CustomerName    string
	CustomerPhone   string
	Address         []byte
	Method          string
	DeliveryAt      time.Time
	Status          string
	Items           []byte
	ShippingFee     string
	Deposit         string
	CourierID       *int64
	CourierExternal bool
	CourierPhone    string
	Note            string
	FailureReason   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
