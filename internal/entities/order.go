package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string
	Customer      Customer
	Method        FulfillmentMethod
	DeliveryAt    time.Time
	Status        OrderStatusType
	Items         []OrderItem
	ShippingFee   decimal.Decimal
	Deposit       decimal.Decimal
	Courier       *CourierRef
	Note          string
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Customer struct {
	Name    string
	Phone   string
	Address *Address
}

// Address нужен только для home_delivery.
type Address struct {
	Street   string `json:"street"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
}

// OrderItem ссылается либо на товар каталога, либо описывает торт на заказ.
type OrderItem struct {
	ProductID         *string         `json:"product_id,omitempty"`
	CustomDescription string          `json:"custom_description,omitempty"`
	ReferenceImages   []string        `json:"reference_images,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
}

// CourierRef - назначенный курьер: id из ростера или внешний курьер, плюс телефон для связи.
type CourierRef struct {
	CourierID *int64
	External  bool
	Phone     string
}

func (c *CourierRef) HasContact() bool {
	return c != nil && c.Phone != ""
}

type FulfillmentMethod string

const (
	StorePickup  FulfillmentMethod = "store_pickup"
	HomeDelivery FulfillmentMethod = "home_delivery"
)

func (m FulfillmentMethod) String() string {
	return string(m)
}

type OrderStatusType string

const (
	OrderDraft          OrderStatusType = "draft"
	OrderCreated        OrderStatusType = "created"
	OrderInProduction   OrderStatusType = "in_production"
	OrderReady          OrderStatusType = "ready"
	OrderReadyToDeliver OrderStatusType = "ready_to_deliver"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDeliveryFailed OrderStatusType = "delivery_failed"
	OrderCompleted      OrderStatusType = "completed"
)

// OrderStatuses - все статусы в порядке колонок канбана.
var OrderStatuses = []OrderStatusType{
	OrderDraft,
	OrderCreated,
	OrderInProduction,
	OrderReady,
	OrderReadyToDeliver,
	OrderOutForDelivery,
	OrderDeliveryFailed,
	OrderCompleted,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted
}

func (s OrderStatusType) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderModify - частичное обновление заказа (updateOrder). nil - поле не трогаем.
// ClearCourier нужен, потому что nil в Courier означает "не менять".
type OrderModify struct {
	ID            *string
	Status        *OrderStatusType
	DeliveryAt    *time.Time
	Courier       *CourierRef
	ClearCourier  bool
	Note          *string
	FailureReason *string
	UpdatedAt     *time.Time
}

type OrderFilter struct {
	Day        *time.Time
	Location   *time.Location
	Method     *FulfillmentMethod
	Statuses   []OrderStatusType
	ActiveOnly bool
	Search     string
}
