package schedule

import (
	"context"
	"fmt"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/visibility"
)

// scheduledStatuses - статусы, которые имеет смысл раскладывать по сетке.
var scheduledStatuses = []entities.OrderStatusType{
	entities.OrderInProduction,
	entities.OrderReady,
	entities.OrderReadyToDeliver,
	entities.OrderOutForDelivery,
	entities.OrderDeliveryFailed,
}

type Dashboard struct {
	orders     OrderRepository
	couriers   CourierRepository
	policy     VisibilityPolicy
	classifier Classifier
	projector  *Projector
	slots      []string
	txManager  TxManager
}

func NewDashboard(
	orders OrderRepository,
	couriers CourierRepository,
	policy VisibilityPolicy,
	classifier Classifier,
	slots []string,
	txManager TxManager,
) *Dashboard {
	return &Dashboard{
		orders:     orders,
		couriers:   couriers,
		policy:     policy,
		classifier: classifier,
		projector:  NewProjector(classifier),
		slots:      slots,
		txManager:  txManager,
	}
}

type ScheduleQuery struct {
	Operator string
	Day      time.Time
	Method   entities.FulfillmentMethod
	Search   string
	Priority bool
}

type Schedule struct {
	Day     time.Time
	Method  entities.FulfillmentMethod
	Slots   []string
	Grid    Grid
	Visible visibility.Set
	Locked  visibility.Set
}

type BoardQuery struct {
	Day    *time.Time
	Method *entities.FulfillmentMethod
	Search string
}

type BoardColumn struct {
	Status entities.OrderStatusType
	Cards  []Card
}

type Board struct {
	Columns []BoardColumn
}

func (d *Dashboard) Schedule(ctx context.Context, query ScheduleQuery) (*Schedule, error) {
	var (
		view     []entities.Order
		active   []entities.Order
		couriers []entities.Courier
	)

	day := query.Day
	method := query.Method
	err := d.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		couriers, err = d.couriers.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("get couriers: %w", err)
		}

		// блокировки считаются по всем активным заказам, а не по текущему фильтру
		active, err = d.orders.List(ctx, entities.OrderFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("list active orders: %w", err)
		}

		view, err = d.orders.List(ctx, entities.OrderFilter{
			Day:      &day,
			Location: d.classifier.Location(),
			Method:   &method,
			Statuses: scheduledStatuses,
			Search:   query.Search,
		})
		if err != nil {
			return fmt.Errorf("list orders for %s: %w", day.Format(time.DateOnly), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	visible, locked, err := d.policy.Visible(ctx, query.Operator, active, couriers)
	if err != nil {
		return nil, fmt.Errorf("courier visibility: %w", err)
	}

	grid := d.projector.Project(view, d.slots, visible, couriers, d.classifier.Now(), Options{Priority: query.Priority})

	return &Schedule{
		Day:     day,
		Method:  method,
		Slots:   d.slots,
		Grid:    grid,
		Visible: visible,
		Locked:  locked,
	}, nil
}

// ToggleVisibility переключает видимость колонки курьера для оператора.
// Колонку с активными заказами скрыть нельзя.
func (d *Dashboard) ToggleVisibility(ctx context.Context, operator string, key string) (*visibility.ToggleResult, error) {
	var (
		active   []entities.Order
		couriers []entities.Courier
	)

	err := d.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		couriers, err = d.couriers.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("get couriers: %w", err)
		}

		active, err = d.orders.List(ctx, entities.OrderFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("list active orders: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := d.policy.Toggle(ctx, operator, key, active, couriers)
	if err != nil {
		return nil, fmt.Errorf("toggle %q: %w", key, err)
	}
	return &result, nil
}

// Board - канбан по статусам. Теги дедлайнов считает тот же классификатор, что и сетка.
func (d *Dashboard) Board(ctx context.Context, query BoardQuery) (*Board, error) {
	filter := entities.OrderFilter{
		Day:      query.Day,
		Location: d.classifier.Location(),
		Method:   query.Method,
		Search:   query.Search,
	}

	orders, err := d.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byStatus := make(map[entities.OrderStatusType][]entities.Order, len(entities.OrderStatuses))
	for _, order := range sortByCreation(orders) {
		byStatus[order.Status] = append(byStatus[order.Status], order)
	}

	now := d.classifier.Now()
	board := &Board{Columns: make([]BoardColumn, 0, len(entities.OrderStatuses))}
	for _, status := range entities.OrderStatuses {
		column := byStatus[status]
		d.classifier.SortByPriority(now, column)

		cards := make([]Card, 0, len(column))
		for _, order := range column {
			cards = append(cards, Card{Order: order, Deadline: d.classifier.Classify(now, order)})
		}
		board.Columns = append(board.Columns, BoardColumn{Status: status, Cards: cards})
	}
	return board, nil
}
