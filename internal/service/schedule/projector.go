package schedule

import (
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/visibility"
)

type Options struct {
	// Priority сортирует карточки ячейки: late, at_risk, none.
	Priority bool
}

type Projector struct {
	classifier Classifier
}

func NewProjector(classifier Classifier) *Projector {
	return &Projector{
		classifier: classifier,
	}
}

// Project раскладывает заказы по ячейкам (час, колонка). Каждый заказ попадает ровно
// в одну ячейку либо в Exceptions с причиной. Все дедлайны считаются от одного now.
func (p *Projector) Project(orders []entities.Order, slots []string, visible visibility.Set, couriers []entities.Courier, now time.Time, opts Options) Grid {
	columns := buildColumns(visible, couriers)
	columnIndex := make(map[string]int, len(columns))
	for i, column := range columns {
		columnIndex[column.Key] = i
	}

	slotIndex := make(map[string]int, len(slots))
	buckets := make([][][]entities.Order, len(slots))
	for i, slot := range slots {
		slotIndex[slot] = i
		buckets[i] = make([][]entities.Order, len(columns))
	}

	grid := Grid{Columns: columns}
	location := p.classifier.Location()

	for _, order := range sortByCreation(orders) {
		row, ok := slotIndex[slotLabel(order.DeliveryAt.In(location).Hour())]
		if !ok {
			grid.Exceptions = append(grid.Exceptions, p.exception(now, order, ErrOutOfRangeSlot))
			continue
		}

		key, err := columnKey(order, couriers)
		if err != nil {
			grid.Exceptions = append(grid.Exceptions, p.exception(now, order, err))
			continue
		}

		column, ok := columnIndex[key]
		if !ok {
			grid.Exceptions = append(grid.Exceptions, p.exception(now, order, ErrHiddenColumn))
			continue
		}

		buckets[row][column] = append(buckets[row][column], order)
	}

	grid.Rows = make([]Row, len(slots))
	for i, slot := range slots {
		grid.Rows[i] = Row{Slot: slot, Cells: make([][]Card, len(columns))}
		for j := range columns {
			grid.Rows[i].Cells[j] = p.cards(now, buckets[i][j], opts)
		}
	}
	return grid
}

func (p *Projector) cards(now time.Time, orders []entities.Order, opts Options) []Card {
	if opts.Priority {
		p.classifier.SortByPriority(now, orders)
	}

	cards := make([]Card, 0, len(orders))
	for _, order := range orders {
		cards = append(cards, Card{Order: order, Deadline: p.classifier.Classify(now, order)})
	}
	return cards
}

func (p *Projector) exception(now time.Time, order entities.Order, reason error) Exception {
	return Exception{
		Card:   Card{Order: order, Deadline: p.classifier.Classify(now, order)},
		Reason: reason,
	}
}

// columnKey: назначенный курьер (есть телефон или внешний) дает колонку курьера,
// без курьера заказ в производстве/готовый попадает в unassigned.
func columnKey(order entities.Order, couriers []entities.Courier) (string, error) {
	if visibility.Assigned(order.Courier) {
		return visibility.CourierKey(order.Courier, couriers), nil
	}

	switch order.Status {
	case entities.OrderInProduction, entities.OrderReady, entities.OrderReadyToDeliver:
		return UnassignedColumnKey, nil
	default:
		return "", ErrUnschedulable
	}
}

// buildColumns: unassigned, видимые курьеры в порядке ростера, external последним.
func buildColumns(visible visibility.Set, couriers []entities.Courier) []Column {
	columns := []Column{{Key: UnassignedColumnKey, Kind: ColumnUnassigned}}

	for _, courier := range couriers {
		if !visible.Has(courier.Key()) {
			continue
		}

		id := courier.ID
		columns = append(columns, Column{
			Key:       courier.Key(),
			Kind:      ColumnCourier,
			CourierID: &id,
			Phone:     courier.Phone,
		})
	}

	if visible.Has(entities.ExternalCourierKey) {
		columns = append(columns, Column{Key: entities.ExternalCourierKey, Kind: ColumnExternal})
	}
	return columns
}
