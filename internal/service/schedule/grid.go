package schedule

import (
	"fmt"
	"sort"

	"bakeryops/internal/entities"
)

const (
	TimeColumnKey       = "time"
	UnassignedColumnKey = "unassigned"
)

type ColumnKind string

const (
	ColumnUnassigned ColumnKind = "unassigned"
	ColumnCourier    ColumnKind = "courier"
	ColumnExternal   ColumnKind = "external"
)

type Column struct {
	Key       string
	Kind      ColumnKind
	CourierID *int64
	Phone     string
}

type Card struct {
	Order    entities.Order
	Deadline entities.DeadlineClass
}

// Row - одна строка сетки. Cells выровнены по Grid.Columns.
type Row struct {
	Slot  string
	Cells [][]Card
}

type Exception struct {
	Card   Card
	Reason error
}

type Grid struct {
	Columns    []Column
	Rows       []Row
	Exceptions []Exception
}

// Header - заголовок сетки вместе с ведущей колонкой времени.
func (g Grid) Header() []string {
	header := make([]string, 0, len(g.Columns)+1)
	header = append(header, TimeColumnKey)
	for _, column := range g.Columns {
		header = append(header, column.Key)
	}
	return header
}

// Cell возвращает карточки ячейки или nil, если такой ячейки нет.
func (g Grid) Cell(slot, key string) []Card {
	column := -1
	for i, c := range g.Columns {
		if c.Key == key {
			column = i
			break
		}
	}
	if column < 0 {
		return nil
	}

	for _, row := range g.Rows {
		if row.Slot == slot {
			return row.Cells[column]
		}
	}
	return nil
}

// Slots строит метки часов вида 07:00 ... 23:00 включительно.
func Slots(startHour, endHour int) ([]string, error) {
	if startHour < 0 || endHour > 23 || startHour > endHour {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidSlotRange, startHour, endHour)
	}

	slots := make([]string, 0, endHour-startHour+1)
	for hour := startHour; hour <= endHour; hour++ {
		slots = append(slots, slotLabel(hour))
	}
	return slots, nil
}

func slotLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func sortByCreation(orders []entities.Order) []entities.Order {
	sorted := make([]entities.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
