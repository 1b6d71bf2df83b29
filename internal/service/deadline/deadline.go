package deadline

import (
	"sort"
	"time"

	"bakeryops/internal/entities"
)

const (
	// AtRiskWindow - до обещанного времени осталось не больше получаса.
	AtRiskWindow = 30
	// LateGrace - просрочка в пределах получаса еще считается at_risk.
	LateGrace = 30
)

type Classifier struct {
	clock    Clock
	location *time.Location
}

func New(clock Clock, location *time.Location) *Classifier {
	if location == nil {
		location = time.UTC
	}

	return &Classifier{
		clock:    clock,
		location: location,
	}
}

func (c *Classifier) Now() time.Time {
	return c.clock.Now().In(c.location)
}

func (c *Classifier) Location() *time.Location {
	return c.location
}

// Classify и SortByPriority принимают now снаружи: одна отрисовка читает часы один раз.
func (c *Classifier) Classify(now time.Time, order entities.Order) entities.DeadlineClass {
	return Classify(now, order, c.location)
}

// SortByPriority: late, затем at_risk, затем none. Внутри класса порядок сохраняется.
func (c *Classifier) SortByPriority(now time.Time, orders []entities.Order) {
	SortByPriority(now, orders, c.location)
}

// Classify - чистая функция от (now, order). Сравнение идет с точностью до минуты
// в часовом поясе пекарни.
func Classify(now time.Time, order entities.Order, location *time.Location) entities.DeadlineClass {
	if order.Status == entities.OrderCompleted {
		return entities.DeadlineNone
	}

	if location == nil {
		location = time.UTC
	}

	ref := now.In(location)
	due := order.DeliveryAt.In(location)

	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, location)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, location)

	switch {
	case dueDay.Before(refDay):
		return entities.DeadlineLate
	case dueDay.After(refDay):
		return entities.DeadlineNone
	}

	return classifyMinutes(MinutesRemaining(ref, due))
}

// MinutesRemaining - разница времени суток доставки и текущего, в минутах.
func MinutesRemaining(ref, due time.Time) int {
	return (due.Hour()*60 + due.Minute()) - (ref.Hour()*60 + ref.Minute())
}

func classifyMinutes(minutes int) entities.DeadlineClass {
	switch {
	case minutes < -LateGrace:
		return entities.DeadlineLate
	case minutes <= AtRiskWindow:
		return entities.DeadlineAtRisk
	default:
		return entities.DeadlineNone
	}
}

func SortByPriority(now time.Time, orders []entities.Order, location *time.Location) {
	classes := make(map[string]int, len(orders))
	for _, order := range orders {
		classes[order.ID] = Classify(now, order, location).Severity()
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return classes[orders[i].ID] > classes[orders[j].ID]
	})
}
