package visibility

import (
	"context"
	"fmt"
	"strings"

	"bakeryops/internal/entities"
)

type Policy struct {
	store ToggleStore
}

func New(store ToggleStore) *Policy {
	return &Policy{
		store: store,
	}
}

type ToggleResult struct {
	Key     string
	Visible bool
	Locked  bool
}

// Visible = (все ключи - скрытые) ∪ заблокированные. Пересчитывается при каждом вызове,
// поэтому visible ⊇ locked держится при любых переключениях фильтров.
// activeOrders - все незавершенные заказы, а не отфильтрованное представление.
func (p *Policy) Visible(ctx context.Context, operator string, activeOrders []entities.Order, couriers []entities.Courier) (Set, Set, error) {
	if strings.TrimSpace(operator) == "" {
		return nil, nil, ErrInvalidOperator
	}

	hidden, err := p.store.Hidden(ctx, operator)
	if err != nil {
		return nil, nil, fmt.Errorf("load hidden couriers: %w", err)
	}
	hiddenSet := NewSet(hidden...)

	locked := ComputeLocked(activeOrders, couriers)

	visible := make(Set, len(couriers)+1)
	for _, key := range AllKeys(couriers) {
		if !hiddenSet.Has(key) {
			visible.Add(key)
		}
	}

	return visible.Union(locked), locked, nil
}

// Toggle ничего не делает для заблокированного ключа и сообщает об этом через Locked.
func (p *Policy) Toggle(ctx context.Context, operator string, key string, activeOrders []entities.Order, couriers []entities.Courier) (ToggleResult, error) {
	if strings.TrimSpace(operator) == "" {
		return ToggleResult{}, ErrInvalidOperator
	}

	if !NewSet(AllKeys(couriers)...).Has(key) {
		return ToggleResult{}, fmt.Errorf("%w: %q", ErrUnknownCourierKey, key)
	}

	if ComputeLocked(activeOrders, couriers).Has(key) {
		return ToggleResult{Key: key, Visible: true, Locked: true}, nil
	}

	hidden, err := p.store.Hidden(ctx, operator)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("load hidden couriers: %w", err)
	}

	if NewSet(hidden...).Has(key) {
		if err := p.store.Show(ctx, operator, key); err != nil {
			return ToggleResult{}, fmt.Errorf("show courier %q: %w", key, err)
		}
		return ToggleResult{Key: key, Visible: true}, nil
	}

	if err := p.store.Hide(ctx, operator, key); err != nil {
		return ToggleResult{}, fmt.Errorf("hide courier %q: %w", key, err)
	}
	return ToggleResult{Key: key, Visible: false}, nil
}

// ComputeLocked собирает ключи курьеров, на которых висит хотя бы один незавершенный заказ.
func ComputeLocked(orders []entities.Order, couriers []entities.Courier) Set {
	locked := make(Set)
	for _, order := range orders {
		if order.Status.IsTerminal() || !Assigned(order.Courier) {
			continue
		}
		locked.Add(CourierKey(order.Courier, couriers))
	}
	return locked
}

// AllKeys - ключи в порядке ростера, external последним.
func AllKeys(couriers []entities.Courier) []string {
	keys := make([]string, 0, len(couriers)+1)
	for _, courier := range couriers {
		keys = append(keys, courier.Key())
	}
	return append(keys, entities.ExternalCourierKey)
}

// Assigned: курьер считается назначенным, если у него есть телефон или это внешний курьер.
func Assigned(ref *entities.CourierRef) bool {
	return ref != nil && (ref.External || ref.HasContact())
}

// CourierKey ищет курьера сначала по телефону, затем по id.
// Не найденный в ростере курьер попадает в колонку external.
func CourierKey(ref *entities.CourierRef, couriers []entities.Courier) string {
	if ref == nil || ref.External {
		return entities.ExternalCourierKey
	}

	if ref.Phone != "" {
		for _, courier := range couriers {
			if courier.Phone == ref.Phone {
				return courier.Key()
			}
		}
	}

	if ref.CourierID != nil {
		for _, courier := range couriers {
			if courier.ID == *ref.CourierID {
				return courier.Key()
			}
		}
	}

	return entities.ExternalCourierKey
}
