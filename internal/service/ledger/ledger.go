package ledger

import (
	"bakeryops/internal/entities"
	"github.com/shopspring/decimal"
)

// Total = Σ unit_price×qty + доставка (только для home_delivery).
func Total(order entities.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if order.Method == entities.HomeDelivery {
		total = total.Add(order.ShippingFee)
	}
	return total
}

// Collection - сумма к получению при передаче заказа, не бывает отрицательной.
func Collection(order entities.Order) decimal.Decimal {
	rest := Total(order).Sub(order.Deposit)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

func Outstanding(order entities.Order) bool {
	return Collection(order).IsPositive()
}
