package order

import (
	"fmt"
	"strings"

	"bakeryops/internal/entities"
)

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidMethod(method entities.FulfillmentMethod) bool {
	switch method {
	case entities.StorePickup, entities.HomeDelivery:
		return true
	default:
		return false
	}
}

func validateAddress(address *entities.Address) error {
	if address == nil {
		return fmt.Errorf("%w: address is required for home delivery", ErrInvalidOrder)
	}

	if strings.TrimSpace(address.Street) == "" ||
		strings.TrimSpace(address.District) == "" ||
		strings.TrimSpace(address.Province) == "" {
		return fmt.Errorf("%w: street, district and province are required", ErrInvalidOrder)
	}
	return nil
}

func validateItem(i int, item entities.OrderItem) error {
	hasProduct := item.ProductID != nil && strings.TrimSpace(*item.ProductID) != ""
	hasCustom := strings.TrimSpace(item.CustomDescription) != ""

	if hasProduct == hasCustom {
		return fmt.Errorf("%w: item %d must reference a product or describe a custom cake", ErrInvalidOrder, i)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidOrder, i)
	}
	if item.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: item %d price is negative", ErrInvalidOrder, i)
	}
	return nil
}

func validateDraft(draft entities.Order) error {
	if strings.TrimSpace(draft.Customer.Name) == "" || draft.DeliveryAt.IsZero() || len(draft.Items) == 0 {
		return ErrMissingRequiredFields
	}

	if !isValidPhone(draft.Customer.Phone) {
		return fmt.Errorf("%w: phone %q", ErrInvalidOrder, draft.Customer.Phone)
	}

	if !isValidMethod(draft.Method) {
		return fmt.Errorf("%w: method %q", ErrInvalidOrder, draft.Method)
	}

	if draft.Method == entities.HomeDelivery {
		if err := validateAddress(draft.Customer.Address); err != nil {
			return err
		}
	} else if !draft.ShippingFee.IsZero() {
		return fmt.Errorf("%w: shipping fee on store pickup", ErrInvalidOrder)
	}

	if draft.ShippingFee.IsNegative() || draft.Deposit.IsNegative() {
		return fmt.Errorf("%w: negative amount", ErrInvalidOrder)
	}

	for i, item := range draft.Items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}
	return nil
}
