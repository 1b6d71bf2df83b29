package presenter

import (
	"encoding/json"
	"net/http"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/generated/dto"
	"bakeryops/internal/service/ledger"
	"bakeryops/internal/service/schedule"
	"bakeryops/pkg/logger"
	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Error пишет ErrorResponse с текстом ошибки. Используется там, где одного кода мало.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(dto.ErrorResponse{Message: err.Error()}); encodeErr != nil {
		log.Error("encode JSON response", logger.NewField("error", encodeErr))
	}
}

func Order(order entities.Order) dto.Order {
	result := dto.Order{
		Id:          order.ID,
		Customer:    customer(order.Customer),
		Method:      order.Method.String(),
		DeliveryAt:  order.DeliveryAt,
		Status:      order.Status.String(),
		Items:       items(order.Items),
		ShippingFee: order.ShippingFee.StringFixed(2),
		Deposit:     order.Deposit.StringFixed(2),
		Total:       ledger.Total(order).StringFixed(2),
		Collection:  ledger.Collection(order).StringFixed(2),
		Courier:     CourierRef(order.Courier),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	if order.Note != "" {
		result.Note = pointer.ToString(order.Note)
	}
	if order.FailureReason != "" {
		result.FailureReason = pointer.ToString(order.FailureReason)
	}
	return result
}

func Orders(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, Order(order))
	}
	return result
}

func CourierRef(ref *entities.CourierRef) *dto.CourierRef {
	if ref == nil {
		return nil
	}

	result := &dto.CourierRef{CourierId: ref.CourierID}
	if ref.External {
		result.External = pointer.ToBool(true)
	}
	if ref.Phone != "" {
		result.Phone = pointer.ToString(ref.Phone)
	}
	return result
}

func Courier(courier entities.Courier) dto.Courier {
	areas := courier.ServiceAreas
	if areas == nil {
		areas = []string{}
	}

	return dto.Courier{
		Id:           courier.ID,
		Name:         courier.Name,
		Phone:        courier.Phone,
		Status:       courier.Status.String(),
		ServiceAreas: areas,
	}
}

func Card(card schedule.Card) dto.OrderCard {
	return dto.OrderCard{
		Order:    Order(card.Order),
		Deadline: card.Deadline.String(),
	}
}

func cards(list []schedule.Card) []dto.OrderCard {
	result := make([]dto.OrderCard, 0, len(list))
	for _, card := range list {
		result = append(result, Card(card))
	}
	return result
}

func Board(board *schedule.Board) dto.Board {
	result := dto.Board{Columns: make([]dto.BoardColumn, 0, len(board.Columns))}
	for _, column := range board.Columns {
		result.Columns = append(result.Columns, dto.BoardColumn{
			Status: column.Status.String(),
			Cards:  cards(column.Cards),
		})
	}
	return result
}

func Schedule(view *schedule.Schedule) dto.Schedule {
	result := dto.Schedule{
		Day:        view.Day.Format(time.DateOnly),
		Method:     view.Method.String(),
		Header:     view.Grid.Header(),
		Columns:    make([]dto.ScheduleColumn, 0, len(view.Grid.Columns)),
		Rows:       make([]dto.ScheduleRow, 0, len(view.Grid.Rows)),
		Exceptions: make([]dto.ScheduleException, 0, len(view.Grid.Exceptions)),
	}

	for _, column := range view.Grid.Columns {
		item := dto.ScheduleColumn{
			Key:       column.Key,
			Kind:      string(column.Kind),
			CourierId: column.CourierID,
			Locked:    view.Locked.Has(column.Key),
		}
		if column.Phone != "" {
			item.Phone = pointer.ToString(column.Phone)
		}
		result.Columns = append(result.Columns, item)
	}

	for _, row := range view.Grid.Rows {
		cells := make([][]dto.OrderCard, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cards(cell))
		}
		result.Rows = append(result.Rows, dto.ScheduleRow{Slot: row.Slot, Cells: cells})
	}

	for _, exception := range view.Grid.Exceptions {
		result.Exceptions = append(result.Exceptions, dto.ScheduleException{
			Card:   Card(exception.Card),
			Reason: exception.Reason.Error(),
		})
	}
	return result
}

func AssignmentStatus(attempt entities.AssignmentAttempt) dto.AssignmentStatus {
	result := dto.AssignmentStatus{
		Token:           attempt.Token,
		OrderId:         attempt.OrderID,
		State:           attempt.State.String(),
		Pending:         attempt.State.IsPending(),
		Optimistic:      attempt.Optimistic,
		TargetCourierId: attempt.Target.CourierID,
		Deadline:        attempt.Deadline,
		CreatedAt:       attempt.CreatedAt,
		ResolvedAt:      attempt.ResolvedAt,
	}
	if attempt.Target.External {
		result.TargetExternal = pointer.ToBool(true)
	}
	if attempt.Reason != "" {
		result.Reason = pointer.ToString(attempt.Reason)
	}
	return result
}

func customer(c entities.Customer) dto.Customer {
	result := dto.Customer{
		Name:  c.Name,
		Phone: c.Phone,
	}
	if c.Address != nil {
		result.Address = &dto.Address{
			Street:   c.Address.Street,
			District: c.Address.District,
			Province: c.Address.Province,
		}
		if c.Address.Ward != "" {
			result.Address.Ward = pointer.ToString(c.Address.Ward)
		}
	}
	return result
}

func items(list []entities.OrderItem) []dto.OrderItem {
	result := make([]dto.OrderItem, 0, len(list))
	for _, item := range list {
		out := dto.OrderItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		}
		if item.CustomDescription != "" {
			out.CustomDescription = pointer.ToString(item.CustomDescription)
		}
		if len(item.ReferenceImages) > 0 {
			images := item.ReferenceImages
			out.ReferenceImages = &images
		}
		result = append(result, out)
	}
	return result
}

// OrderDraft переводит тело POST /orders в черновик. Суммы уже проверены тегом numeric.
func OrderDraft(body dto.OrderCreate) (entities.Order, error) {
	draft := entities.Order{
		Customer: entities.Customer{
			Name:  body.Customer.Name,
			Phone: body.Customer.Phone,
		},
		Method:     entities.FulfillmentMethod(body.Method),
		DeliveryAt: body.DeliveryAt,
		Note:       pointer.GetString(body.Note),
	}

	if address := body.Customer.Address; address != nil {
		draft.Customer.Address = &entities.Address{
			Street:   address.Street,
			Ward:     pointer.GetString(address.Ward),
			District: address.District,
			Province: address.Province,
		}
	}

	var err error
	if draft.ShippingFee, err = parseAmount(body.ShippingFee); err != nil {
		return entities.Order{}, err
	}
	if draft.Deposit, err = parseAmount(body.Deposit); err != nil {
		return entities.Order{}, err
	}

	draft.Items = make([]entities.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return entities.Order{}, err
		}

		out := entities.OrderItem{
			ProductID:         item.ProductId,
			CustomDescription: pointer.GetString(item.CustomDescription),
			UnitPrice:         price,
			Quantity:          item.Quantity,
		}
		if item.ReferenceImages != nil {
			out.ReferenceImages = *item.ReferenceImages
		}
		draft.Items = append(draft.Items, out)
	}
	return draft, nil
}

func CourierRefFromDTO(ref *dto.CourierRef) *entities.CourierRef {
	if ref == nil {
		return nil
	}

	return &entities.CourierRef{
		CourierID: ref.CourierId,
		External:  pointer.GetBool(ref.External),
		Phone:     pointer.GetString(ref.Phone),
	}
}

func parseAmount(raw *string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
