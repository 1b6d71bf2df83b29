package dispatch

import (
	"fmt"
	"strconv"
	"time"

	"bakeryops/internal/entities"
	"google.golang.org/protobuf/types/known/structpb"
)

// toProto собирает payload запроса назначения. Токен уходит строкой:
// number в Struct - это double, большие токены потеряли бы точность.
func toProto(request entities.AssignmentRequest) (*structpb.Struct, error) {
	target := map[string]any{
		"external": request.Target.External,
	}
	if request.Target.CourierID != nil {
		target["courier_id"] = strconv.FormatInt(*request.Target.CourierID, 10)
	}

	fields := map[string]any{
		"request_id":        request.RequestID,
		"order_id":          request.OrderID,
		"token":             strconv.FormatInt(request.Token, 10),
		"target":            target,
		"courier_name":      request.CourierName,
		"courier_phone":     request.CourierPhone,
		"customer_name":     request.CustomerName,
		"customer_phone":    request.CustomerPhone,
		"delivery_at":       request.DeliveryAt.UTC().Format(time.RFC3339),
		"collection_amount": request.CollectionAmount.String(),
		"note":              request.Note,
	}

	if request.Address != nil {
		fields["address"] = map[string]any{
			"street":   request.Address.Street,
			"ward":     request.Address.Ward,
			"district": request.Address.District,
			"province": request.Address.Province,
		}
	}

	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build assignment request payload: %w", err)
	}
	return payload, nil
}

func toDomainAck(reply *structpb.Struct) *entities.DispatchAck {
	if reply == nil {
		return &entities.DispatchAck{}
	}

	fields := reply.GetFields()
	return &entities.DispatchAck{
		Accepted: fields["accepted"].GetBoolValue(),
		Message:  fields["message"].GetStringValue(),
	}
}
