package order_transition_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bakeryops/internal/entities"
	"bakeryops/internal/generated/dto"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/order"
	"bakeryops/internal/service/transition"
	"bakeryops/pkg/logger"
	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_transition_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body dto.OrderTransitionRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	payload := transition.Payload{
		Courier:            presenter.CourierRefFromDTO(body.Courier),
		DeliveryAt:         body.DeliveryAt,
		Note:               body.Note,
		FailureReason:      body.FailureReason,
		ConfirmOutstanding: pointer.GetBool(body.ConfirmOutstanding),
	}

	updated, err := h.service.TransitionOrder(r.Context(), id, entities.OrderStatusType(body.Status), payload)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transition.ErrInvalidTransition):
			presenter.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, transition.ErrMissingCourier),
			errors.Is(err, transition.ErrMissingFailureReason),
			errors.Is(err, transition.ErrCollectionUnconfirmed):
			presenter.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			h.log.Error("transition order", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.Order(*updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
