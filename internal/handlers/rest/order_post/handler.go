package order_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bakeryops/internal/generated/dto"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/order"
	"bakeryops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.OrderCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	draft, err := presenter.OrderDraft(body)
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, fmt.Errorf("%w: %v", request.ErrInvalidParams, err))
		return
	}

	created, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrder):
			presenter.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.Error("create order", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(presenter.Order(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
