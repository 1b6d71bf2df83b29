package order_discard

import (
	"errors"
	"net/http"

	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/service/order"
	"bakeryops/internal/service/transition"
	"bakeryops/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_discard"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP удаляет черновик. Заказы после draft не удаляются, только переводятся по статусам.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.DiscardOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transition.ErrInvalidTransition):
			presenter.Error(w, h.log, http.StatusConflict, err)
		default:
			h.log.Error("discard order", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
