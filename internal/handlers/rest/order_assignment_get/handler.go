package order_assignment_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/service/assignment"
	"bakeryops/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_assignment_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	attempt, err := h.service.Pending(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("get assignment", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// назначений по заказу еще не было
	if attempt == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.AssignmentStatus(*attempt))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
