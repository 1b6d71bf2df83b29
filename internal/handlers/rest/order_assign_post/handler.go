package order_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bakeryops/internal/entities"
	"bakeryops/internal/generated/dto"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/assignment"
	"bakeryops/pkg/logger"
	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_assign_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отвечает 202: курьер записан оптимистично, подтверждение придет асинхронно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body dto.AssignRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	target := entities.AssignmentTarget{
		CourierID: body.CourierId,
		External:  pointer.GetBool(body.External),
	}

	result, err := h.service.Assign(r.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidTarget),
			errors.Is(err, assignment.ErrInvalidOrderID):
			presenter.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, assignment.ErrOrderNotFound),
			errors.Is(err, assignment.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrNotEligible),
			errors.Is(err, assignment.ErrAlreadyAssigned):
			presenter.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, assignment.ErrDispatchUnavailable):
			h.log.Warn("dispatch unavailable",
				logger.NewField("order_id", id),
				logger.NewField("error", err),
			)
			presenter.Error(w, h.log, http.StatusServiceUnavailable, err)
		default:
			h.log.Error("assign courier", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignResponse{
		Token:      result.Attempt.Token,
		State:      result.Attempt.State.String(),
		Optimistic: result.Optimistic,
		Order:      presenter.Order(result.Order),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
