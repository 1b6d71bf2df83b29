package schedule_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/schedule"
	"bakeryops/internal/service/visibility"
	"bakeryops/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	clock    Clock
	location *time.Location
}

func New(log handlerLogger, service Service, clock Clock, location *time.Location) *Handler {
	handlerLog := log.With(logger.NewField("handler", "schedule_get"))

	return &Handler{
		log:      handlerLog,
		service:  service,
		clock:    clock,
		location: location,
	}
}

// ServeHTTP строит сетку дня. По умолчанию - сегодня по времени магазина и доставка на дом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	day, err := request.Day(r, h.location)
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	if day == nil {
		now := h.clock.Now().In(h.location)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location)
		day = &today
	}

	method, err := request.Method(r)
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	if method == nil {
		homeDelivery := entities.HomeDelivery
		method = &homeDelivery
	}

	priority, err := request.Bool(r, "priority")
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	view, err := h.service.Schedule(r.Context(), schedule.ScheduleQuery{
		Operator: request.Operator(r),
		Day:      *day,
		Method:   *method,
		Search:   request.Search(r),
		Priority: priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, visibility.ErrInvalidOperator):
			presenter.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("build schedule", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.Schedule(view))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
