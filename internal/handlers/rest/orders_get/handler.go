package orders_get

import (
	"encoding/json"
	"net/http"
	"time"

	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/schedule"
	"bakeryops/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	location *time.Location
}

func New(log handlerLogger, service Service, location *time.Location) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:      handlerLog,
		service:  service,
		location: location,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	day, err := request.Day(r, h.location)
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	method, err := request.Method(r)
	if err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	board, err := h.service.Board(r.Context(), schedule.BoardQuery{
		Day:    day,
		Method: method,
		Search: request.Search(r),
	})
	if err != nil {
		h.log.Error("build order board", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.Board(board))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
