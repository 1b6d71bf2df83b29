package couriers_get

import (
	"encoding/json"
	"net/http"

	"bakeryops/internal/generated/dto"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		h.log.Error("get couriers", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.Courier, 0, len(courierEntities))
	for _, courier := range courierEntities {
		courierDTOs = append(courierDTOs, presenter.Courier(courier))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
