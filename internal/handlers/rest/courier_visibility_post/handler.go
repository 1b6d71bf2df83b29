package courier_visibility_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bakeryops/internal/generated/dto"
	"bakeryops/internal/handlers/rest/presenter"
	"bakeryops/internal/handlers/rest/request"
	"bakeryops/internal/service/visibility"
	"bakeryops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "courier_visibility_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP переключает колонку курьера. Колонка с активными заказами остается видимой, Locked=true.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.VisibilityToggleRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		presenter.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ToggleVisibility(r.Context(), request.Operator(r), body.Key)
	if err != nil {
		switch {
		case errors.Is(err, visibility.ErrUnknownCourierKey),
			errors.Is(err, visibility.ErrInvalidOperator):
			presenter.Error(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.Error("toggle courier visibility", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.VisibilityToggleResponse{
		Key:     result.Key,
		Visible: result.Visible,
		Locked:  result.Locked,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
