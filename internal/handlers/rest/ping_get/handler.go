package ping_get

import (
	"encoding/json"
	"net/http"

	"bakeryops/internal/generated/dto"
	"bakeryops/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message: pointer.ToString("pong"),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.Error("ping_get: encode JSON response", logger.NewField("error", err))
	}
}
