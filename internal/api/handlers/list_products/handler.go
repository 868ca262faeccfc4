package list_products

import (
	"net/http"
	"strconv"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
)

const msgInvalidAvailable = "параметр available должен быть true или false"

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products
// Query params: available (опционально, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /products - Invalid available param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAvailable)
			return
		}
		availableOnly = v
	}

	result, err := h.service.List(r.Context(), availableOnly)
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products - Products retrieved successfully: count=%d", len(result.Products))
	handlers.RespondJSON(w, http.StatusOK, result)
}
