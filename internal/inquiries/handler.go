package inquiries

import (
	"encoding/json"
	"net/http"

	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// Handler handles HTTP requests for contact inquiries
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new inquiries handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// CreateInquiry handles POST /api/contact requests
func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inquiry, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create inquiry", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("contact inquiry created", "id", inquiry.ID, "name", inquiry.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(inquiry)
}
