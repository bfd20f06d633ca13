package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"product-insights/internal/model"
	"product-insights/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles CSV ingestion and summary requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// LoadCSV handles POST /load_csv requests.
func (h *ProductHandler) LoadCSV(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return
	}

	var req model.LoadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric,
			fmt.Errorf("failed to decode load request: %w", err), h.logger)
		return
	}

	// A missing path is reported with 200 and leaves the table untouched.
	if strings.TrimSpace(req.FilePath) == "" {
		writeMessage(w, http.StatusOK, model.MsgFilePathRequired)
		return
	}

	if _, err := h.service.LoadCSV(r.Context(), req.FilePath); err != nil {
		if errors.Is(err, model.ErrFilePathRequired) {
			writeMessage(w, http.StatusOK, model.MsgFilePathRequired)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, model.MsgCSVLoaded)
}

// Summary handles GET /summary requests.
func (h *ProductHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.MsgGeneric, err, h.logger)
		return
	}

	if summaries == nil {
		summaries = []model.CategorySummary{}
	}

	writeJSON(w, http.StatusOK, model.SummaryResponse{
		Message: model.MsgSummaryGenerated,
		Data:    summaries,
	})
}
