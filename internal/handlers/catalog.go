package handlers

import (
	"net/http"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService domain.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService domain.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// requisiteResponse реквизит с номером карты, сгруппированным для показа
type requisiteResponse struct {
	*domain.Requisite
	CardNumberDisplay string `json:"card_number_display"`
}

func (h *CatalogHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.catalogService.GetCountries(r.Context())
	if err != nil {
		writeError(w, h.logger, "failed to get countries", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, countries)
}

func (h *CatalogHandler) GetBanks(w http.ResponseWriter, r *http.Request) {
	countryID, ok := uuidParam(r, "countryID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	banks, err := h.catalogService.GetBanks(r.Context(), countryID)
	if err != nil {
		writeError(w, h.logger, "failed to get banks", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, banks)
}

func (h *CatalogHandler) ResolveRequisite(w http.ResponseWriter, r *http.Request) {
	bankID, ok := uuidParam(r, "bankID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	requisite, err := h.catalogService.ResolveRequisite(r.Context(), bankID)
	if err != nil {
		writeError(w, h.logger, "failed to resolve requisite", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, requisiteResponse{
		Requisite:         requisite,
		CardNumberDisplay: service.FormatCardNumber(requisite.CardNumber),
	})
}
