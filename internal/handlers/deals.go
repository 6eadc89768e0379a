package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DealsHandler struct {
	dealService domain.DealService
	logger      *zap.Logger
}

func NewDealsHandler(dealService domain.DealService, logger *zap.Logger) *DealsHandler {
	return &DealsHandler{
		dealService: dealService,
		logger:      logger,
	}
}

type createDealRequest struct {
	CountryID   *uuid.UUID      `json:"country_id"`
	BankName    string          `json:"bank_name"`
	AmountRub   decimal.Decimal `json:"amount_rub"`
	TimeMinutes int             `json:"time_minutes"`
}

func (h *DealsHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	deal, err := h.dealService.CreateDeal(r.Context(), sess, domain.CreateDealInput{
		CountryID:   req.CountryID,
		BankName:    req.BankName,
		AmountRub:   req.AmountRub,
		TimeMinutes: req.TimeMinutes,
	})
	if err != nil {
		writeError(w, h.logger, "failed to create deal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, deal)
}

type claimDealRequest struct {
	Minutes *int `json:"minutes"`
}

func (h *DealsHandler) ClaimDeal(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dealID, ok := uuidParam(r, "dealID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	// Тело необязательно: без него берется срок из заявки
	var req claimDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	deal, err := h.dealService.ClaimDeal(r.Context(), sess, dealID, req.Minutes)
	if err != nil {
		writeError(w, h.logger, "failed to claim deal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, deal)
}

func (h *DealsHandler) GetMyDeals(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deals, err := h.dealService.GetMyDeals(r.Context(), sess)
	if err != nil {
		writeError(w, h.logger, "failed to get deals", err)
		return
	}

	h.writeDeals(w, deals)
}

func (h *DealsHandler) GetExchange(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deals, err := h.dealService.GetExchange(r.Context(), sess)
	if err != nil {
		writeError(w, h.logger, "failed to get exchange", err)
		return
	}

	h.writeDeals(w, deals)
}

func (h *DealsHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dealID, ok := uuidParam(r, "dealID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	deal, err := h.dealService.GetDeal(r.Context(), sess, dealID)
	if err != nil {
		writeError(w, h.logger, "failed to get deal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, deal)
}

func (h *DealsHandler) writeDeals(w http.ResponseWriter, deals []*domain.Deal) {
	if len(deals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, deals)
}
