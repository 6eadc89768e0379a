package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/drop-service/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletHandler struct {
	walletService domain.WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService domain.WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	wallet, err := h.walletService.GetWallet(r.Context(), sess)
	if err != nil {
		writeError(w, h.logger, "failed to get wallet", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, wallet)
}

type withdrawRequest struct {
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.walletService.RequestWithdrawal(r.Context(), sess, req.AmountUSD)
	if err != nil {
		writeError(w, h.logger, "failed to request withdrawal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, withdrawal)
}
