package handler

import (
	"context"
	"net/http"

	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/model"
	"github.com/AlexZinkM/walletd/internal/wallet"

	"go.uber.org/zap"
)

// WalletHandler serves the /wallet endpoints
type WalletHandler struct {
	svc *wallet.Service
	log *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(svc *wallet.Service, log *zap.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, log: logger.OrNop(log).Named("http")}
}

// Create handles POST /wallet/create
// @Summary      Create wallet
// @Description  Creates a new wallet through the wallet service and stores its keys
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	resp, err := h.svc.CreateWallet(r.Context())
	h.generated(w, resp, err, "Wallet created successfully")
}

// ImportSeed handles POST /wallet/import/seed
// @Summary      Import wallet from seed
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Seed"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/import/seed [post]
func (h *WalletHandler) ImportSeed(w http.ResponseWriter, r *http.Request) {
	h.importWith(w, r, func(ctx context.Context, req model.ImportRequest) (*model.WalletResponse, error) {
		return h.svc.ImportFromSeed(ctx, req.Seed)
	})
}

// ImportMnemonic handles POST /wallet/import/mnemonic
// @Summary      Import wallet from mnemonic
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Mnemonic phrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/import/mnemonic [post]
func (h *WalletHandler) ImportMnemonic(w http.ResponseWriter, r *http.Request) {
	h.importWith(w, r, func(ctx context.Context, req model.ImportRequest) (*model.WalletResponse, error) {
		return h.svc.ImportFromMnemonic(ctx, req.Mnemonic)
	})
}

// ImportPrivateKey handles POST /wallet/import/private-key
// @Summary      Import wallet from private key
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Private key"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/import/private-key [post]
func (h *WalletHandler) ImportPrivateKey(w http.ResponseWriter, r *http.Request) {
	h.importWith(w, r, func(ctx context.Context, req model.ImportRequest) (*model.WalletResponse, error) {
		return h.svc.ImportFromPrivateKey(ctx, req.PrivateKey)
	})
}

func (h *WalletHandler) importWith(
	w http.ResponseWriter, r *http.Request,
	run func(context.Context, model.ImportRequest) (*model.WalletResponse, error),
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req model.ImportRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := run(r.Context(), req)
	h.generated(w, resp, err, "Wallet imported successfully")
}

func (h *WalletHandler) generated(w http.ResponseWriter, resp *model.WalletResponse, err error, msg string) {
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: msg,
		Address: resp.Address,
	})
}

// Wallet handles GET and DELETE /wallet
func (h *WalletHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.Get(w, r)
	case http.MethodDelete:
		h.Delete(w, r)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		http.Error(w, "Method not allowed. Should be GET or DELETE", http.StatusMethodNotAllowed)
	}
}

// Get handles GET /wallet
// @Summary      Get wallet
// @Description  Returns address, public key and whether the wallet can sign
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet [get]
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Wallet(r.Context())
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /wallet
// @Summary      Delete wallet
// @Description  Removes the wallet and its password settings from the device
// @Tags         wallet
// @Success      204
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet [delete]
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteWallet(r.Context()); err != nil {
		fail(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Secrets handles GET /wallet/secrets
// @Summary      Reveal wallet secrets
// @Description  Returns seed, mnemonic and private key. Requires the wallet to be unlocked.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.CredentialRecord
// @Failure      403  {object}  model.ErrorResponse
// @Router       /wallet/secrets [get]
func (h *WalletHandler) Secrets(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	record, err := h.svc.Secrets(r.Context())
	if err != nil {
		fail(w, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, record)
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Gets coin and token balances. When the wallet service is unreachable the last known balance is returned with stale=true.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	resp, err := h.svc.Balance(r.Context())
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Receive handles GET /wallet/receive
// @Summary      Receive address
// @Description  Returns the wallet address and a base64 PNG QR code of it
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ReceiveResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	resp, err := h.svc.Receive(r.Context())
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Transfer handles POST /wallet/transfer
// @Summary      Send coins or tokens
// @Description  Sends coins, or tokens when tokenAddress is set. Requires the wallet to be unlocked.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req model.TransferRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Transfer(r.Context(), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateToken handles POST /wallet/token
// @Summary      Create token
// @Description  Creates a token owned by the wallet. Requires the wallet to be unlocked.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateTokenRequest  true  "Token data"
// @Success      200      {object}  model.CreateTokenResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Router       /wallet/token [post]
func (h *WalletHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req model.CreateTokenRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.CreateToken(r.Context(), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
