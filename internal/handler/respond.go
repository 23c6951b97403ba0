package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/walletd/internal/client"
	"github.com/AlexZinkM/walletd/internal/crypto"
	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/model"
	"github.com/AlexZinkM/walletd/internal/wallet"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

// allowMethod writes 405 and returns false when r does not use method
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
	return false
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// fail maps a domain error to its HTTP status and error code
func fail(w http.ResponseWriter, log *zap.Logger, err error) {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, lock.ErrNoPasswordSet):
		writeError(w, http.StatusConflict, model.CodeNoPasswordSet, err.Error())
	case errors.Is(err, lock.ErrIncorrectPassword):
		writeError(w, http.StatusUnauthorized, model.CodeIncorrectPassword, err.Error())
	case errors.Is(err, lock.ErrPasswordAlreadySet):
		writeError(w, http.StatusConflict, model.CodePasswordSet, err.Error())
	case errors.Is(err, lock.ErrEmptyPassword), errors.Is(err, lock.ErrInvalidDuration),
		errors.Is(err, wallet.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err.Error())
	case errors.Is(err, wallet.ErrLocked):
		writeError(w, http.StatusForbidden, model.CodeLocked, err.Error())
	case errors.Is(err, wallet.ErrWatchOnly):
		writeError(w, http.StatusForbidden, model.CodeWatchOnly, err.Error())
	case errors.Is(err, wallet.ErrWalletExists):
		writeError(w, http.StatusConflict, model.CodeWalletExists, err.Error())
	case errors.Is(err, wallet.ErrNoWallet):
		writeError(w, http.StatusNotFound, model.CodeNoWallet, err.Error())
	case errors.As(err, &apiErr):
		writeError(w, http.StatusBadGateway, model.CodeUpstream, apiErr.Message)
	case errors.Is(err, crypto.ErrInvalidPassword):
		log.Error("store passphrase rejected", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeStorage, "secure storage is unavailable")
	default:
		log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeStorage, err.Error())
	}
}
