package handler

import (
	"net/http"

	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/model"

	"go.uber.org/zap"
)

// SecurityHandler serves the /security endpoints
type SecurityHandler struct {
	engine *lock.Engine
	log    *zap.Logger
}

// NewSecurityHandler creates a new SecurityHandler
func NewSecurityHandler(engine *lock.Engine, log *zap.Logger) *SecurityHandler {
	return &SecurityHandler{engine: engine, log: logger.OrNop(log).Named("http")}
}

// Status handles GET /security/status.
// The UI calls it whenever it regains focus.
// @Summary      Lock status
// @Description  Re-evaluates and returns the lock state
// @Tags         security
// @Produce      json
// @Success      200  {object}  model.SecurityStatus
// @Router       /security/status [get]
func (h *SecurityHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	st, err := h.engine.Refresh(r.Context())
	h.respond(w, st, err)
}

// Password handles POST, PUT and DELETE /security/password
func (h *SecurityHandler) Password(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.SetPassword(w, r)
	case http.MethodPut:
		h.ChangePassword(w, r)
	case http.MethodDelete:
		h.RemovePassword(w, r)
	default:
		w.Header().Set("Allow", "POST, PUT, DELETE")
		http.Error(w, "Method not allowed. Should be POST, PUT or DELETE", http.StatusMethodNotAllowed)
	}
}

// SetPassword handles POST /security/password
// @Summary      Set password
// @Description  Sets the first password and unlocks the wallet
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Password"
// @Success      200      {object}  model.SecurityStatus
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /security/password [post]
func (h *SecurityHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.engine.SetPassword(r.Context(), req.Password)
	h.respond(w, st, err)
}

// ChangePassword handles PUT /security/password
// @Summary      Change password
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePasswordRequest  true  "Current and new password"
// @Success      200      {object}  model.SecurityStatus
// @Failure      401      {object}  model.ErrorResponse
// @Router       /security/password [put]
func (h *SecurityHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.engine.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword)
	h.respond(w, st, err)
}

// RemovePassword handles DELETE /security/password
// @Summary      Remove password
// @Description  Removes the password after verifying it. The wallet is no longer gated.
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePasswordRequest  true  "Current password"
// @Success      200      {object}  model.SecurityStatus
// @Failure      401      {object}  model.ErrorResponse
// @Router       /security/password [delete]
func (h *SecurityHandler) RemovePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.engine.RemovePassword(r.Context(), req.CurrentPassword)
	h.respond(w, st, err)
}

// Unlock handles POST /security/unlock
// @Summary      Unlock
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Password"
// @Success      200      {object}  model.SecurityStatus
// @Failure      401      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /security/unlock [post]
func (h *SecurityHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req model.PasswordRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.engine.Unlock(r.Context(), req.Password)
	h.respond(w, st, err)
}

// Lock handles POST /security/lock
// @Summary      Lock now
// @Tags         security
// @Produce      json
// @Success      200  {object}  model.SecurityStatus
// @Router       /security/lock [post]
func (h *SecurityHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	st, err := h.engine.ForceLock(r.Context())
	h.respond(w, st, err)
}

// AutoLock handles PUT /security/auto-lock
// @Summary      Set auto-lock duration
// @Description  Sets the inactivity window in minutes. A shorter window can lock the wallet immediately.
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body      model.AutoLockRequest  true  "Minutes"
// @Success      200      {object}  model.SecurityStatus
// @Failure      400      {object}  model.ErrorResponse
// @Router       /security/auto-lock [put]
func (h *SecurityHandler) AutoLock(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}
	var req model.AutoLockRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.engine.UpdateAutoLockDuration(r.Context(), req.Minutes)
	h.respond(w, st, err)
}

func (h *SecurityHandler) respond(w http.ResponseWriter, st lock.State, err error) {
	if err != nil {
		fail(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statusOf(st))
}

func statusOf(st lock.State) model.SecurityStatus {
	return model.SecurityStatus{
		PasswordSet:     st.PasswordSet,
		Locked:          st.Locked,
		AutoLockMinutes: st.AutoLockMinutes,
		LastUnlockedAt:  st.LastUnlockedAt,
		LocksAt:         st.LocksAt(),
	}
}
