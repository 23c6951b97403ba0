package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeNoPasswordSet     = "no_password_set"
	CodeIncorrectPassword = "incorrect_password"
	CodePasswordSet       = "password_already_set"
	CodeLocked            = "locked"
	CodeWalletExists      = "wallet_exists"
	CodeNoWallet          = "no_wallet"
	CodeWatchOnly         = "watch_only"
	CodeInvalidRequest    = "invalid_request"
	CodeUpstream          = "upstream_error"
	CodeStorage           = "storage_error"
)
