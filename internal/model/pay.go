package model

// TransferRequest represents request for POST /wallet/transfer
type TransferRequest struct {
	ToAddress    string `json:"toAddress"`
	Amount       string `json:"amount"`
	TokenAddress string `json:"tokenAddress,omitempty"` // empty for the native asset
	Decimals     *int   `json:"decimals,omitempty"`
}

// TransferResponse represents response for POST /wallet/transfer
type TransferResponse struct {
	TxID string `json:"txId"`
}

// CreateTokenRequest represents request for POST /wallet/token
type CreateTokenRequest struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Decimals      int    `json:"decimals"`
	InitialSupply string `json:"initialSupply"`
}

// CreateTokenResponse represents response for POST /wallet/token
type CreateTokenResponse struct {
	TokenAddress string `json:"tokenAddress"`
	TxID         string `json:"txId,omitempty"`
}
