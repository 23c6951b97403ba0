package model

// Token represents one token held by the wallet
type Token struct {
	Address  string `json:"address"`
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Balance  string `json:"balance"`
	Decimals int    `json:"decimals"`
}

// Balance represents balance data returned by GET balance/{address}
type Balance struct {
	Address string  `json:"address"`
	Balance string  `json:"balance"`
	Tokens  []Token `json:"tokens"`
}

// BalanceResponse represents response for GET /wallet/balance.
// Stale is set when the remote call failed and the last known balance is returned.
type BalanceResponse struct {
	Balance
	Stale   bool   `json:"stale"`
	Message string `json:"message,omitempty"`
}
