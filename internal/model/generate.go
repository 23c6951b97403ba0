package model

// ImportRequest represents request for POST /wallet/import/...
// Only the field matching the endpoint is read.
type ImportRequest struct {
	Seed       string `json:"seed,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// GenerateResponse represents response for POST /wallet/create and /wallet/import/...
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
