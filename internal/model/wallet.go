package model

// StoreFile represents the encrypted .cwt store file structure
type StoreFile struct {
	Version    int    `json:"version"`
	Network    string `json:"network"`
	CostLog2   int    `json:"costLog2"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// CredentialRecord represents the secrets of the single installed wallet.
// Empty fields are absent; a record exists iff Address is set.
type CredentialRecord struct {
	Address    string `json:"address"`
	Seed       string `json:"seed,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
}

// WatchOnly reports whether the record holds no signing secret
func (r *CredentialRecord) WatchOnly() bool {
	return r.Seed == "" && r.Mnemonic == "" && r.PrivateKey == ""
}

// Fields returns the record as persisted key/value pairs, in write order.
// Empty fields are skipped.
func (r *CredentialRecord) Fields() []KeyValue {
	all := []KeyValue{
		{Key: KeyAddress, Value: r.Address},
		{Key: KeySeed, Value: r.Seed},
		{Key: KeyMnemonic, Value: r.Mnemonic},
		{Key: KeyPrivateKey, Value: r.PrivateKey},
		{Key: KeyPublicKey, Value: r.PublicKey},
	}
	out := make([]KeyValue, 0, len(all))
	for _, kv := range all {
		if kv.Value != "" {
			out = append(out, kv)
		}
	}
	return out
}

// KeyValue is a single persisted entry
type KeyValue struct {
	Key   string
	Value string
}

// WalletResponse represents the public view of the stored wallet
type WalletResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey,omitempty"`
	WatchOnly bool   `json:"watchOnly"`
}

// ReceiveResponse represents response for GET /wallet/receive
type ReceiveResponse struct {
	Address string `json:"address"`
	QR      string `json:"QR"` // base64 PNG
}
