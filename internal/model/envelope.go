package model

// Envelope is the response shape of every remote wallet API call
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message"`
}

// WalletKeys represents key material returned by create/import calls
type WalletKeys struct {
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey,omitempty"`
	Seed       string `json:"seed,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// Record converts returned keys into a credential record
func (k *WalletKeys) Record() CredentialRecord {
	return CredentialRecord{
		Address:    k.Address,
		Seed:       k.Seed,
		Mnemonic:   k.Mnemonic,
		PrivateKey: k.PrivateKey,
		PublicKey:  k.PublicKey,
	}
}

// SignedTransfer is the body of POST transfer
type SignedTransfer struct {
	FromAddress  string `json:"fromAddress"`
	ToAddress    string `json:"toAddress"`
	Amount       string `json:"amount"`
	TokenAddress string `json:"tokenAddress,omitempty"`
	Signer
}

// SignedTokenCreate is the body of POST token/create
type SignedTokenCreate struct {
	Address       string `json:"address"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Decimals      int    `json:"decimals"`
	InitialSupply string `json:"initialSupply"`
	Signer
}

// Signer carries the secret the backend signs with. Exactly one field is set.
type Signer struct {
	PrivateKey string `json:"privateKey,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	Seed       string `json:"seed,omitempty"`
}

// SignerFrom picks the strongest available secret of the record
func SignerFrom(r *CredentialRecord) Signer {
	switch {
	case r.PrivateKey != "":
		return Signer{PrivateKey: r.PrivateKey}
	case r.Mnemonic != "":
		return Signer{Mnemonic: r.Mnemonic}
	default:
		return Signer{Seed: r.Seed}
	}
}
