package model

// Persisted key names in the secure store
const (
	KeyAddress    = "address"
	KeySeed       = "seed"
	KeyMnemonic   = "mnemonic"
	KeyPrivateKey = "privateKey"
	KeyPublicKey  = "publicKey"

	KeyPasswordHash    = "passwordHash"
	KeyAutoLockMinutes = "autoLockMinutes"
	KeyLastUnlockedAt  = "lastUnlockedAt"
)

// CredentialKeys lists every Credential Record key
var CredentialKeys = []string{KeyAddress, KeySeed, KeyMnemonic, KeyPrivateKey, KeyPublicKey}

// SecurityKeys lists every Security Record key
var SecurityKeys = []string{KeyPasswordHash, KeyAutoLockMinutes, KeyLastUnlockedAt}
