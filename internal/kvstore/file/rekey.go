package filestore

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/walletd/internal/crypto"
)

// Rekey re-encrypts the .cwt store under newPassphrase with a fresh salt.
// Only the salt, nonce and cipherText change; the stored values do not.
// Passphrases must be []byte for security (caller should zero them after use)
func Rekey(filePath string, oldPassphrase, newPassphrase []byte, costLog2 int) error {
	filePath = cleanAndExpandPath(filePath)

	sf, err := crypto.ReadStoreFile(filePath)
	if err != nil {
		return err
	}
	if sf == nil {
		return errors.New("store file does not exist or is empty")
	}

	salt, nonce, ciphertext, err := crypto.DecodeStoreFile(sf)
	if err != nil {
		return err
	}
	oldKey, err := crypto.DeriveKey(oldPassphrase, salt, sf.CostLog2)
	if err != nil {
		return err
	}
	defer clear(oldKey)

	plaintext, err := crypto.Open(oldKey, nonce, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to decrypt store: %w", err)
	}
	defer clear(plaintext)

	if costLog2 <= 0 {
		costLog2 = sf.CostLog2
	}
	newSalt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	newKey, err := crypto.DeriveKey(newPassphrase, newSalt, costLog2)
	if err != nil {
		return err
	}
	defer clear(newKey)

	newNonce, newCiphertext, err := crypto.Seal(newKey, plaintext)
	if err != nil {
		return err
	}
	return crypto.WriteStoreFile(filePath, crypto.EncodeStoreFile(sf.Network, costLog2, newSalt, newNonce, newCiphertext))
}
