package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/walletd/internal/model"
)

// Open decrypts ciphertext sealed by Seal.
// A failed authentication is reported as ErrInvalidPassword.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesGCM.NonceSize() {
		return nil, errors.New("invalid nonce length")
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plaintext, nil
}

// ReadStoreFile reads the .cwt file.
// Returns nil without error when the file does not exist or is empty.
func ReadStoreFile(filePath string) (*model.StoreFile, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(fileData) == 0 {
		return nil, nil
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var sf model.StoreFile
	if err := json.Unmarshal(fileData, &sf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cwt file: %w", err)
	}
	if sf.Version != StoreFileVersion {
		return nil, fmt.Errorf("unsupported cwt file version %d", sf.Version)
	}
	return &sf, nil
}

// DecodeStoreFile decodes the base64 fields of sf
func DecodeStoreFile(sf *model.StoreFile) (salt, nonce, ciphertext []byte, err error) {
	salt, err = base64.StdEncoding.DecodeString(sf.Salt)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err = base64.StdEncoding.DecodeString(sf.Nonce)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err = base64.StdEncoding.DecodeString(sf.CipherText)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	return salt, nonce, ciphertext, nil
}

// EncodeStoreFile builds the on-disk envelope for a sealed payload
func EncodeStoreFile(network string, costLog2 int, salt, nonce, ciphertext []byte) *model.StoreFile {
	return &model.StoreFile{
		Version:    StoreFileVersion,
		Network:    network,
		CostLog2:   costLog2,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}
}
