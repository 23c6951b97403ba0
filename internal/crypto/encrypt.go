package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/walletd/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for the local store
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) is the default: the key is derived once
	// when the store is opened and kept in memory afterwards.
	// Lower costs are accepted for tests and low-memory devices.
	DefaultCostLog2 = 18
	scryptR         = 8
	scryptP         = 1
	KeyLen          = 32
	SaltLen         = 32
	nonceLen        = 12

	StoreFileVersion = 1
)

// ErrInvalidPassword is returned when the passphrase does not open the store
var ErrInvalidPassword = errors.New("invalid password")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewSalt generates a random scrypt salt
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives a 32-byte AES key from the passphrase.
// password must be []byte for security (caller should zero it after use)
func DeriveKey(password, salt []byte, costLog2 int) ([]byte, error) {
	if costLog2 <= 0 {
		costLog2 = DefaultCostLog2
	}
	key, err := scrypt.Key(password, salt, 1<<costLog2, scryptR, scryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext with AES-256-GCM under a fresh random nonce
func Seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return nonce, aesGCM.Seal(nil, nonce, plaintext, nil), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// WriteStoreFile atomically replaces the .cwt file with sf
func WriteStoreFile(filePath string, sf *model.StoreFile) error {
	if !strings.HasSuffix(filePath, ".cwt") {
		return errors.New("file must have .cwt extension")
	}

	fileData, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)

	// Write next to the target, then rename over it
	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".cwt-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(fileDataWithBOM); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
