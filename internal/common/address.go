package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

const NetworkSolana = "solana"

var ErrInvalidAddress = errors.New("invalid address")

// ValidateAddress checks address against the ledger network format.
// Unknown networks only require a non-blank address.
func ValidateAddress(network, address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	switch network {
	case NetworkSolana:
		if _, err := solana.PublicKeyFromBase58(address); err != nil {
			return fmt.Errorf("%w: not a Solana public key", ErrInvalidAddress)
		}
	}
	return nil
}
