// Package vault persists the credential record of the installed wallet.
//
// Save merges field by field: only non-empty fields of the record are
// written and every other key is left untouched. Writes are sequential and
// independent; a failure leaves the earlier fields written.
package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/walletd/internal/kvstore"
	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/model"

	"go.uber.org/zap"
)

var (
	ErrSaveFailed   = errors.New("failed to save wallet")
	ErrLoadFailed   = errors.New("failed to load wallet")
	ErrDeleteFailed = errors.New("failed to delete wallet")
)

// Vault is the credential store of the single installed wallet
type Vault struct {
	store kvstore.Store
	log   *zap.Logger
}

// New creates a vault over store
func New(store kvstore.Store, log *zap.Logger) *Vault {
	return &Vault{
		store: store,
		log:   logger.OrNop(log).Named("vault"),
	}
}

// Save persists the non-empty fields of record
func (v *Vault) Save(ctx context.Context, record model.CredentialRecord) error {
	for _, kv := range record.Fields() {
		if err := v.store.Set(ctx, kv.Key, kv.Value); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}
	return nil
}

// Load returns the stored record, or nil when no wallet exists
func (v *Vault) Load(ctx context.Context) (*model.CredentialRecord, error) {
	address, found, err := v.store.Get(ctx, model.KeyAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if !found || address == "" {
		return nil, nil
	}

	record := &model.CredentialRecord{Address: address}
	optional := []struct {
		key string
		dst *string
	}{
		{model.KeySeed, &record.Seed},
		{model.KeyMnemonic, &record.Mnemonic},
		{model.KeyPrivateKey, &record.PrivateKey},
		{model.KeyPublicKey, &record.PublicKey},
	}
	for _, f := range optional {
		value, _, err := v.store.Get(ctx, f.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		*f.dst = value
	}
	return record, nil
}

// Exists reports whether a wallet is stored
func (v *Vault) Exists(ctx context.Context) (bool, error) {
	address, found, err := v.store.Get(ctx, model.KeyAddress)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return found && address != "", nil
}

// Delete removes the credential record and the security record with it.
// Every key is attempted; failures are logged and returned together.
func (v *Vault) Delete(ctx context.Context) error {
	keys := append(append([]string{}, model.CredentialKeys...), model.SecurityKeys...)

	var errs []error
	for _, key := range keys {
		if err := v.store.Delete(ctx, key); err != nil {
			v.log.Warn("failed to delete key", zap.String("key", key), zap.Error(err))
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, errors.Join(errs...))
	}
	return nil
}
