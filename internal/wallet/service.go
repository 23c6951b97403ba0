// Package wallet orchestrates the wallet session: it creates or imports the
// wallet through the remote API, keeps its secrets in the vault, and gates
// signing operations behind the lock engine.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/walletd/internal/common"
	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/model"
	"github.com/AlexZinkM/walletd/internal/notify"
	"github.com/AlexZinkM/walletd/internal/vault"

	"go.uber.org/zap"
)

var (
	ErrWalletExists = errors.New("a wallet already exists: delete it first")
	ErrNoWallet     = errors.New("no wallet found")
	ErrLocked       = errors.New("wallet is locked")
	ErrWatchOnly    = errors.New("wallet has no signing key")
	ErrInvalidInput = errors.New("invalid request")
)

// API is the subset of the remote wallet API the service uses
type API interface {
	CreateWallet(ctx context.Context) (*model.WalletKeys, error)
	ImportFromSeed(ctx context.Context, seed string) (*model.WalletKeys, error)
	ImportFromMnemonic(ctx context.Context, mnemonic string) (*model.WalletKeys, error)
	ImportFromPrivateKey(ctx context.Context, privateKey string) (*model.WalletKeys, error)
	GetBalance(ctx context.Context, address string) (*model.Balance, error)
	CreateToken(ctx context.Context, req model.SignedTokenCreate) (*model.CreateTokenResponse, error)
	Transfer(ctx context.Context, req model.SignedTransfer) (*model.TransferResponse, error)
}

// Service holds the collaborators of one wallet session
type Service struct {
	api      API
	vault    *vault.Vault
	engine   *lock.Engine
	notifier *notify.Notifier
	network  string
	log      *zap.Logger

	// mu serializes create/import/delete against each other
	mu sync.Mutex

	balanceMu   sync.Mutex
	lastBalance *model.Balance
}

// NewService creates the wallet service
func NewService(api API, v *vault.Vault, engine *lock.Engine, notifier *notify.Notifier, network string, log *zap.Logger) *Service {
	return &Service{
		api:      api,
		vault:    v,
		engine:   engine,
		notifier: notifier,
		network:  network,
		log:      logger.OrNop(log).Named("wallet"),
	}
}

// CreateWallet creates a new wallet through the backend and stores it
func (s *Service) CreateWallet(ctx context.Context) (*model.WalletResponse, error) {
	return s.install(ctx, "create", model.CredentialRecord{}, s.api.CreateWallet)
}

// ImportFromSeed imports a wallet from a seed and stores it
func (s *Service) ImportFromSeed(ctx context.Context, seed string) (*model.WalletResponse, error) {
	if seed == "" {
		return nil, fmt.Errorf("%w: seed is required", ErrInvalidInput)
	}
	return s.install(ctx, "import seed", model.CredentialRecord{Seed: seed},
		func(ctx context.Context) (*model.WalletKeys, error) { return s.api.ImportFromSeed(ctx, seed) })
}

// ImportFromMnemonic imports a wallet from a mnemonic phrase and stores it
func (s *Service) ImportFromMnemonic(ctx context.Context, mnemonic string) (*model.WalletResponse, error) {
	if mnemonic == "" {
		return nil, fmt.Errorf("%w: mnemonic is required", ErrInvalidInput)
	}
	return s.install(ctx, "import mnemonic", model.CredentialRecord{Mnemonic: mnemonic},
		func(ctx context.Context) (*model.WalletKeys, error) { return s.api.ImportFromMnemonic(ctx, mnemonic) })
}

// ImportFromPrivateKey imports a wallet from a private key and stores it
func (s *Service) ImportFromPrivateKey(ctx context.Context, privateKey string) (*model.WalletResponse, error) {
	if privateKey == "" {
		return nil, fmt.Errorf("%w: private key is required", ErrInvalidInput)
	}
	return s.install(ctx, "import private key", model.CredentialRecord{PrivateKey: privateKey},
		func(ctx context.Context) (*model.WalletKeys, error) { return s.api.ImportFromPrivateKey(ctx, privateKey) })
}

// install runs fetch and stores the result, overlaid with the secret the
// user supplied. Leftover security state from an earlier wallet is purged
// first so the new wallet never inherits a stale password.
func (s *Service) install(
	ctx context.Context, op string, supplied model.CredentialRecord,
	fetch func(context.Context) (*model.WalletKeys, error),
) (*model.WalletResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.vault.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrWalletExists
	}

	keys, err := fetch(ctx)
	if err != nil {
		s.log.Warn("wallet api call failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	if keys.Address == "" {
		return nil, fmt.Errorf("wallet service returned no address")
	}

	record := keys.Record()
	if supplied.Seed != "" {
		record.Seed = supplied.Seed
	}
	if supplied.Mnemonic != "" {
		record.Mnemonic = supplied.Mnemonic
	}
	if supplied.PrivateKey != "" {
		record.PrivateKey = supplied.PrivateKey
	}

	prev, err := s.engine.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.vault.Delete(ctx); err != nil {
		return nil, err
	}
	if prev.PasswordSet {
		s.log.Warn("removed password left from a previous wallet", zap.String("op", op))
		s.notifier.Publish(notify.LevelWarning, "The existing password was removed. Set a password to protect the new wallet.")
	}
	if err := s.vault.Save(ctx, record); err != nil {
		return nil, err
	}
	if _, err := s.engine.Refresh(ctx); err != nil {
		s.log.Warn("failed to refresh lock state", zap.Error(err))
	}
	s.resetBalance()

	s.log.Info("wallet stored", zap.String("op", op), zap.String("address", record.Address))
	s.notifier.Publish(notify.LevelSuccess, "Wallet ready")
	return publicView(&record), nil
}

// Wallet returns the public view of the stored wallet
func (s *Service) Wallet(ctx context.Context) (*model.WalletResponse, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return publicView(record), nil
}

// Secrets returns the full credential record. The wallet must be unlocked.
func (s *Service) Secrets(ctx context.Context) (*model.CredentialRecord, error) {
	if err := s.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.load(ctx)
}

// Receive returns the wallet address and its QR code
func (s *Service) Receive(ctx context.Context) (*model.ReceiveResponse, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	qr, err := common.QRCodeBase64(record.Address)
	if err != nil {
		return nil, err
	}
	return &model.ReceiveResponse{Address: record.Address, QR: qr}, nil
}

// DeleteWallet removes the wallet and its security state
func (s *Service) DeleteWallet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.vault.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoWallet
	}

	deleteErr := s.vault.Delete(ctx)
	s.resetBalance()
	if _, err := s.engine.Refresh(ctx); err != nil {
		s.log.Warn("failed to refresh lock state", zap.Error(err))
	}
	if deleteErr != nil {
		s.notifier.Publish(notify.LevelWarning, "Wallet could not be fully deleted. Please try again.")
		return deleteErr
	}

	s.log.Info("wallet deleted")
	s.notifier.Publish(notify.LevelInfo, "Wallet deleted")
	return nil
}

func (s *Service) load(ctx context.Context) (*model.CredentialRecord, error) {
	record, err := s.vault.Load(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoWallet
	}
	return record, nil
}

// requireUnlocked re-evaluates the lock before a gated operation
func (s *Service) requireUnlocked(ctx context.Context) error {
	st, err := s.engine.Refresh(ctx)
	if err != nil {
		return err
	}
	if st.Locked {
		return ErrLocked
	}
	return nil
}

func publicView(r *model.CredentialRecord) *model.WalletResponse {
	return &model.WalletResponse{
		Address:   r.Address,
		PublicKey: r.PublicKey,
		WatchOnly: r.WatchOnly(),
	}
}
