package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlexZinkM/walletd/internal/common"
	"github.com/AlexZinkM/walletd/internal/model"
	"github.com/AlexZinkM/walletd/internal/notify"

	"go.uber.org/zap"
)

const balanceUnavailable = "Balance could not be refreshed. Showing last known balance."

// Balance fetches the wallet balance and token list.
// A failed fetch returns the last known balance marked stale; it never
// changes the lock state and never fails the caller.
func (s *Service) Balance(ctx context.Context) (*model.BalanceResponse, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	bal, err := s.api.GetBalance(ctx, record.Address)
	if err != nil {
		s.log.Warn("balance fetch failed", zap.String("address", record.Address), zap.Error(err))
		s.notifier.Publish(notify.LevelWarning, balanceUnavailable)

		last := s.cachedBalance(record.Address)
		return &model.BalanceResponse{Balance: last, Stale: true, Message: err.Error()}, nil
	}
	if bal.Address == "" {
		bal.Address = record.Address
	}
	if bal.Tokens == nil {
		bal.Tokens = []model.Token{}
	}

	s.balanceMu.Lock()
	cached := *bal
	s.lastBalance = &cached
	s.balanceMu.Unlock()

	return &model.BalanceResponse{Balance: *bal}, nil
}

// Transfer sends coins or tokens. The wallet must be unlocked and hold a
// signing secret.
func (s *Service) Transfer(ctx context.Context, req model.TransferRequest) (*model.TransferResponse, error) {
	if err := common.ValidateAddress(s.network, req.ToAddress); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if req.TokenAddress != "" {
		if err := common.ValidateAddress(s.network, req.TokenAddress); err != nil {
			return nil, fmt.Errorf("%w: token: %w", ErrInvalidInput, err)
		}
	}
	decimals := common.DefaultDecimals
	if req.Decimals != nil {
		decimals = *req.Decimals
	}
	units, err := common.ParsePositiveAmount(req.Amount, decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	record, err := s.signer(ctx)
	if err != nil {
		return nil, err
	}
	if record.Address == req.ToAddress && req.TokenAddress == "" {
		return nil, fmt.Errorf("%w: cannot transfer to the same address", ErrInvalidInput)
	}

	resp, err := s.api.Transfer(ctx, model.SignedTransfer{
		FromAddress:  record.Address,
		ToAddress:    req.ToAddress,
		Amount:       common.FormatAmount(units, decimals),
		TokenAddress: req.TokenAddress,
		Signer:       model.SignerFrom(record),
	})
	if err != nil {
		s.log.Warn("transfer failed", zap.Error(err))
		s.notifier.Publish(notify.LevelError, "Transfer failed: "+err.Error())
		return nil, err
	}

	s.log.Info("transfer sent", zap.String("tx_id", resp.TxID), zap.String("to", req.ToAddress))
	s.notifier.Publish(notify.LevelSuccess, "Transfer sent")
	return resp, nil
}

// CreateToken creates a token owned by the wallet. The wallet must be
// unlocked and hold a signing secret.
func (s *Service) CreateToken(ctx context.Context, req model.CreateTokenRequest) (*model.CreateTokenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Symbol = strings.TrimSpace(req.Symbol)
	if req.Name == "" || req.Symbol == "" {
		return nil, fmt.Errorf("%w: name and symbol are required", ErrInvalidInput)
	}
	if req.Decimals < 0 || req.Decimals > common.MaxDecimals {
		return nil, fmt.Errorf("%w: decimals must be between 0 and %d", ErrInvalidInput, common.MaxDecimals)
	}
	supply, err := common.ParsePositiveAmount(req.InitialSupply, req.Decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: initial supply: %w", ErrInvalidInput, err)
	}

	record, err := s.signer(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.CreateToken(ctx, model.SignedTokenCreate{
		Address:       record.Address,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Decimals:      req.Decimals,
		InitialSupply: common.FormatAmount(supply, req.Decimals),
		Signer:        model.SignerFrom(record),
	})
	if err != nil {
		s.log.Warn("token creation failed", zap.Error(err))
		s.notifier.Publish(notify.LevelError, "Token creation failed: "+err.Error())
		return nil, err
	}

	s.log.Info("token created", zap.String("token", resp.TokenAddress))
	s.notifier.Publish(notify.LevelSuccess, fmt.Sprintf("Token %s created", req.Symbol))
	return resp, nil
}

// signer loads the record for a signing operation
func (s *Service) signer(ctx context.Context) (*model.CredentialRecord, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if record.WatchOnly() {
		return nil, ErrWatchOnly
	}
	if err := s.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) cachedBalance(address string) model.Balance {
	s.balanceMu.Lock()
	defer s.balanceMu.Unlock()

	if s.lastBalance != nil && s.lastBalance.Address == address {
		return *s.lastBalance
	}
	return model.Balance{Address: address, Balance: "0", Tokens: []model.Token{}}
}

func (s *Service) resetBalance() {
	s.balanceMu.Lock()
	s.lastBalance = nil
	s.balanceMu.Unlock()
}
