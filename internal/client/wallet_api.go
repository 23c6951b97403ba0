package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/walletd/internal/model"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20

	// FallbackMessage is reported when the backend gave no usable message
	FallbackMessage = "Unable to reach wallet service. Please try again."
)

// APIError is returned for every failed wallet API call
type APIError struct {
	StatusCode int // 0 when the request never got a response
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if error is an APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// WalletAPIClient client for the remote wallet management API.
// The backend derives keys and signs; this client only moves JSON.
type WalletAPIClient struct {
	baseURL string
	client  *http.Client
}

// NewWalletAPIClient creates a new wallet API client
func NewWalletAPIClient(baseURL string, timeout time.Duration) *WalletAPIClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WalletAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateWallet asks the backend for a new wallet
func (c *WalletAPIClient) CreateWallet(ctx context.Context) (*model.WalletKeys, error) {
	return do[model.WalletKeys](ctx, c, http.MethodPost, "/create", struct{}{})
}

// ImportFromSeed imports a wallet from a seed
func (c *WalletAPIClient) ImportFromSeed(ctx context.Context, seed string) (*model.WalletKeys, error) {
	return do[model.WalletKeys](ctx, c, http.MethodPost, "/import/seed", model.ImportRequest{Seed: seed})
}

// ImportFromMnemonic imports a wallet from a mnemonic phrase
func (c *WalletAPIClient) ImportFromMnemonic(ctx context.Context, mnemonic string) (*model.WalletKeys, error) {
	return do[model.WalletKeys](ctx, c, http.MethodPost, "/import/mnemonic", model.ImportRequest{Mnemonic: mnemonic})
}

// ImportFromPrivateKey imports a wallet from a private key
func (c *WalletAPIClient) ImportFromPrivateKey(ctx context.Context, privateKey string) (*model.WalletKeys, error) {
	return do[model.WalletKeys](ctx, c, http.MethodPost, "/import/private-key", model.ImportRequest{PrivateKey: privateKey})
}

// GetBalance gets native balance and token list for address
func (c *WalletAPIClient) GetBalance(ctx context.Context, address string) (*model.Balance, error) {
	return do[model.Balance](ctx, c, http.MethodGet, "/balance/"+url.PathEscape(address), nil)
}

// CreateToken creates a new token owned by the wallet
func (c *WalletAPIClient) CreateToken(ctx context.Context, req model.SignedTokenCreate) (*model.CreateTokenResponse, error) {
	return do[model.CreateTokenResponse](ctx, c, http.MethodPost, "/token/create", req)
}

// Transfer sends native coins or tokens
func (c *WalletAPIClient) Transfer(ctx context.Context, req model.SignedTransfer) (*model.TransferResponse, error) {
	return do[model.TransferResponse](ctx, c, http.MethodPost, "/transfer", req)
}

func do[T any](ctx context.Context, c *WalletAPIClient, method, path string, body any) (*T, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &APIError{Message: FallbackMessage, Err: err}
	}
	defer resp.Body.Close()

	var env model.Envelope[T]
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := FallbackMessage
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Err:        fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    FallbackMessage,
			Err:        fmt.Errorf("failed to decode response: %w", decodeErr),
		}
	}
	if !env.Success || env.Data == nil {
		msg := env.Message
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return env.Data, nil
}
