package handler_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlexZinkM/walletd/internal/api"
	"github.com/AlexZinkM/walletd/internal/client"
	"github.com/AlexZinkM/walletd/internal/common"
	inmemorystore "github.com/AlexZinkM/walletd/internal/kvstore/inmemory"
	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/model"
	"github.com/AlexZinkM/walletd/internal/notify"
	"github.com/AlexZinkM/walletd/internal/vault"
	"github.com/AlexZinkM/walletd/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walletAddr = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	otherAddr  = "So11111111111111111111111111111111111111112"
)

type stubAPI struct {
	keys       *model.WalletKeys
	balanceErr error
}

func (s *stubAPI) CreateWallet(context.Context) (*model.WalletKeys, error) { return s.keys, nil }
func (s *stubAPI) ImportFromSeed(context.Context, string) (*model.WalletKeys, error) {
	return s.keys, nil
}
func (s *stubAPI) ImportFromMnemonic(context.Context, string) (*model.WalletKeys, error) {
	return s.keys, nil
}
func (s *stubAPI) ImportFromPrivateKey(context.Context, string) (*model.WalletKeys, error) {
	return s.keys, nil
}
func (s *stubAPI) GetBalance(_ context.Context, address string) (*model.Balance, error) {
	if s.balanceErr != nil {
		return nil, s.balanceErr
	}
	return &model.Balance{Address: address, Balance: "1.5"}, nil
}
func (s *stubAPI) CreateToken(context.Context, model.SignedTokenCreate) (*model.CreateTokenResponse, error) {
	return &model.CreateTokenResponse{TokenAddress: otherAddr}, nil
}
func (s *stubAPI) Transfer(context.Context, model.SignedTransfer) (*model.TransferResponse, error) {
	return &model.TransferResponse{TxID: "tx-1"}, nil
}

type testServer struct {
	handler  http.Handler
	api      *stubAPI
	notifier *notify.Notifier
	now      time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := inmemorystore.NewStore()
	require.NoError(t, err)

	ts := &testServer{
		api: &stubAPI{keys: &model.WalletKeys{Address: walletAddr, PublicKey: "pub", PrivateKey: "pk"}},
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	engine := lock.New(store, lock.WithClock(func() time.Time { return ts.now }))
	_, err = engine.Initialize(context.Background())
	require.NoError(t, err)

	notifier := notify.New(0)
	ts.notifier = notifier
	svc := wallet.NewService(ts.api, vault.New(store, nil), engine, notifier, common.NetworkSolana, nil)
	ts.handler = api.SetupRouter(api.Deps{Wallet: svc, Engine: engine, Notifier: notifier})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWalletLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/wallet", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, model.CodeNoWallet, decodeBody[model.ErrorResponse](t, rec).Code)

	rec = ts.do(t, http.MethodPost, "/wallet/create", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	gen := decodeBody[model.GenerateResponse](t, rec)
	assert.True(t, gen.Success)
	assert.Equal(t, walletAddr, gen.Address)

	rec = ts.do(t, http.MethodPost, "/wallet/import/seed", model.ImportRequest{Seed: "s"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, model.CodeWalletExists, decodeBody[model.ErrorResponse](t, rec).Code)

	rec = ts.do(t, http.MethodGet, "/wallet", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, walletAddr, decodeBody[model.WalletResponse](t, rec).Address)

	rec = ts.do(t, http.MethodGet, "/wallet/receive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[model.ReceiveResponse](t, rec).QR)

	rec = ts.do(t, http.MethodDelete, "/wallet", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/wallet", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportRejectsEmptySecret(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/wallet/import/mnemonic", model.ImportRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.CodeInvalidRequest, decodeBody[model.ErrorResponse](t, rec).Code)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/wallet/create"},
		{http.MethodPost, "/wallet"},
		{http.MethodPost, "/security/status"},
		{http.MethodGet, "/security/password"},
		{http.MethodPost, "/security/auto-lock"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestSecurityFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/security/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeBody[model.SecurityStatus](t, rec)
	assert.False(t, st.PasswordSet)
	assert.Equal(t, lock.DefaultAutoLockMinutes, st.AutoLockMinutes)

	rec = ts.do(t, http.MethodPost, "/security/unlock", model.PasswordRequest{Password: "pw"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, model.CodeNoPasswordSet, decodeBody[model.ErrorResponse](t, rec).Code)

	rec = ts.do(t, http.MethodPost, "/security/password", model.PasswordRequest{Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[model.SecurityStatus](t, rec)
	assert.True(t, st.PasswordSet)
	assert.False(t, st.Locked)
	require.NotNil(t, st.LocksAt)
	assert.True(t, ts.now.Add(5*time.Minute).Equal(*st.LocksAt))

	rec = ts.do(t, http.MethodPost, "/security/password", model.PasswordRequest{Password: "other"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, model.CodePasswordSet, decodeBody[model.ErrorResponse](t, rec).Code)

	rec = ts.do(t, http.MethodPost, "/security/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[model.SecurityStatus](t, rec).Locked)

	rec = ts.do(t, http.MethodPost, "/security/unlock", model.PasswordRequest{Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	er := decodeBody[model.ErrorResponse](t, rec)
	assert.Equal(t, model.CodeIncorrectPassword, er.Code)
	assert.Equal(t, "Incorrect password. Please try again.", er.Error)

	rec = ts.do(t, http.MethodPost, "/security/unlock", model.PasswordRequest{Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[model.SecurityStatus](t, rec).Locked)

	rec = ts.do(t, http.MethodPut, "/security/auto-lock", model.AutoLockRequest{Minutes: 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, "/security/auto-lock", model.AutoLockRequest{Minutes: 15})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 15, decodeBody[model.SecurityStatus](t, rec).AutoLockMinutes)

	rec = ts.do(t, http.MethodPut, "/security/password",
		model.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "pw2"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/security/password", model.ChangePasswordRequest{CurrentPassword: "pw"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/security/password", model.ChangePasswordRequest{CurrentPassword: "pw2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[model.SecurityStatus](t, rec).PasswordSet)
}

func TestLockedWalletGatesSigning(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/wallet/create", nil).Code)
	require.Equal(t, http.StatusOK,
		ts.do(t, http.MethodPost, "/security/password", model.PasswordRequest{Password: "pw"}).Code)

	transfer := model.TransferRequest{ToAddress: otherAddr, Amount: "1"}
	rec := ts.do(t, http.MethodPost, "/wallet/transfer", transfer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tx-1", decodeBody[model.TransferResponse](t, rec).TxID)

	ts.now = ts.now.Add(6 * time.Minute)

	rec = ts.do(t, http.MethodPost, "/wallet/transfer", transfer)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, model.CodeLocked, decodeBody[model.ErrorResponse](t, rec).Code)

	rec = ts.do(t, http.MethodGet, "/wallet/secrets", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodPost, "/wallet/token",
		model.CreateTokenRequest{Name: "T", Symbol: "T", Decimals: 2, InitialSupply: "10"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodPost, "/wallet/transfer", model.TransferRequest{ToAddress: "bad", Amount: "1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalanceStaleOnUpstreamFailure(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/wallet/create", nil).Code)

	rec := ts.do(t, http.MethodGet, "/wallet/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.5", decodeBody[model.BalanceResponse](t, rec).Balance.Balance)

	ts.api.balanceErr = &client.APIError{Message: client.FallbackMessage}
	rec = ts.do(t, http.MethodGet, "/wallet/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bal := decodeBody[model.BalanceResponse](t, rec)
	assert.True(t, bal.Stale)
	assert.Equal(t, "1.5", bal.Balance.Balance)
	assert.Equal(t, client.FallbackMessage, bal.Message)

	rec = ts.do(t, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decodeBody[[]notify.Notification](t, rec)
	require.Len(t, notes, 2)
	assert.Equal(t, notify.LevelSuccess, notes[0].Level)
	assert.Equal(t, notify.LevelWarning, notes[1].Level)

	rec = ts.do(t, http.MethodGet, "/notifications", nil)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestRejectsUnknownFields(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/security/password", bytes.NewBufferString(`{"pass":"x"}`))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationStream(t *testing.T) {
	ts := newTestServer(t)
	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/notifications/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readLine := func() string {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		return strings.TrimSuffix(line, "\n")
	}
	require.Equal(t, ": connected", readLine())
	require.Equal(t, "", readLine())

	note := ts.notifier.Publish(notify.LevelInfo, "hello")

	require.Equal(t, "id: "+note.ID, readLine())
	require.Equal(t, "event: notification", readLine())
	data := readLine()
	require.True(t, strings.HasPrefix(data, "data: "))

	var got notify.Notification
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(data, "data: ")), &got))
	assert.Equal(t, "hello", got.Message)
	assert.Equal(t, notify.LevelInfo, got.Level)
}
