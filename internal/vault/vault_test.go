package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexZinkM/walletd/internal/kvstore"
	inmemorystore "github.com/AlexZinkM/walletd/internal/kvstore/inmemory"
	"github.com/AlexZinkM/walletd/internal/model"

	"github.com/stretchr/testify/require"
)

// failingStore wraps a store and fails operations on selected keys
type failingStore struct {
	kvstore.Store
	failSet    map[string]bool
	failDelete map[string]bool
}

var errBoom = errors.New("boom")

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet[key] {
		return errBoom
	}
	return s.Store.Set(ctx, key, value)
}

func (s *failingStore) Delete(ctx context.Context, key string) error {
	if s.failDelete[key] {
		return errBoom
	}
	return s.Store.Delete(ctx, key)
}

func newStore(t *testing.T) kvstore.Store {
	store, err := inmemorystore.NewStore()
	require.NoError(t, err)
	return store
}

func TestVaultLoadEmpty(t *testing.T) {
	v := New(newStore(t), nil)

	record, err := v.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, record)

	exists, err := v.Exists(context.Background())
	require.NoError(t, err)
	require.False(t, exists)
}

func TestVaultSaveIsPartial(t *testing.T) {
	ctx := context.Background()
	v := New(newStore(t), nil)

	require.NoError(t, v.Save(ctx, model.CredentialRecord{
		Address:  "addr",
		Mnemonic: "one two three",
	}))
	require.NoError(t, v.Save(ctx, model.CredentialRecord{PublicKey: "pub"}))

	record, err := v.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, &model.CredentialRecord{
		Address:   "addr",
		Mnemonic:  "one two three",
		PublicKey: "pub",
	}, record)
	require.False(t, record.WatchOnly())

	exists, err := v.Exists(ctx)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestVaultWatchOnly(t *testing.T) {
	ctx := context.Background()
	v := New(newStore(t), nil)

	require.NoError(t, v.Save(ctx, model.CredentialRecord{Address: "addr"}))
	record, err := v.Load(ctx)
	require.NoError(t, err)
	require.True(t, record.WatchOnly())
}

func TestVaultSaveFailureIsNotRolledBack(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: newStore(t), failSet: map[string]bool{model.KeySeed: true}}
	v := New(store, nil)

	err := v.Save(ctx, model.CredentialRecord{Address: "addr", Seed: "seed", PublicKey: "pub"})
	require.ErrorIs(t, err, ErrSaveFailed)
	require.ErrorIs(t, err, errBoom)

	record, err := v.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "addr", record.Address)
	require.Empty(t, record.Seed)
	require.Empty(t, record.PublicKey)
}

func TestVaultDeleteCascadesToSecurity(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	v := New(store, nil)

	require.NoError(t, v.Save(ctx, model.CredentialRecord{Address: "addr", PrivateKey: "pk"}))
	require.NoError(t, store.Set(ctx, model.KeyPasswordHash, "hash"))
	require.NoError(t, store.Set(ctx, model.KeyAutoLockMinutes, "15"))
	require.NoError(t, store.Set(ctx, model.KeyLastUnlockedAt, "1000"))

	require.NoError(t, v.Delete(ctx))

	for _, key := range append(model.CredentialKeys, model.SecurityKeys...) {
		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.False(t, found, key)
	}
}

func TestVaultDeleteAttemptsEveryKey(t *testing.T) {
	ctx := context.Background()
	inner := newStore(t)
	store := &failingStore{Store: inner, failDelete: map[string]bool{model.KeySeed: true}}
	v := New(store, nil)

	require.NoError(t, v.Save(ctx, model.CredentialRecord{Address: "addr", Seed: "seed"}))
	require.NoError(t, inner.Set(ctx, model.KeyPasswordHash, "hash"))

	err := v.Delete(ctx)
	require.ErrorIs(t, err, ErrDeleteFailed)
	require.ErrorIs(t, err, errBoom)

	_, found, err := inner.Get(ctx, model.KeyPasswordHash)
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = inner.Get(ctx, model.KeyAddress)
	require.NoError(t, err)
	require.False(t, found)
}
