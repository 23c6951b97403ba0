package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/walletd/internal/crypto"
	"github.com/AlexZinkM/walletd/internal/kvstore"
	badgerstore "github.com/AlexZinkM/walletd/internal/kvstore/badger"
	filestore "github.com/AlexZinkM/walletd/internal/kvstore/file"
	inmemorystore "github.com/AlexZinkM/walletd/internal/kvstore/inmemory"

	"github.com/stretchr/testify/require"
)

const testCost = 10

func TestStore(t *testing.T) {
	tests := []struct {
		name     string
		getStore func(t *testing.T) (kvstore.Store, error)
	}{
		{
			name: kvstore.InMemoryStore,
			getStore: func(*testing.T) (kvstore.Store, error) {
				return inmemorystore.NewStore()
			},
		},
		{
			name: kvstore.FileStore,
			getStore: func(t *testing.T) (kvstore.Store, error) {
				path := filepath.Join(t.TempDir(), "wallet.cwt")
				return filestore.NewStore(path, []byte("pass"), filestore.Options{CostLog2: testCost})
			},
		},
		{
			name: kvstore.BadgerStore,
			getStore: func(t *testing.T) (kvstore.Store, error) {
				return badgerstore.NewStore(t.TempDir(), []byte("pass"), badgerstore.Options{CostLog2: testCost})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, err := tt.getStore(t)
			require.NoError(t, err)
			require.NotNil(t, store)

			// Check empty store.
			_, found, err := store.Get(ctx, "address")
			require.NoError(t, err)
			require.False(t, found)

			// Check set and get.
			require.NoError(t, store.Set(ctx, "address", "addr-1"))
			require.NoError(t, store.Set(ctx, "seed", "seed-1"))
			value, found, err := store.Get(ctx, "address")
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "addr-1", value)

			// Check overwrite.
			require.NoError(t, store.Set(ctx, "address", "addr-2"))
			value, _, err = store.Get(ctx, "address")
			require.NoError(t, err)
			require.Equal(t, "addr-2", value)

			// Check delete, including a missing key.
			require.NoError(t, store.Delete(ctx, "address"))
			require.NoError(t, store.Delete(ctx, "address"))
			_, found, err = store.Get(ctx, "address")
			require.NoError(t, err)
			require.False(t, found)

			value, found, err = store.Get(ctx, "seed")
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "seed-1", value)

			require.NoError(t, store.Close())
			err = store.Set(ctx, "address", "addr-3")
			require.ErrorIs(t, err, kvstore.ErrClosed)
		})
	}
}

func TestFileStorePersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	opts := filestore.Options{Network: "solana", CostLog2: testCost}

	store, err := filestore.NewStore(path, []byte("pass"), opts)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "passwordHash", "abc"))
	require.NoError(t, store.Close())

	// Values are not stored in clear text.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "passwordHash")

	_, err = filestore.NewStore(path, []byte("wrong"), opts)
	require.ErrorIs(t, err, crypto.ErrInvalidPassword)

	store, err = filestore.NewStore(path, []byte("pass"), opts)
	require.NoError(t, err)
	value, found, err := store.Get(ctx, "passwordHash")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "abc", value)
}

func TestFileStoreExternalClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.cwt")

	store, err := filestore.NewStore(path, []byte("pass"), filestore.Options{CostLog2: testCost})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "address", "addr"))

	require.NoError(t, os.Remove(path))

	_, found, err := store.Get(ctx, "address")
	require.NoError(t, err)
	require.False(t, found)
}

func TestFileStoreRekey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	opts := filestore.Options{CostLog2: testCost}

	store, err := filestore.NewStore(path, []byte("old"), opts)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "mnemonic", "word word word"))
	require.NoError(t, store.Close())

	err = filestore.Rekey(path, []byte("bad"), []byte("new"), 0)
	require.ErrorIs(t, err, crypto.ErrInvalidPassword)

	require.NoError(t, filestore.Rekey(path, []byte("old"), []byte("new"), 0))

	_, err = filestore.NewStore(path, []byte("old"), opts)
	require.ErrorIs(t, err, crypto.ErrInvalidPassword)

	store, err = filestore.NewStore(path, []byte("new"), opts)
	require.NoError(t, err)
	value, _, err := store.Get(ctx, "mnemonic")
	require.NoError(t, err)
	require.Equal(t, "word word word", value)
}

func TestBadgerStoreWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	opts := badgerstore.Options{CostLog2: testCost}

	store, err := badgerstore.NewStore(dir, []byte("pass"), opts)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "address", "addr"))
	require.NoError(t, store.Close())

	_, err = badgerstore.NewStore(dir, []byte("wrong"), opts)
	require.ErrorIs(t, err, crypto.ErrInvalidPassword)

	store, err = badgerstore.NewStore(dir, []byte("pass"), opts)
	require.NoError(t, err)
	defer store.Close()
	value, found, err := store.Get(ctx, "address")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "addr", value)
}
