package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCost = 10

func TestSealOpen(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, SaltLen)

	key, err := DeriveKey([]byte("passphrase"), salt, testCost)
	require.NoError(t, err)
	require.Len(t, key, KeyLen)

	nonce, ct, err := Seal(key, []byte(`{"address":"abc"}`))
	require.NoError(t, err)

	plain, err := Open(key, nonce, ct)
	require.NoError(t, err)
	require.Equal(t, `{"address":"abc"}`, string(plain))

	wrongKey, err := DeriveKey([]byte("other"), salt, testCost)
	require.NoError(t, err)
	_, err = Open(wrongKey, nonce, ct)
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestStoreFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.cwt")

	sf, err := ReadStoreFile(path)
	require.NoError(t, err)
	require.Nil(t, sf)

	in := EncodeStoreFile("solana", testCost, []byte("salt"), []byte("nonce"), []byte("ct"))
	require.NoError(t, WriteStoreFile(path, in))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, utf8BOM, raw[:3])

	out, err := ReadStoreFile(path)
	require.NoError(t, err)
	require.Equal(t, in, out)

	salt, nonce, ct, err := DecodeStoreFile(out)
	require.NoError(t, err)
	require.Equal(t, "salt", string(salt))
	require.Equal(t, "nonce", string(nonce))
	require.Equal(t, "ct", string(ct))
}

func TestWriteStoreFileRequiresExtension(t *testing.T) {
	err := WriteStoreFile(filepath.Join(t.TempDir(), "wallet.json"), EncodeStoreFile("", testCost, nil, nil, nil))
	require.Error(t, err)
}

func TestReadStoreFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	sf, err := ReadStoreFile(path)
	require.NoError(t, err)
	require.Nil(t, sf)
}
