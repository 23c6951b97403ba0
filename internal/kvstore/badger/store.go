package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/walletd/internal/crypto"
	"github.com/AlexZinkM/walletd/internal/kvstore"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const (
	saltFile       = "store.salt"
	indexCacheSize = 16 << 20 // required by badger when encryption is on
)

// Options tunes the badger store
type Options struct {
	CostLog2 int
	Logger   *zap.Logger
}

type badgerStore struct {
	db *badger.DB
}

// NewStore opens an encrypted badger database in dir.
// The encryption key is derived from passphrase and a salt kept in dir.
// passphrase must be []byte for security (caller should zero it after use)
func NewStore(dir string, passphrase []byte, opts Options) (kvstore.Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to initialize datadir: %w", err)
	}

	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFile))
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(passphrase, salt, opts.CostLog2)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	badgerOpts := badger.DefaultOptions(dir).
		WithEncryptionKey(key).
		WithIndexCacheSize(indexCacheSize).
		WithLogger(newLogger(opts.Logger))

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if isKeyMismatch(err) {
			return nil, crypto.ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, mapClosed(err))
	}
	return string(value), true, nil
}

func (s *badgerStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, mapClosed(err))
	}
	return nil
}

func (s *badgerStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, mapClosed(err))
	}
	return nil
}

func (s *badgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != crypto.SaltLen {
			return nil, fmt.Errorf("corrupted salt file %s", path)
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read salt: %w", err)
	}

	salt, err = crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, salt, 0600); err != nil {
		return nil, fmt.Errorf("failed to write salt: %w", err)
	}
	return salt, nil
}

// badger wraps the registry error without %w, so match on the text too.
func isKeyMismatch(err error) bool {
	return errors.Is(err, badger.ErrEncryptionKeyMismatch) ||
		strings.Contains(err.Error(), badger.ErrEncryptionKeyMismatch.Error())
}

func mapClosed(err error) error {
	if errors.Is(err, badger.ErrDBClosed) {
		return kvstore.ErrClosed
	}
	return err
}

type badgerLogger struct {
	*zap.SugaredLogger
}

func newLogger(l *zap.Logger) badgerLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return badgerLogger{l.Named("badger").Sugar()}
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
