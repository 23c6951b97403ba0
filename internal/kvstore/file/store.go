package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/walletd/internal/crypto"
	"github.com/AlexZinkM/walletd/internal/kvstore"
)

// Options tunes the file store
type Options struct {
	Network  string
	CostLog2 int // scrypt cost for new files; existing files keep their own
}

type fileStamp struct {
	modTime time.Time
	size    int64
}

func (f fileStamp) matches(info os.FileInfo) bool {
	return f.size == info.Size() && f.modTime.Equal(info.ModTime())
}

type fileStore struct {
	filePath string
	network  string
	costLog2 int
	salt     []byte
	key      []byte

	mu     sync.Mutex
	data   map[string]string
	stamp  fileStamp
	closed bool
}

// NewStore opens (or prepares) the encrypted .cwt store at filePath.
// The file is created on the first write.
// passphrase must be []byte for security (caller should zero it after use)
func NewStore(filePath string, passphrase []byte, opts Options) (kvstore.Store, error) {
	filePath = cleanAndExpandPath(filePath)
	if filepath.Ext(filePath) != ".cwt" {
		return nil, fmt.Errorf("file must have .cwt extension")
	}
	if err := makeDirectoryIfNotExists(filepath.Dir(filePath)); err != nil {
		return nil, fmt.Errorf("failed to initialize datadir: %w", err)
	}
	if opts.CostLog2 <= 0 {
		opts.CostLog2 = crypto.DefaultCostLog2
	}

	s := &fileStore{
		filePath: filePath,
		network:  opts.Network,
		costLog2: opts.CostLog2,
	}

	sf, err := crypto.ReadStoreFile(filePath)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		salt, err := crypto.NewSalt()
		if err != nil {
			return nil, err
		}
		key, err := crypto.DeriveKey(passphrase, salt, s.costLog2)
		if err != nil {
			return nil, err
		}
		s.salt, s.key, s.data = salt, key, map[string]string{}
		return s, nil
	}

	salt, _, _, err := crypto.DecodeStoreFile(sf)
	if err != nil {
		return nil, err
	}
	s.costLog2 = sf.CostLog2
	s.key, err = crypto.DeriveKey(passphrase, salt, sf.CostLog2)
	if err != nil {
		return nil, err
	}
	s.salt = salt
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(); err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	next := make(map[string]string, len(s.data)+1)
	for k, v := range s.data {
		next[k] = v
	}
	next[key] = value

	if err := s.write(next); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	if _, ok := s.data[key]; !ok {
		return nil
	}
	next := make(map[string]string, len(s.data))
	for k, v := range s.data {
		if k != key {
			next[k] = v
		}
	}

	if err := s.write(next); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	clear(s.key)
	s.data = nil
	return nil
}

// sync reloads the file when it changed on disk since the last read or write.
func (s *fileStore) sync() error {
	if s.closed {
		return kvstore.ErrClosed
	}
	info, err := os.Stat(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = map[string]string{}
			s.stamp = fileStamp{}
			return nil
		}
		return err
	}
	if s.stamp.matches(info) {
		return nil
	}
	return s.reload()
}

func (s *fileStore) reload() error {
	sf, err := crypto.ReadStoreFile(s.filePath)
	if err != nil {
		return err
	}
	if sf == nil {
		s.data = map[string]string{}
		return s.restamp()
	}

	salt, nonce, ciphertext, err := crypto.DecodeStoreFile(sf)
	if err != nil {
		return err
	}
	if string(salt) != string(s.salt) {
		return fmt.Errorf("store file was re-keyed: reopen the store")
	}
	plaintext, err := crypto.Open(s.key, nonce, ciphertext)
	if err != nil {
		return err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	data := map[string]string{}
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return fmt.Errorf("failed to unmarshal store data: %w", err)
	}
	s.data = data
	return s.restamp()
}

func (s *fileStore) write(data map[string]string) error {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal store data: %w", err)
	}
	defer clear(plaintext)

	nonce, ciphertext, err := crypto.Seal(s.key, plaintext)
	if err != nil {
		return err
	}
	sf := crypto.EncodeStoreFile(s.network, s.costLog2, s.salt, nonce, ciphertext)
	if err := crypto.WriteStoreFile(s.filePath, sf); err != nil {
		return err
	}
	s.data = data
	return s.restamp()
}

func (s *fileStore) restamp() error {
	info, err := os.Stat(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.stamp = fileStamp{}
			return nil
		}
		return err
	}
	s.stamp = fileStamp{info.ModTime(), info.Size()}
	return nil
}

func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", home, 1)
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
