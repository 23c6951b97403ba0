// Package lock decides whether the wallet is locked.
//
// The decision is a pure function of three persisted values (password hash
// presence, auto-lock minutes, last unlock time) and the current time. Nothing
// runs in the background: callers re-evaluate with Refresh whenever the UI
// resumes, and a lapsed session is only observed, never pushed.
package lock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/AlexZinkM/walletd/internal/kvstore"
	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/model"

	"go.uber.org/zap"
)

var (
	ErrNoPasswordSet      = errors.New("no password set")
	ErrIncorrectPassword  = errors.New("Incorrect password. Please try again.")
	ErrPasswordAlreadySet = errors.New("password already set")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrInvalidDuration    = errors.New("auto-lock duration must be a positive number of minutes")
	ErrPersistence        = errors.New("failed to persist security settings")
	ErrReadFailed         = errors.New("failed to read security settings")
)

// Engine computes and maintains the lock state.
// Every operation is a read-compute-write against the store under one mutex,
// so concurrent calls serialize and the last write wins.
type Engine struct {
	store kvstore.Store
	hash  HashFunc
	now   func() time.Time
	log   *zap.Logger

	mu    sync.Mutex
	state State
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithHasher replaces the password digest
func WithHasher(h HashFunc) Option {
	return func(e *Engine) { e.hash = h }
}

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine over store. Call Initialize before use.
func New(store kvstore.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		hash:  SHA256Hex,
		now:   time.Now,
		state: State{AutoLockMinutes: DefaultAutoLockMinutes},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = logger.OrNop(e.log).Named("lock")
	return e
}

// security is the persisted security record
type security struct {
	passwordHash   string
	minutes        int
	lastUnlockedAt *time.Time
}

func (s security) passwordSet() bool {
	return s.passwordHash != ""
}

// State returns the last computed snapshot without touching storage
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Initialize loads the security record and computes the lock state.
// It runs once per process start.
func (e *Engine) Initialize(ctx context.Context) (State, error) {
	st, err := e.Refresh(ctx)
	if err != nil {
		return st, err
	}
	e.log.Info("security state loaded",
		zap.Bool("password_set", st.PasswordSet),
		zap.Bool("locked", st.Locked),
		zap.Int("auto_lock_minutes", st.AutoLockMinutes),
	)
	return st, nil
}

// Refresh re-reads storage and recomputes the lock state against the
// current time. Call it whenever the UI regains focus.
func (e *Engine) Refresh(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.read(ctx)
	if err != nil {
		return e.state, err
	}
	return e.apply(sec), nil
}

// SetPassword stores the digest of password and unlocks the wallet.
func (e *Engine) SetPassword(ctx context.Context, password string) (State, error) {
	if password == "" {
		return e.State(), ErrEmptyPassword
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.read(ctx)
	if err != nil {
		return e.state, err
	}
	if sec.passwordSet() {
		e.apply(sec)
		return e.state, ErrPasswordAlreadySet
	}

	digest := e.hash(password)
	now := e.nowMillis()
	if err := e.store.Set(ctx, model.KeyPasswordHash, digest); err != nil {
		return e.state, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := e.writeLastUnlocked(ctx, now); err != nil {
		return e.state, err
	}

	sec.passwordHash = digest
	sec.lastUnlockedAt = &now
	e.log.Info("password set")
	return e.apply(sec), nil
}

// Unlock verifies password against the stored digest and restarts the
// auto-lock countdown.
func (e *Engine) Unlock(ctx context.Context, password string) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.verify(ctx, password)
	if err != nil {
		if errors.Is(err, ErrIncorrectPassword) {
			e.log.Warn("unlock rejected")
		}
		return e.state, err
	}

	now := e.nowMillis()
	if err := e.writeLastUnlocked(ctx, now); err != nil {
		return e.state, err
	}
	sec.lastUnlockedAt = &now
	e.log.Info("wallet unlocked")
	return e.apply(sec), nil
}

// UpdateAutoLockDuration persists minutes and recomputes the lock state
// against the unchanged last unlock time. Shortening the duration can lock
// the wallet immediately.
func (e *Engine) UpdateAutoLockDuration(ctx context.Context, minutes int) (State, error) {
	if minutes <= 0 || int64(minutes) > MaxAutoLockMinutes {
		return e.State(), ErrInvalidDuration
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.read(ctx)
	if err != nil {
		return e.state, err
	}
	if err := e.store.Set(ctx, model.KeyAutoLockMinutes, strconv.Itoa(minutes)); err != nil {
		return e.state, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	sec.minutes = minutes
	e.log.Info("auto-lock duration updated", zap.Int("minutes", minutes))
	return e.apply(sec), nil
}

// ForceLock locks the wallet regardless of elapsed time.
// Without a password it changes nothing.
//
// The last unlock time is removed so that later refreshes stay locked.
// If that write fails the in-memory state is still locked and the error
// is returned.
func (e *Engine) ForceLock(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.read(ctx)
	if err != nil {
		return e.state, err
	}
	if !sec.passwordSet() {
		return e.apply(sec), nil
	}

	sec.lastUnlockedAt = nil
	if err := e.store.Delete(ctx, model.KeyLastUnlockedAt); err != nil {
		e.state.Locked = true
		e.log.Warn("force lock not persisted", zap.Error(err))
		return e.state, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	e.log.Info("wallet locked")
	return e.apply(sec), nil
}

// ChangePassword replaces the password after verifying the current one.
func (e *Engine) ChangePassword(ctx context.Context, current, next string) (State, error) {
	if next == "" {
		return e.State(), ErrEmptyPassword
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.verify(ctx, current)
	if err != nil {
		return e.state, err
	}

	digest := e.hash(next)
	now := e.nowMillis()
	if err := e.store.Set(ctx, model.KeyPasswordHash, digest); err != nil {
		return e.state, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := e.writeLastUnlocked(ctx, now); err != nil {
		return e.state, err
	}
	sec.passwordHash = digest
	sec.lastUnlockedAt = &now
	e.log.Info("password changed")
	return e.apply(sec), nil
}

// RemovePassword turns the lock off after verifying the current password.
// The auto-lock duration is kept for when a password is set again.
func (e *Engine) RemovePassword(ctx context.Context, current string) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sec, err := e.verify(ctx, current)
	if err != nil {
		return e.state, err
	}

	for _, key := range []string{model.KeyPasswordHash, model.KeyLastUnlockedAt} {
		if err := e.store.Delete(ctx, key); err != nil {
			return e.state, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	sec.passwordHash = ""
	sec.lastUnlockedAt = nil
	e.log.Info("password removed")
	return e.apply(sec), nil
}

// verify must be called with e.mu held
func (e *Engine) verify(ctx context.Context, password string) (security, error) {
	sec, err := e.read(ctx)
	if err != nil {
		return sec, err
	}
	if !sec.passwordSet() {
		e.apply(sec)
		return sec, ErrNoPasswordSet
	}
	if !digestsEqual(e.hash(password), sec.passwordHash) {
		e.apply(sec)
		return sec, ErrIncorrectPassword
	}
	return sec, nil
}

// apply must be called with e.mu held
func (e *Engine) apply(sec security) State {
	e.state = State{
		PasswordSet:     sec.passwordSet(),
		Locked:          IsLocked(sec.passwordSet(), sec.lastUnlockedAt, sec.minutes, e.now()),
		AutoLockMinutes: sec.minutes,
		LastUnlockedAt:  sec.lastUnlockedAt,
	}
	return e.state
}

func (e *Engine) read(ctx context.Context) (security, error) {
	sec := security{minutes: DefaultAutoLockMinutes}

	hash, _, err := e.store.Get(ctx, model.KeyPasswordHash)
	if err != nil {
		return sec, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	sec.passwordHash = hash

	raw, found, err := e.store.Get(ctx, model.KeyAutoLockMinutes)
	if err != nil {
		return sec, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if found {
		if m, err := strconv.Atoi(raw); err == nil && m > 0 && int64(m) <= MaxAutoLockMinutes {
			sec.minutes = m
		} else {
			e.log.Warn("ignoring invalid auto-lock minutes", zap.String("value", raw))
		}
	}

	raw, found, err = e.store.Get(ctx, model.KeyLastUnlockedAt)
	if err != nil {
		return sec, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if found {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			t := time.UnixMilli(ms)
			sec.lastUnlockedAt = &t
		} else {
			e.log.Warn("ignoring invalid last unlock time", zap.String("value", raw))
		}
	}
	return sec, nil
}

// nowMillis is the current time at the precision it is persisted with
func (e *Engine) nowMillis() time.Time {
	return time.UnixMilli(e.now().UnixMilli())
}

func (e *Engine) writeLastUnlocked(ctx context.Context, t time.Time) error {
	if err := e.store.Set(ctx, model.KeyLastUnlockedAt, strconv.FormatInt(t.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
