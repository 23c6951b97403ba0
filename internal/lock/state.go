package lock

import (
	"math"
	"time"
)

const (
	// DefaultAutoLockMinutes is used until the user picks a duration
	DefaultAutoLockMinutes = 5

	// MaxAutoLockMinutes is the longest window a time.Duration can hold
	MaxAutoLockMinutes = math.MaxInt64 / int64(time.Minute)
)

// State is a snapshot of the security gate
type State struct {
	PasswordSet     bool
	Locked          bool
	AutoLockMinutes int
	LastUnlockedAt  *time.Time
}

// LocksAt returns when an unlocked wallet becomes locked, or nil when the
// lock is inactive or already engaged.
func (s State) LocksAt() *time.Time {
	if !s.PasswordSet || s.Locked || s.LastUnlockedAt == nil {
		return nil
	}
	t := s.LastUnlockedAt.Add(time.Duration(clampMinutes(s.AutoLockMinutes)) * time.Minute)
	return &t
}

// IsLocked derives the lock state. Without a password the wallet is never
// locked; with one it is locked when it was never unlocked or when at least
// minutes have elapsed since the last unlock.
func IsLocked(passwordSet bool, lastUnlockedAt *time.Time, minutes int, now time.Time) bool {
	if !passwordSet {
		return false
	}
	if lastUnlockedAt == nil {
		return true
	}
	elapsed := now.UnixMilli() - lastUnlockedAt.UnixMilli()
	return elapsed >= clampMinutes(minutes)*60000
}

func clampMinutes(minutes int) int64 {
	if int64(minutes) > MaxAutoLockMinutes {
		return MaxAutoLockMinutes
	}
	return int64(minutes)
}
