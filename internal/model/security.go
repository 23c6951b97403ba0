package model

import "time"

// SecurityStatus represents the lock state returned by /security endpoints
type SecurityStatus struct {
	PasswordSet     bool       `json:"passwordSet"`
	Locked          bool       `json:"locked"`
	AutoLockMinutes int        `json:"autoLockMinutes"`
	LastUnlockedAt  *time.Time `json:"lastUnlockedAt,omitempty"`
	LocksAt         *time.Time `json:"locksAt,omitempty"`
}

// PasswordRequest represents request for POST /security/password and /security/unlock
type PasswordRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest represents request for PUT and DELETE /security/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// AutoLockRequest represents request for PUT /security/auto-lock
type AutoLockRequest struct {
	Minutes int `json:"minutes"`
}
