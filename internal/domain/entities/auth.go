package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// AdminSettingKeyPasswordHash is the well-known settings key holding the
// bcrypt hash of the admin password.
const AdminSettingKeyPasswordHash = "admin_password_hash"

// AdminSetting is a single key/value row in the settings store
type AdminSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt null.Time `json:"updatedAt,omitempty"`
}

// LoginInput represents an admin login request
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordInput represents an admin password rotation request
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
