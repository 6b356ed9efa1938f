package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	CreatedBy int    `json:"-"`
	UpdatedBy int    `json:"-"`
	DeletedBy int    `json:"-"`
}

type UserSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"index" json:"user_id"`
	SessionID      string    `gorm:"index" json:"session_id"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LoginLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint64     `gorm:"index" json:"user_id"`
	SessionID string     `gorm:"index" json:"session_id"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	LoginAt   time.Time  `json:"login_at"`
	LogoutAt  *time.Time `json:"logout_at"`
}
