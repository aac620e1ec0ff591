package models

import "time"

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never serialized

	// optional Telegram delivery channel
	TelegramChatID *int64 `json:"-"`

	// refresh-token storage
	RefreshToken     *string    `json:"-"` // opaque value
	RefreshExpiresAt *time.Time `json:"-"`
	RefreshRevoked   bool       `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
