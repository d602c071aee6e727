package domain

import "time"

// User is managed by the account system; this service only reads it to
// resolve booking owners, admin rights and notification targets.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	IsAdmin        bool      `json:"isAdmin"`
	TelegramChatID *int64    `json:"telegramChatId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
