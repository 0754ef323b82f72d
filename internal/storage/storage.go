package storage

import "github.com/xaenox/astro-chat/internal/models"

type Storage interface {
	ChatDirectory
	MessageStore
	ProfileStore
	Preferences
	Close() error
}

type ChatDirectory interface {
	// ListVisible returns visible chats in declaration order. An empty
	// category matches all chats.
	ListVisible(category models.ChatCategory) []models.Chat
	ListHidden(category models.ChatCategory) []models.Chat
	Reveal(chatID string)
	FindByID(chatID string) (models.Chat, bool)
}

type MessageStore interface {
	// LoadThread returns a copy of the seeded thread, empty when unknown.
	LoadThread(chatID string) []models.Message
}

type ProfileStore interface {
	GetProfile() models.UserProfile
	UpdateProfile(update models.ProfileUpdate) models.UserProfile
}

type Preferences interface {
	Theme() models.Theme
	ToggleTheme() models.Theme
}
