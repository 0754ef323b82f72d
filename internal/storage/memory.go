package storage

import (
	"sync"

	"github.com/xaenox/astro-chat/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	chats    []models.Chat
	messages map[string][]models.Message
	profile  models.UserProfile
	theme    models.Theme
}

// NewMemoryStorage returns a storage seeded with the built-in fixtures.
func NewMemoryStorage() *MemoryStorage {
	return NewMemoryStorageWith(SeedChats(), SeedMessages(), SeedProfile())
}

func NewMemoryStorageWith(chats []models.Chat, messages map[string][]models.Message, profile models.UserProfile) *MemoryStorage {
	if messages == nil {
		messages = make(map[string][]models.Message)
	}
	return &MemoryStorage{
		chats:    chats,
		messages: messages,
		profile:  profile,
		theme:    models.ThemeLight,
	}
}

// Chat directory methods
func (s *MemoryStorage) ListVisible(category models.ChatCategory) []models.Chat {
	return s.list(category, true)
}

func (s *MemoryStorage) ListHidden(category models.ChatCategory) []models.Chat {
	return s.list(category, false)
}

func (s *MemoryStorage) list(category models.ChatCategory, visible bool) []models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Chat{}
	for _, c := range s.chats {
		if c.IsVisible() != visible {
			continue
		}
		if category != "" && c.Category != category {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

func (s *MemoryStorage) Reveal(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		if s.chats[i].ID == chatID {
			visible := true
			s.chats[i].Visible = &visible
			return
		}
	}
}

func (s *MemoryStorage) FindByID(chatID string) (models.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.chats {
		if c.ID == chatID {
			return c.Clone(), true
		}
	}
	return models.Chat{}, false
}

// Message methods
func (s *MemoryStorage) LoadThread(chatID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneMessages(s.messages[chatID])
}

// Profile methods
func (s *MemoryStorage) GetProfile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

func (s *MemoryStorage) UpdateProfile(update models.ProfileUpdate) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = s.profile.Merge(update)
	return s.profile
}

func (s *MemoryStorage) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

func (s *MemoryStorage) ToggleTheme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == models.ThemeDark {
		s.theme = models.ThemeLight
	} else {
		s.theme = models.ThemeDark
	}
	return s.theme
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
