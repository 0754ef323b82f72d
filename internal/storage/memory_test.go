package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/astro-chat/internal/models"
)

func ids(chats []models.Chat) []string {
	out := make([]string, 0, len(chats))
	for _, c := range chats {
		out = append(out, c.ID)
	}
	return out
}

func TestListVisibleSkipsHiddenChats(t *testing.T) {
	s := NewMemoryStorage()

	assert.Equal(t, []string{"1", "2", "3"}, ids(s.ListVisible("")))
	assert.Equal(t, []string{"1", "2"}, ids(s.ListVisible(models.CategoryAstrologer)))
	assert.Equal(t, []string{"3"}, ids(s.ListVisible(models.CategorySupport)))

	for _, c := range s.ListVisible("") {
		assert.True(t, c.IsVisible())
	}
}

func TestRevealAddsChatToVisibleList(t *testing.T) {
	s := NewMemoryStorage()

	assert.Equal(t, []string{"4", "5", "6"}, ids(s.ListHidden(models.CategoryAstrologer)))

	s.Reveal("5")
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(s.ListVisible("")))
	assert.Equal(t, []string{"4", "6"}, ids(s.ListHidden("")))

	// unknown ids are ignored
	s.Reveal("missing")
	assert.Len(t, s.ListVisible(""), 4)
}

func TestFindByID(t *testing.T) {
	s := NewMemoryStorage()

	chat, ok := s.FindByID("4")
	require.True(t, ok)
	assert.Equal(t, "Astro Aisha", chat.Name)
	assert.False(t, chat.IsVisible())

	_, ok = s.FindByID("nope")
	assert.False(t, ok)
}

func TestListedChatsAreCopies(t *testing.T) {
	s := NewMemoryStorage()

	chats := s.ListVisible("")
	require.NotEmpty(t, chats)
	chats[0].Tags[0] = "mutated"

	chat, _ := s.FindByID("1")
	assert.Equal(t, "Lifestyle", chat.Tags[0])

	hidden := s.ListHidden(models.CategoryAstrologer)
	require.NotEmpty(t, hidden)
	require.NotNil(t, hidden[0].Visible)
	*hidden[0].Visible = true

	chat, _ = s.FindByID(hidden[0].ID)
	assert.False(t, chat.IsVisible())
	assert.Len(t, s.ListHidden(models.CategoryAstrologer), len(hidden))
}

func TestLoadThreadReturnsSnapshot(t *testing.T) {
	s := NewMemoryStorage()

	thread := s.LoadThread("1")
	require.Len(t, thread, 6)
	assert.Equal(t, models.EventMessage, thread[0].Type)

	thread[2].Reactions = append(thread[2].Reactions, "👍")

	again := s.LoadThread("1")
	assert.Len(t, again, 6)
	assert.Empty(t, again[2].Reactions)

	assert.Empty(t, s.LoadThread("42"))
}

func TestUpdateProfileMergesFields(t *testing.T) {
	s := NewMemoryStorage()
	before := s.GetProfile()

	place := "Pune, India"
	after := s.UpdateProfile(models.ProfileUpdate{BirthPlace: &place})

	assert.Equal(t, "Pune, India", after.BirthPlace)
	assert.Equal(t, before.SunSign, after.SunSign)
	assert.Equal(t, "Mumbai, India", before.BirthPlace)
	assert.Equal(t, after, s.GetProfile())
}

func TestToggleTheme(t *testing.T) {
	s := NewMemoryStorage()

	assert.Equal(t, models.ThemeLight, s.Theme())
	assert.Equal(t, models.ThemeDark, s.ToggleTheme())
	assert.Equal(t, models.ThemeLight, s.ToggleTheme())
}
