package console

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/astro-chat/internal/models"
	"github.com/xaenox/astro-chat/internal/overlay"
	"github.com/xaenox/astro-chat/internal/storage"
	"github.com/xaenox/astro-chat/internal/thread"
	"go.uber.org/zap/zaptest"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Take returns and clears what was written so far.
func (b *syncBuffer) Take() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}

type fixedResponder string

func (f fixedResponder) Reply(ctx context.Context, prompt string) string { return string(f) }

type harness struct {
	console *Console
	store   *storage.MemoryStorage
	thread  *thread.Controller
	overlay *overlay.Overlay
	out     *syncBuffer
}

func newHarness(t *testing.T, delay time.Duration) *harness {
	t.Helper()

	logger := zaptest.NewLogger(t)
	store := storage.NewMemoryStorage()
	ctrl := thread.New(store, fixedResponder("Jupiter smiles on you."), delay, logger)
	ov := overlay.New(ctrl, overlay.Size{Width: 375, Height: 812}, logger)
	out := &syncBuffer{}
	t.Cleanup(ctrl.Close)

	return &harness{
		console: New(store, ctrl, ov, out, logger),
		store:   store,
		thread:  ctrl,
		overlay: ov,
		out:     out,
	}
}

func (h *harness) run(lines ...string) string {
	for _, l := range lines {
		h.console.HandleLine(l)
	}
	return h.out.Take()
}

func TestChatsAndReveal(t *testing.T) {
	h := newHarness(t, time.Hour)

	out := h.run("/chats")
	assert.Contains(t, out, "[1] Astrologer Vikram")
	assert.Contains(t, out, "[3] Customer Support")
	assert.NotContains(t, out, "Astro Aisha")

	out = h.run("/new")
	assert.Contains(t, out, "[4] Astro Aisha")
	assert.Contains(t, out, "#Love")

	out = h.run("/reveal 4", "/chats")
	assert.Contains(t, out, "— Astro Aisha (online) —")
	assert.Contains(t, out, "[4] Astro Aisha")

	id, open := h.thread.ChatID()
	assert.True(t, open)
	assert.Equal(t, "4", id)
}

func TestBioShowsAstrologerProfile(t *testing.T) {
	h := newHarness(t, time.Hour)

	out := h.run("/bio 4")
	assert.Contains(t, out, "*Astro Aisha*")
	assert.Contains(t, out, "Experience: 5 Years")
	assert.Contains(t, out, "Rating: 4.8 ★ (450 reviews)")
	assert.Contains(t, out, "Languages: English, Hindi, Punjabi")
	assert.Contains(t, out, "Specializing in matters of the heart.")
	_, open := h.thread.ChatID()
	assert.False(t, open, "viewing a bio does not start a chat")

	assert.Contains(t, h.run("/bio 42"), "No such chat")
}

func TestOpenHiddenChatIsRefused(t *testing.T) {
	h := newHarness(t, time.Hour)

	out := h.run("/open 5")
	assert.Contains(t, out, "No such chat")
	_, open := h.thread.ChatID()
	assert.False(t, open)
}

func TestOpenRendersThread(t *testing.T) {
	h := newHarness(t, time.Hour)

	out := h.run("/open 1")
	assert.Contains(t, out, "~ Your session with Astrologer Vikram has started. ~")
	assert.Contains(t, out, "[5] You: (↪ I see the same. Look at your 6…)")
	assert.Contains(t, out, "👍 liked")
}

func TestSendTextAndSimulatedReply(t *testing.T) {
	h := newHarness(t, 10*time.Millisecond)
	h.run("/open 1")

	out := h.run("Should I change jobs?")
	assert.Contains(t, out, "You: Should I change jobs?")
	assert.Contains(t, out, "typing")

	replies := out
	require.Eventually(t, func() bool {
		replies += h.out.Take()
		return strings.Contains(replies, "AI Astrologer: Jupiter smiles on you.")
	}, time.Second, 5*time.Millisecond)

	assert.Len(t, h.thread.Messages(), 8)
}

func TestBlankSendIsIgnored(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 2")

	out := h.run("/send    ")
	assert.Empty(t, out)
	assert.Len(t, h.thread.Messages(), 4)
}

func TestSwipeToReply(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 2")

	out := h.run("/swipe 204")
	assert.Contains(t, out, "Replying to Astrologer: Your Mars transit")

	h.run("Which month exactly?")
	msgs := h.thread.Messages()
	assert.Equal(t, "204", msgs[len(msgs)-1].ReplyTo)
}

func TestPressAndReact(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 1")

	h.run("/press 1")
	assert.False(t, h.overlay.Visible(), "event messages have no overlay")

	out := h.run("/press 3 20 500 220 80")
	require.True(t, h.overlay.Visible())
	assert.Contains(t, out, "👍 ❤️ 😂 😮 😢 🙏")
	assert.Contains(t, out, "/like  /dislike")
	layout, _ := h.overlay.Layout()
	assert.Equal(t, 16.0, layout.PaletteLeft)

	out = h.run("/emoji 😮")
	assert.False(t, h.overlay.Visible())
	assert.Contains(t, out, "😮")

	h.run("/unreact 3")
	m, _ := h.thread.Find("3")
	assert.Empty(t, m.Reactions)
}

func TestOverlayActions(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 3")

	out := h.run("/press 302", "/action copy")
	assert.Contains(t, out, overlay.NoticeCopied)
	assert.Contains(t, out, "I was charged twice for my last session.")

	out = h.run("/press 302", "/action forward")
	assert.Contains(t, out, overlay.NoticeForwarding)

	h.run("/press 303", "/action delete")
	_, ok := h.thread.Find("303")
	assert.False(t, ok)
}

func TestDislikeWithReason(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 1")

	out := h.run("/press 3", "/dislike")
	assert.Contains(t, out, "What went wrong?")
	assert.True(t, h.overlay.Visible())

	h.run("/reason Too Long")
	assert.False(t, h.overlay.Visible())

	m, _ := h.thread.Find("3")
	assert.Equal(t, models.StateReasonRecorded, m.FeedbackState())
	assert.Contains(t, h.run("/thread"), "👎 Too Long")
}

func TestProfileEditing(t *testing.T) {
	h := newHarness(t, time.Hour)

	out := h.run("/set sunSign")
	assert.Contains(t, out, "Select Sun Sign")
	assert.Contains(t, out, "Leo ♌")

	h.run("/set sunSign Leo ♌", "/set birthDate 2 February 1991", "/set birthTime 7:05 AM", "/set birthPlace Pune, India")
	p := h.store.GetProfile()
	assert.Equal(t, "Leo ♌", p.SunSign)
	assert.Equal(t, "2 February 1991", p.BirthDate)
	assert.Equal(t, "07:05 AM", p.BirthTime)
	assert.Equal(t, "Pune, India", p.BirthPlace)
	assert.Equal(t, "Rahul Sharma", p.Name)

	out = h.run("/set birthDate yesterday")
	assert.Contains(t, out, "15 March 1990")
	assert.Equal(t, "2 February 1991", h.store.GetProfile().BirthDate)
}

func TestThemeToggle(t *testing.T) {
	h := newHarness(t, time.Hour)

	assert.Contains(t, h.run("/theme"), "dark")
	assert.Contains(t, h.run("/theme"), "light")
}

func TestEndSession(t *testing.T) {
	h := newHarness(t, time.Hour)
	h.run("/open 1")

	assert.Contains(t, h.run("/end"), "from 1 to 5")
	assert.Contains(t, h.run("/end 5"), "You rated the session 5 stars.")
	_, open := h.thread.ChatID()
	assert.False(t, open)
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t, time.Hour)
	assert.Contains(t, h.run("/horoscope"), "Unknown command")
}

func TestRunReadsUntilEOF(t *testing.T) {
	h := newHarness(t, time.Hour)

	err := h.console.Run(context.Background(), strings.NewReader("/open 2\n/chats\n"))
	require.NoError(t, err)

	out := h.out.Take()
	assert.Contains(t, out, "Welcome to AstroChat!")
	assert.Contains(t, out, "— Astrologer Priya (offline) —")
	_, open := h.thread.ChatID()
	assert.False(t, open, "Run closes the thread on exit")
}
