package thread

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xaenox/astro-chat/internal/models"
	"github.com/xaenox/astro-chat/internal/responder"
	"github.com/xaenox/astro-chat/internal/storage"
	"go.uber.org/zap"
)

// DefaultReplyDelay is how long the simulated astrologer takes to answer.
const DefaultReplyDelay = 2000 * time.Millisecond

// Controller owns the working copy of the open thread. The copy is loaded
// from the message store on Open and never written back.
type Controller struct {
	store     storage.MessageStore
	responder responder.Responder
	delay     time.Duration
	logger    *zap.Logger

	afterFunc AfterFunc
	now       func() time.Time
	newID     func() string

	mu         sync.Mutex
	chatID     string
	session    uint64
	isOpen     bool
	ctx        context.Context
	cancel     context.CancelFunc
	messages   []models.Message
	replyingTo string
	pending    map[uint64]Timer
	nextReply  uint64
	onReply    func(chatID string, msg models.Message)
}

func New(store storage.MessageStore, resp responder.Responder, delay time.Duration, logger *zap.Logger) *Controller {
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	return &Controller{
		store:     store,
		responder: resp,
		delay:     delay,
		logger:    logger,
		afterFunc: realAfterFunc,
		now:       time.Now,
		newID:     newMessageID,
		pending:   make(map[uint64]Timer),
	}
}

// newMessageID returns a time-ordered id.
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// OnReply registers a callback run after a simulated reply lands in the open
// thread. It is called without the controller lock held.
func (c *Controller) OnReply(fn func(chatID string, msg models.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReply = fn
}

// Open closes any open thread and loads chatID.
func (c *Controller) Open(chatID string) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeLocked()

	c.session++
	c.chatID = chatID
	c.isOpen = true
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.messages = c.store.LoadThread(chatID)

	c.logger.Debug("Opened thread",
		zap.String("chat_id", chatID),
		zap.Int("messages", len(c.messages)))
	return models.CloneMessages(c.messages)
}

// Close disposes the open thread and cancels its pending replies.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *Controller) closeLocked() {
	if !c.isOpen {
		return
	}
	for id, t := range c.pending {
		t.Stop()
		delete(c.pending, id)
	}
	c.cancel()
	c.logger.Debug("Closed thread", zap.String("chat_id", c.chatID))

	c.isOpen = false
	c.chatID = ""
	c.messages = nil
	c.replyingTo = ""
}

// ChatID returns the id of the open thread.
func (c *Controller) ChatID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatID, c.isOpen
}

// Messages returns a copy of the open thread.
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneMessages(c.messages)
}

// Find returns the message with id.
func (c *Controller) Find(id string) (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.messages[i].Clone(), true
	}
	return models.Message{}, false
}

// Typing reports whether a simulated reply is on its way.
func (c *Controller) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending) > 0
}

// SendText appends a user message and schedules one simulated reply. An empty
// replyToID falls back to the active reply selection. A reply target that is
// not in the thread is dropped without failing the send.
func (c *Controller) SendText(text, replyToID string) (models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen {
		return models.Message{}, ErrNoOpenThread
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, ErrEmptyText
	}

	if replyToID == "" {
		replyToID = c.replyingTo
	}
	if replyToID != "" && c.indexLocked(replyToID) < 0 {
		c.logger.Debug("Dropping unknown reply target",
			zap.String("chat_id", c.chatID),
			zap.String("reply_to", replyToID))
		replyToID = ""
	}

	msg := models.Message{
		ID:        c.newID(),
		Sender:    models.SenderUser,
		Text:      text,
		Timestamp: c.now().UnixMilli(),
		Type:      models.TextMessage,
		ReplyTo:   replyToID,
	}
	c.messages = appendMessage(c.messages, msg)
	c.replyingTo = ""

	c.scheduleReplyLocked(text)
	return msg.Clone(), nil
}

func (c *Controller) scheduleReplyLocked(prompt string) {
	c.nextReply++
	replyID := c.nextReply
	session := c.session
	chatID := c.chatID
	ctx := c.ctx

	c.pending[replyID] = c.afterFunc(c.delay, func() {
		c.deliverReply(ctx, session, chatID, replyID, prompt)
	})
}

func (c *Controller) deliverReply(ctx context.Context, session uint64, chatID string, replyID uint64, prompt string) {
	if !c.stillOpen(session, chatID) {
		c.logger.Debug("Dropping reply for closed thread", zap.String("chat_id", chatID))
		return
	}

	text := c.responder.Reply(ctx, prompt)

	c.mu.Lock()
	if !c.isOpen || c.session != session || c.chatID != chatID {
		c.mu.Unlock()
		c.logger.Debug("Dropping reply for closed thread", zap.String("chat_id", chatID))
		return
	}
	delete(c.pending, replyID)
	msg := models.Message{
		ID:          c.newID(),
		Sender:      models.SenderAIAstrologer,
		Text:        text,
		Timestamp:   c.now().UnixMilli(),
		Type:        models.AIMessage,
		HasFeedback: true,
	}
	c.messages = appendMessage(c.messages, msg)
	onReply := c.onReply
	c.mu.Unlock()

	if onReply != nil {
		onReply(chatID, msg.Clone())
	}
}

func (c *Controller) stillOpen(session uint64, chatID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen && c.session == session && c.chatID == chatID
}

// SelectReply marks id as the message the next send replies to.
func (c *Controller) SelectReply(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen {
		return ErrNoOpenThread
	}
	if c.indexLocked(id) < 0 {
		return fmt.Errorf("select reply %q: %w", id, ErrMessageNotFound)
	}
	c.replyingTo = id
	return nil
}

func (c *Controller) CancelReply() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replyingTo = ""
}

// ReplyingTo returns the selected reply target, if it still exists.
func (c *Controller) ReplyingTo() (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.replyingTo == "" {
		return models.Message{}, false
	}
	if i := c.indexLocked(c.replyingTo); i >= 0 {
		return c.messages[i].Clone(), true
	}
	return models.Message{}, false
}

// ResolveReply returns the message that id replies to. A dangling reference
// left by a delete resolves to not found.
func (c *Controller) ResolveReply(id string) (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 || c.messages[i].ReplyTo == "" {
		return models.Message{}, false
	}
	if j := c.indexLocked(c.messages[i].ReplyTo); j >= 0 {
		return c.messages[j].Clone(), true
	}
	return models.Message{}, false
}

// SetReaction adds emoji to the message's reactions. Adding an emoji that is
// already present changes nothing.
func (c *Controller) SetReaction(id, emoji string) error {
	return c.update(id, func(m models.Message) (models.Message, error) {
		if !m.HasReaction(emoji) {
			m.Reactions = append(m.Reactions, emoji)
		}
		return m, nil
	})
}

func (c *Controller) RemoveReaction(id, emoji string) error {
	return c.update(id, func(m models.Message) (models.Message, error) {
		kept := m.Reactions[:0]
		for _, r := range m.Reactions {
			if r != emoji {
				kept = append(kept, r)
			}
		}
		m.Reactions = nonEmpty(kept)
		return m, nil
	})
}

// RemoveFirstReaction drops the oldest reaction, as a tap on the badge does.
func (c *Controller) RemoveFirstReaction(id string) error {
	return c.update(id, func(m models.Message) (models.Message, error) {
		if len(m.Reactions) > 0 {
			m.Reactions = nonEmpty(m.Reactions[1:])
		}
		return m, nil
	})
}

// SetFeedback applies a like/dislike press. Pressing the current value again
// clears it. A non-empty reason records why a message was disliked; choosing
// the recorded reason again puts the dislike back to waiting for a reason.
func (c *Controller) SetFeedback(id string, fb models.Feedback, reason string) error {
	switch fb {
	case models.FeedbackNone, models.FeedbackLiked, models.FeedbackDisliked:
	default:
		return fmt.Errorf("feedback %q: %w", fb, ErrInvalidFeedback)
	}
	if reason != "" {
		if fb != models.FeedbackDisliked {
			return fmt.Errorf("reason for %q feedback: %w", fb, ErrInvalidFeedback)
		}
		if !models.IsFeedbackReason(reason) {
			return fmt.Errorf("reason %q: %w", reason, ErrUnknownReason)
		}
	}

	return c.update(id, func(m models.Message) (models.Message, error) {
		switch {
		case fb == models.FeedbackNone:
			m.FeedbackType = models.FeedbackNone
			m.FeedbackReason = nil
		case reason != "":
			m.FeedbackType = models.FeedbackDisliked
			if m.FeedbackReason != nil && *m.FeedbackReason == reason {
				m.FeedbackReason = nil
			} else {
				m.FeedbackReason = &reason
			}
		case m.FeedbackType == fb:
			m.FeedbackType = models.FeedbackNone
			m.FeedbackReason = nil
		default:
			m.FeedbackType = fb
			m.FeedbackReason = nil
		}
		return m, nil
	})
}

// OmitReason settles a pending dislike without a reason.
func (c *Controller) OmitReason(id string) error {
	return c.update(id, func(m models.Message) (models.Message, error) {
		if m.FeedbackType != models.FeedbackDisliked {
			return m, fmt.Errorf("omit reason on %q: %w", id, ErrInvalidFeedback)
		}
		empty := ""
		m.FeedbackReason = &empty
		return m, nil
	})
}

// DeleteMessage removes id from the thread. Messages replying to it keep
// their reference.
func (c *Controller) DeleteMessage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen {
		return ErrNoOpenThread
	}
	i := c.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrMessageNotFound)
	}
	next := make([]models.Message, 0, len(c.messages)-1)
	next = append(next, c.messages[:i]...)
	next = append(next, c.messages[i+1:]...)
	c.messages = next
	return nil
}

// CopyText returns the text of id for the caller to place on a clipboard.
func (c *Controller) CopyText(id string) (string, error) {
	m, ok := c.Find(id)
	if !ok {
		return "", fmt.Errorf("copy %q: %w", id, ErrMessageNotFound)
	}
	return m.Text, nil
}

// EndSession records a 1 to 5 star rating and closes the thread.
func (c *Controller) EndSession(rating int) (string, error) {
	if rating < 1 || rating > 5 {
		return "", ErrInvalidRating
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen {
		return "", ErrNoOpenThread
	}
	c.logger.Info("Session rated",
		zap.String("chat_id", c.chatID),
		zap.Int("rating", rating))
	c.closeLocked()
	return fmt.Sprintf("You rated the session %d stars.", rating), nil
}

// update replaces message id with the result of fn. The thread slice is
// rebuilt so earlier snapshots are never mutated.
func (c *Controller) update(id string, fn func(models.Message) (models.Message, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen {
		return ErrNoOpenThread
	}
	i := c.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("message %q: %w", id, ErrMessageNotFound)
	}

	updated, err := fn(c.messages[i].Clone())
	if err != nil {
		return err
	}
	next := make([]models.Message, len(c.messages))
	copy(next, c.messages)
	next[i] = updated
	c.messages = next
	return nil
}

func (c *Controller) indexLocked(id string) int {
	for i := range c.messages {
		if c.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func nonEmpty(reactions []string) []string {
	if len(reactions) == 0 {
		return nil
	}
	return reactions
}

func appendMessage(msgs []models.Message, msg models.Message) []models.Message {
	next := make([]models.Message, len(msgs), len(msgs)+1)
	copy(next, msgs)
	return append(next, msg)
}
