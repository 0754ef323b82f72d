package overlay

import (
	"errors"
	"fmt"

	"github.com/xaenox/astro-chat/internal/models"
	"go.uber.org/zap"
)

// Reactions is the emoji palette shown above a pressed message.
var Reactions = []string{"👍", "❤️", "😂", "😮", "😢", "🙏"}

type Action string

const (
	ActionReply   Action = "reply"
	ActionForward Action = "forward"
	ActionCopy    Action = "copy"
	ActionDelete  Action = "delete"
)

var Actions = []Action{ActionReply, ActionForward, ActionCopy, ActionDelete}

var (
	ErrEventMessage    = errors.New("event messages have no overlay")
	ErrOverlayClosed   = errors.New("overlay is not open")
	ErrUnknownReaction = errors.New("emoji is not in the reaction palette")
	ErrUnknownAction   = errors.New("unknown action")
	ErrNoFeedback      = errors.New("message does not take feedback")
)

const (
	NoticeCopied     = "Message copied to clipboard"
	NoticeForwarding = "Forwarding feature coming soon!"
)

// Thread is the part of the thread controller the overlay drives.
type Thread interface {
	Find(id string) (models.Message, bool)
	SetReaction(id, emoji string) error
	SetFeedback(id string, fb models.Feedback, reason string) error
	OmitReason(id string) error
	SelectReply(id string) error
	CopyText(id string) (string, error)
	DeleteMessage(id string) error
}

// Outcome is what an action hands back to the front end. Text carries the
// clipboard payload for copy.
type Outcome struct {
	Notice string
	Text   string
}

type Overlay struct {
	thread Thread
	screen Size
	logger *zap.Logger

	visible bool
	message models.Message
	target  Rect
	layout  Layout
}

func New(thread Thread, screen Size, logger *zap.Logger) *Overlay {
	return &Overlay{
		thread: thread,
		screen: screen,
		logger: logger,
	}
}

// Open shows the overlay for a long-pressed message.
func (o *Overlay) Open(msg models.Message, target Rect) (Layout, error) {
	if msg.Type == models.EventMessage {
		return Layout{}, ErrEventMessage
	}
	o.visible = true
	o.message = msg.Clone()
	o.target = target
	o.layout = ComputeLayout(o.screen, target)
	return o.layout, nil
}

func (o *Overlay) Visible() bool {
	return o.visible
}

func (o *Overlay) Message() (models.Message, bool) {
	if !o.visible {
		return models.Message{}, false
	}
	return o.message.Clone(), true
}

func (o *Overlay) Layout() (Layout, bool) {
	return o.layout, o.visible
}

// FeedbackOffered reports whether the like/dislike control is shown.
func (o *Overlay) FeedbackOffered() bool {
	return o.visible && o.message.Type == models.AIMessage && o.message.HasFeedback
}

func (o *Overlay) SelectReaction(emoji string) error {
	if !o.visible {
		return ErrOverlayClosed
	}
	if !inPalette(emoji) {
		return fmt.Errorf("reaction %q: %w", emoji, ErrUnknownReaction)
	}
	defer o.Close()
	return o.thread.SetReaction(o.message.ID, emoji)
}

// SelectAction runs a menu action on the selected message and closes the
// overlay. Forward is not available yet and only returns a notice.
func (o *Overlay) SelectAction(action Action) (Outcome, error) {
	if !o.visible {
		return Outcome{}, ErrOverlayClosed
	}
	id := o.message.ID

	var out Outcome
	var err error
	switch action {
	case ActionReply:
		err = o.thread.SelectReply(id)
	case ActionCopy:
		out.Text, err = o.thread.CopyText(id)
		if err == nil {
			out.Notice = NoticeCopied
		}
	case ActionDelete:
		err = o.thread.DeleteMessage(id)
	case ActionForward:
		out.Notice = NoticeForwarding
	default:
		return Outcome{}, fmt.Errorf("action %q: %w", action, ErrUnknownAction)
	}

	o.logger.Debug("Overlay action",
		zap.String("message_id", id),
		zap.String("action", string(action)),
		zap.Error(err))
	o.Close()
	return out, err
}

// SelectFeedback presses like or dislike. A like closes the overlay; a
// dislike keeps it open so a reason can be chosen.
func (o *Overlay) SelectFeedback(fb models.Feedback) error {
	if err := o.checkFeedback(); err != nil {
		return err
	}
	if err := o.thread.SetFeedback(o.message.ID, fb, ""); err != nil {
		return err
	}
	o.refresh()
	if o.message.FeedbackType == models.FeedbackLiked {
		o.Close()
	}
	return nil
}

// SelectReason records a dislike reason and closes the overlay once a reason
// is set.
func (o *Overlay) SelectReason(reason string) error {
	if err := o.checkFeedback(); err != nil {
		return err
	}
	if err := o.thread.SetFeedback(o.message.ID, models.FeedbackDisliked, reason); err != nil {
		return err
	}
	o.refresh()
	if o.message.FeedbackState() == models.StateReasonRecorded {
		o.Close()
	}
	return nil
}

// SkipReason settles a dislike without a reason and closes the overlay.
func (o *Overlay) SkipReason() error {
	if err := o.checkFeedback(); err != nil {
		return err
	}
	if err := o.thread.OmitReason(o.message.ID); err != nil {
		return err
	}
	o.Close()
	return nil
}

// Close hides the overlay; message data is left alone.
func (o *Overlay) Close() {
	o.visible = false
	o.message = models.Message{}
	o.target = Rect{}
	o.layout = Layout{}
}

func (o *Overlay) checkFeedback() error {
	if !o.visible {
		return ErrOverlayClosed
	}
	if !o.FeedbackOffered() {
		return fmt.Errorf("message %q: %w", o.message.ID, ErrNoFeedback)
	}
	return nil
}

func (o *Overlay) refresh() {
	if m, ok := o.thread.Find(o.message.ID); ok {
		o.message = m
	}
}

func inPalette(emoji string) bool {
	for _, r := range Reactions {
		if r == emoji {
			return true
		}
	}
	return false
}
