package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xaenox/astro-chat/internal/models"
	"github.com/xaenox/astro-chat/internal/overlay"
	"github.com/xaenox/astro-chat/internal/profile"
	"github.com/xaenox/astro-chat/internal/storage"
	"github.com/xaenox/astro-chat/internal/thread"
	"go.uber.org/zap"
)

// defaultBubble stands in for the measured bubble when /press gives no box.
var defaultBubble = overlay.Rect{X: 20, Y: 400, Width: 260, Height: 80}

// Console drives the chat engine from line commands, one event per line.
type Console struct {
	store   storage.Storage
	thread  *thread.Controller
	overlay *overlay.Overlay
	logger  *zap.Logger

	mu  sync.Mutex
	out io.Writer
}

func New(store storage.Storage, ctrl *thread.Controller, ov *overlay.Overlay, out io.Writer, logger *zap.Logger) *Console {
	c := &Console{
		store:   store,
		thread:  ctrl,
		overlay: ov,
		logger:  logger,
		out:     out,
	}
	ctrl.OnReply(c.handleReply)
	return c
}

// Run reads commands from in until EOF or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.handleStart()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			c.thread.Close()
			return nil
		case line, ok := <-lines:
			if !ok {
				c.thread.Close()
				return <-errc
			}
			c.HandleLine(line)
		}
	}
}

// HandleLine processes one input line. Plain text is sent to the open thread.
func (c *Console) HandleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if !strings.HasPrefix(line, "/") {
		c.handleSend(line)
		return
	}

	command, args, _ := strings.Cut(line[1:], " ")
	args = strings.TrimSpace(args)
	c.handleCommand(command, args)
}

func (c *Console) handleCommand(command, args string) {
	switch command {
	case "start":
		c.handleStart()
	case "help":
		c.handleHelp()
	case "chats":
		c.handleChats()
	case "new":
		c.handleNewChat()
	case "reveal":
		c.handleReveal(args)
	case "bio":
		c.handleBio(args)
	case "open":
		c.handleOpen(args)
	case "close":
		c.thread.Close()
		c.overlay.Close()
		c.printf("Chat closed.\n")
	case "send":
		c.handleSend(args)
	case "swipe":
		c.handleSwipe(args)
	case "cancel":
		c.thread.CancelReply()
	case "press":
		c.handlePress(args)
	case "emoji":
		c.ignore(c.overlay.SelectReaction(args), "select reaction")
		c.renderThread()
	case "action":
		c.handleAction(args)
	case "like":
		c.ignore(c.overlay.SelectFeedback(models.FeedbackLiked), "like")
	case "dislike":
		c.ignore(c.overlay.SelectFeedback(models.FeedbackDisliked), "dislike")
		if c.overlay.Visible() {
			c.printf("What went wrong? %s (or /skip)\n", strings.Join(models.FeedbackReasons, ", "))
		}
	case "reason":
		c.ignore(c.overlay.SelectReason(args), "select reason")
	case "skip":
		c.ignore(c.overlay.SkipReason(), "skip reason")
	case "dismiss":
		c.overlay.Close()
	case "unreact":
		c.ignore(c.thread.RemoveFirstReaction(args), "remove reaction")
		c.renderThread()
	case "thread":
		c.renderThread()
	case "profile":
		c.handleProfile()
	case "set":
		c.handleSet(args)
	case "theme":
		c.printf("Theme is now %s.\n", c.store.ToggleTheme())
	case "end":
		c.handleEnd(args)
	default:
		c.printf("Unknown command. Use /help to see available commands.\n")
	}
}

func (c *Console) handleStart() {
	c.printf(`Welcome to AstroChat! ✨
Talk to our astrologers about career, love and wellbeing.
Use /chats to see your conversations and /help for all commands.
`)
}

func (c *Console) handleHelp() {
	c.printf(`Available commands:
/chats - List your conversations
/new - Show astrologers you can start a chat with
/reveal <id> - Start a chat with an astrologer
/bio <id> - Show an astrologer's profile
/open <id> - Open a conversation
/close - Leave the open conversation
/send <text> - Send a message (plain text works too)
/swipe <id> - Reply to a message
/cancel - Stop replying
/press <id> [x y w h] - Long-press a message
/emoji <emoji> - React from the open overlay
/action reply|forward|copy|delete - Message actions
/like, /dislike, /reason <r>, /skip - AI feedback
/dismiss - Close the overlay
/unreact <id> - Remove the first reaction
/profile - Show your birth details
/set <field> <value> - Edit a birth detail
/theme - Toggle light/dark
/end <1-5> - End the session with a rating
`)
}

func (c *Console) handleChats() {
	c.printf("*Astrologers*\n")
	for _, chat := range c.store.ListVisible(models.CategoryAstrologer) {
		c.printf("%s\n", formatChat(chat))
	}
	c.printf("*Support*\n")
	for _, chat := range c.store.ListVisible(models.CategorySupport) {
		c.printf("%s\n", formatChat(chat))
	}
}

func (c *Console) handleNewChat() {
	hidden := c.store.ListHidden(models.CategoryAstrologer)
	if len(hidden) == 0 {
		c.printf("You are already chatting with every astrologer.\n")
		return
	}
	for _, chat := range hidden {
		c.printf("[%s] %s - %s\n", chat.ID, chat.Name, strings.Join(chat.Specialties, " • "))
		if len(chat.Tags) > 0 {
			tags := make([]string, len(chat.Tags))
			for i, tag := range chat.Tags {
				tags[i] = "#" + strings.ReplaceAll(tag, " ", "_")
			}
			c.printf("    %s\n", strings.Join(tags, " "))
		}
	}
}

func (c *Console) handleBio(chatID string) {
	chat, ok := c.store.FindByID(chatID)
	if !ok {
		c.printf("No such chat. Use /chats to list them.\n")
		return
	}
	c.printf("*%s*\n", chat.Name)
	c.printf("Experience: %s\n", chat.Experience)
	c.printf("Rating: %.1f ★ (%d reviews)\n", chat.Rating, chat.ReviewCount)
	if len(chat.Languages) > 0 {
		c.printf("Languages: %s\n", strings.Join(chat.Languages, ", "))
	}
	if len(chat.Specialties) > 0 {
		c.printf("Specialties: %s\n", strings.Join(chat.Specialties, " • "))
	}
	if chat.Bio != "" {
		c.printf("%s\n", chat.Bio)
	}
}

func (c *Console) handleReveal(chatID string) {
	if _, ok := c.store.FindByID(chatID); !ok {
		c.logger.Debug("Ignoring reveal of unknown chat", zap.String("chat_id", chatID))
		return
	}
	c.store.Reveal(chatID)
	c.handleOpen(chatID)
}

func (c *Console) handleOpen(chatID string) {
	chat, ok := c.store.FindByID(chatID)
	if !ok || !chat.IsVisible() {
		c.printf("No such chat. Use /chats to list them.\n")
		return
	}
	c.overlay.Close()
	c.thread.Open(chatID)
	status := "offline"
	if chat.IsOnline {
		status = "online"
	}
	c.printf("— %s (%s) —\n", chat.Name, status)
	c.renderThread()
}

func (c *Console) handleSend(text string) {
	msg, err := c.thread.SendText(text, "")
	if err != nil {
		c.ignore(err, "send")
		return
	}
	c.printf("%s\n", c.formatMessage(msg))
	c.printf("Astrologer is typing…\n")
}

func (c *Console) handleSwipe(id string) {
	if err := c.thread.SelectReply(id); err != nil {
		c.ignore(err, "select reply")
		return
	}
	c.renderReplyPreview()
}

func (c *Console) handlePress(args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		c.printf("Usage: /press <id> [x y w h]\n")
		return
	}
	msg, ok := c.thread.Find(fields[0])
	if !ok {
		c.ignore(thread.ErrMessageNotFound, "press")
		return
	}

	box := defaultBubble
	if len(fields) == 5 {
		var err error
		if box, err = parseRect(fields[1:]); err != nil {
			c.printf("Usage: /press <id> [x y w h]\n")
			return
		}
	}

	layout, err := c.overlay.Open(msg, box)
	if err != nil {
		c.ignore(err, "press")
		return
	}
	c.printf("%s\n", strings.Join(overlay.Reactions, " "))
	c.printf("  %s\n", msg.Text)
	if c.overlay.FeedbackOffered() {
		c.printf("  /like  /dislike\n")
	}
	actions := make([]string, len(overlay.Actions))
	for i, a := range overlay.Actions {
		actions[i] = string(a)
	}
	c.printf("  %s\n", strings.Join(actions, " | "))
	c.logger.Debug("Overlay opened",
		zap.String("message_id", msg.ID),
		zap.Float64("palette_left", layout.PaletteLeft),
		zap.Float64("menu_left", layout.MenuLeft),
		zap.Float64("translate_y", layout.TranslateY))
}

func (c *Console) handleAction(name string) {
	out, err := c.overlay.SelectAction(overlay.Action(name))
	if err != nil {
		c.ignore(err, "action")
		return
	}
	if out.Notice != "" {
		c.printf("%s\n", out.Notice)
	}
	if out.Text != "" {
		c.printf("%s\n", out.Text)
	}
	switch overlay.Action(name) {
	case overlay.ActionReply:
		c.renderReplyPreview()
	case overlay.ActionDelete:
		c.renderThread()
	}
}

func (c *Console) handleProfile() {
	p := c.store.GetProfile()
	c.printf(`*%s*
Birth date: %s
Birth time: %s
Birth place: %s
Sun sign: %s
Moon sign: %s
Ascendant: %s
Current dasha: %s
`, p.Name, p.BirthDate, p.BirthTime, p.BirthPlace, p.SunSign, p.MoonSign, p.Ascendant, p.CurrentDasha)
}

func (c *Console) handleSet(args string) {
	field, value, _ := strings.Cut(args, " ")
	value = strings.TrimSpace(value)
	if value == "" {
		if opts := profile.Options(field); opts != nil {
			c.printf("%s:\n  %s\n", profile.Title(field), strings.Join(opts, "\n  "))
			return
		}
		c.printf("Usage: /set <field> <value>\n")
		return
	}

	switch field {
	case profile.FieldBirthDate:
		d, err := profile.ParseBirthDate(value)
		if err != nil {
			c.printf("Use a date like 15 March 1990.\n")
			return
		}
		value = profile.FormatBirthDate(d)
	case profile.FieldBirthTime:
		h, m, err := profile.ParseBirthTime(value)
		if err != nil {
			c.printf("Use a time like 02:30 PM.\n")
			return
		}
		value = profile.FormatBirthTime(time.Date(2000, 1, 1, h, m, 0, 0, time.UTC))
	}

	update, err := profile.Update(field, value)
	if err != nil {
		c.printf("Unknown field %q.\n", field)
		return
	}
	c.store.UpdateProfile(update)
	c.handleProfile()
}

func (c *Console) handleEnd(args string) {
	rating, err := strconv.Atoi(args)
	if err != nil {
		rating = 0
	}
	ack, err := c.thread.EndSession(rating)
	if err != nil {
		c.printf("Please rate the session from 1 to 5 stars.\n")
		c.ignore(err, "end session")
		return
	}
	c.overlay.Close()
	c.printf("Rating Captured: %s\n", ack)
}

func (c *Console) handleReply(chatID string, msg models.Message) {
	c.printf("%s\n", c.formatMessage(msg))
}

func (c *Console) renderThread() {
	msgs := c.thread.Messages()
	if len(msgs) == 0 {
		return
	}
	for _, msg := range msgs {
		c.printf("%s\n", c.formatMessage(msg))
	}
}

func (c *Console) renderReplyPreview() {
	target, ok := c.thread.ReplyingTo()
	if !ok {
		return
	}
	who := "Astrologer"
	if target.Sender == models.SenderUser {
		who = "Yourself"
	}
	c.printf("Replying to %s: %s\n", who, target.Text)
}

func (c *Console) formatMessage(msg models.Message) string {
	if msg.Type == models.EventMessage {
		return fmt.Sprintf("  ~ %s ~", msg.Text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: ", msg.ID, senderLabel(msg.Sender))
	if target, ok := c.thread.ResolveReply(msg.ID); ok {
		fmt.Fprintf(&b, "(↪ %s) ", truncate(target.Text, 30))
	}
	b.WriteString(msg.Text)
	if len(msg.Reactions) > 0 {
		fmt.Fprintf(&b, "  %s", strings.Join(msg.Reactions, ""))
	}
	switch msg.FeedbackState() {
	case models.StateLiked:
		b.WriteString("  👍 liked")
	case models.StateReasonPending, models.StateReasonOmitted:
		b.WriteString("  👎 disliked")
	case models.StateReasonRecorded:
		fmt.Fprintf(&b, "  👎 %s", *msg.FeedbackReason)
	}
	return b.String()
}

// ignore logs invalid-input errors; they are never shown to the user.
func (c *Console) ignore(err error, op string) {
	if err == nil {
		return
	}
	c.logger.Debug("Ignoring input", zap.String("op", op), zap.Error(err))
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.logger.Error("Failed to write output", zap.Error(err))
	}
}

func formatChat(chat models.Chat) string {
	line := fmt.Sprintf("[%s] %s - %s (%s)", chat.ID, chat.Name, chat.LastMessage, chat.Time)
	if chat.Unread > 0 {
		line += fmt.Sprintf(" • %d unread", chat.Unread)
	}
	if chat.IsOnline {
		line += " ●"
	}
	return line
}

func senderLabel(s models.Sender) string {
	switch s {
	case models.SenderUser:
		return "You"
	case models.SenderAIAstrologer:
		return "AI Astrologer"
	case models.SenderHumanAstrologer:
		return "Astrologer"
	}
	return string(s)
}

func parseRect(fields []string) (overlay.Rect, error) {
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return overlay.Rect{}, err
		}
		vals[i] = v
	}
	return overlay.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
