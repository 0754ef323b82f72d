package models

type Sender string

const (
	SenderUser            Sender = "user"
	SenderAIAstrologer    Sender = "ai_astrologer"
	SenderHumanAstrologer Sender = "human_astrologer"
	SenderSystem          Sender = "system"
)

type MessageType string

const (
	TextMessage  MessageType = "text"
	AIMessage    MessageType = "ai"
	HumanMessage MessageType = "human"
	EventMessage MessageType = "event"
	ImageMessage MessageType = "image"
)

type Feedback string

const (
	FeedbackNone     Feedback = ""
	FeedbackLiked    Feedback = "liked"
	FeedbackDisliked Feedback = "disliked"
)

// FeedbackReasons are the reasons offered after a dislike.
var FeedbackReasons = []string{"Inaccurate", "Too Vague", "Too Long"}

// IsFeedbackReason reports whether reason is one of FeedbackReasons.
func IsFeedbackReason(reason string) bool {
	for _, r := range FeedbackReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Message represents one entry of a chat thread
type Message struct {
	ID          string      `json:"id"`
	Sender      Sender      `json:"sender"`
	Text        string      `json:"text"`
	Timestamp   int64       `json:"timestamp"`
	Type        MessageType `json:"type"`
	ReplyTo     string      `json:"reply_to,omitempty"`
	Reactions   []string    `json:"reactions,omitempty"`
	HasFeedback bool        `json:"has_feedback,omitempty"`
	// FeedbackType is liked, disliked or empty.
	FeedbackType Feedback `json:"feedback_type,omitempty"`
	// FeedbackReason is nil while a dislike waits for a reason and points to
	// an empty string when the reason was omitted.
	FeedbackReason *string `json:"feedback_reason,omitempty"`
}

// HasReaction reports whether emoji is already in the reaction set.
func (m Message) HasReaction(emoji string) bool {
	for _, r := range m.Reactions {
		if r == emoji {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	out := m
	out.Reactions = cloneStrings(m.Reactions)
	if m.FeedbackReason != nil {
		r := *m.FeedbackReason
		out.FeedbackReason = &r
	}
	return out
}

type FeedbackState string

const (
	StateSent           FeedbackState = "sent"
	StateLiked          FeedbackState = "liked"
	StateReasonPending  FeedbackState = "disliked_reason_pending"
	StateReasonRecorded FeedbackState = "disliked_reason_recorded"
	StateReasonOmitted  FeedbackState = "disliked_reason_omitted"
)

// FeedbackState derives the feedback state of the message.
func (m Message) FeedbackState() FeedbackState {
	switch m.FeedbackType {
	case FeedbackLiked:
		return StateLiked
	case FeedbackDisliked:
		switch {
		case m.FeedbackReason == nil:
			return StateReasonPending
		case *m.FeedbackReason == "":
			return StateReasonOmitted
		default:
			return StateReasonRecorded
		}
	}
	return StateSent
}

// CloneMessages deep-copies a thread.
func CloneMessages(in []Message) []Message {
	out := make([]Message, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
