package models

type ChatCategory string

const (
	CategoryAstrologer ChatCategory = "astrologer"
	CategorySupport    ChatCategory = "support"
)

// Chat represents a conversation partner shown in the chat directory
type Chat struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ChatCategory `json:"category"`
	IsOnline    bool         `json:"is_online"`
	Visible     *bool        `json:"visible,omitempty"`
	LastMessage string       `json:"last_message"`
	Time        string       `json:"time"`
	Unread      int          `json:"unread"`
	Experience  string       `json:"experience,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Specialties []string     `json:"specialties,omitempty"`
	Languages   []string     `json:"languages,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	ReviewCount int          `json:"review_count,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// IsVisible reports whether the chat is listed. An unset flag counts as visible.
func (c Chat) IsVisible() bool {
	return c.Visible == nil || *c.Visible
}

// Clone returns a copy that shares no slices or pointers with c.
func (c Chat) Clone() Chat {
	out := c
	if c.Visible != nil {
		v := *c.Visible
		out.Visible = &v
	}
	out.Specialties = cloneStrings(c.Specialties)
	out.Languages = cloneStrings(c.Languages)
	out.Tags = cloneStrings(c.Tags)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
