package responder

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Responder produces the text of a simulated astrologer reply.
type Responder interface {
	Reply(ctx context.Context, prompt string) string
}

// CannedResponses are the replies the simulated astrologer picks from.
var CannedResponses = []string{
	"The planetary positions suggest a significant change coming up.",
	"Interesting. Your Moon sign is playing a major role here.",
	"I need to analyze your D9 chart for more clarity on this.",
	"That is a very distinct possibility given the transit of Jupiter.",
	"Focus on your breathing and meditation during this phase.",
}

type CannedResponder struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	responses []string
}

func NewCannedResponder() *CannedResponder {
	return NewCannedResponderWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewCannedResponderWithSource(src rand.Source) *CannedResponder {
	return &CannedResponder{
		rnd:       rand.New(src),
		responses: CannedResponses,
	}
}

// Reply ignores the prompt and picks a canned response uniformly at random
func (c *CannedResponder) Reply(ctx context.Context, prompt string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.responses[c.rnd.Intn(len(c.responses))]
}
