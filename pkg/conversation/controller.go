// Package conversation owns the chat log and sequences user submissions with
// their deferred bot replies.
package conversation

import (
	"log/slog"
	"strings"
	"time"
)

// DefaultReplyDelay is the pause before a bot reply is shown.
const DefaultReplyDelay = 120 * time.Millisecond

// Replier produces a reply for trimmed user text.
type Replier interface {
	Match(input string) string
}

// Observer is called after every append, in append order.
type Observer func(Message)

// Pending identifies a queued reply. The caller schedules a timer for Delay
// and calls Complete(Seq) when it fires.
type Pending struct {
	Seq   uint64
	Delay time.Duration
}

type pendingReply struct {
	seq  uint64
	text string
}

// Controller appends user messages immediately and bot replies after a delay.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	replier   Replier
	now       func() time.Time
	delay     time.Duration
	observers []Observer

	messages []Message
	queue    []pendingReply
	nextSeq  uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithReplyDelay sets the delay reported in Pending tickets.
func WithReplyDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithObserver registers a callback for appended messages.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// NewController creates a controller that asks replier for bot replies.
func NewController(replier Replier, opts ...Option) *Controller {
	c := &Controller{
		replier: replier,
		now:     time.Now,
		delay:   DefaultReplyDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit appends a user message for raw and queues its reply. Blank input is
// ignored and reports false. Replies still pending from earlier submissions
// are delivered first so every reply directly follows its user message.
func (c *Controller) Submit(raw string) (Pending, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Pending{}, false
	}

	if len(c.queue) > 0 {
		slog.Debug("conversation_flush_before_submit", "pending", len(c.queue))
		c.Flush()
	}

	c.append(newMessage(SenderUser, text, c.now()))

	c.nextSeq++
	c.queue = append(c.queue, pendingReply{seq: c.nextSeq, text: text})
	slog.Debug("conversation_reply_queued", "seq", c.nextSeq, "delay_ms", c.delay.Milliseconds())

	return Pending{Seq: c.nextSeq, Delay: c.delay}, true
}

// Complete delivers every queued reply up to and including seq. It returns
// the number of replies appended; an already delivered seq yields zero.
func (c *Controller) Complete(seq uint64) int {
	delivered := 0
	for len(c.queue) > 0 && c.queue[0].seq <= seq {
		c.deliverNext()
		delivered++
	}
	return delivered
}

// Flush delivers all queued replies in order.
func (c *Controller) Flush() int {
	delivered := 0
	for len(c.queue) > 0 {
		c.deliverNext()
		delivered++
	}
	return delivered
}

// Pending returns the number of replies not yet delivered.
func (c *Controller) Pending() int {
	return len(c.queue)
}

// ReplyDelay returns the configured reply delay.
func (c *Controller) ReplyDelay() time.Duration {
	return c.delay
}

// Messages returns a copy of the log in display order.
func (c *Controller) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the log.
func (c *Controller) Len() int {
	return len(c.messages)
}

func (c *Controller) deliverNext() {
	next := c.queue[0]
	c.queue = c.queue[1:]

	reply := c.replier.Match(next.text)
	c.append(newMessage(SenderBot, reply, c.now()))
	slog.Debug("conversation_reply_delivered", "seq", next.seq, "remaining", len(c.queue))
}

func (c *Controller) append(msg Message) {
	c.messages = append(c.messages, msg)
	for _, fn := range c.observers {
		fn(msg)
	}
}
