package publish

import (
	"sync"

	"ataxxsearch/board"
)

// ChannelSink is a last-write-wins sink backed by a single-slot channel,
// the same buffered-channel-plus-drop-stale-value shape as the teacher's
// Logger queue. It is what tests and the command-line tool use;
// SharedMemorySink is the memory-mapped alternative.
type ChannelSink struct {
	mu   sync.Mutex
	last board.Move
	ok   bool
	ch   chan board.Move
}

// NewChannelSink returns a ready-to-use sink.
func NewChannelSink() *ChannelSink {
	return &ChannelSink{ch: make(chan board.Move, 1)}
}

// Publish records mv as the latest candidate and pushes it onto the
// channel, dropping any unread prior value so the channel never blocks
// the search and never holds more than the newest move.
func (c *ChannelSink) Publish(mv board.Move) {
	c.mu.Lock()
	c.last = mv
	c.ok = true
	c.mu.Unlock()

	select {
	case c.ch <- mv:
	default:
		select {
		case <-c.ch:
		default:
		}
		c.ch <- mv
	}
}

// Last returns the most recently published move and whether any move has
// been published yet.
func (c *ChannelSink) Last() (board.Move, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.ok
}

// Chan exposes the underlying channel for callers that want to consume
// publications as they happen rather than poll Last.
func (c *ChannelSink) Chan() <-chan board.Move {
	return c.ch
}
