package admin

import (
	"sync"
	"time"
)

// DefaultNoticeTTL matches the 3 second toast the console UI shows.
const DefaultNoticeTTL = 3 * time.Second

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient user-visible message. It is state, not a log entry.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Notices holds at most one current notice and clears it after a fixed
// interval. A generation counter keeps a stale timer from clearing a notice
// published after it.
type Notices struct {
	mu  sync.Mutex
	ttl time.Duration
	cur *Notice
	gen uint64
}

func NewNotices(ttl time.Duration) *Notices {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notices{ttl: ttl}
}

// Publish replaces the current notice and arms its clear timer.
func (n *Notices) Publish(kind NoticeKind, message string) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.cur = &Notice{Kind: kind, Message: message}
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen == gen {
			n.cur = nil
		}
	})
}

// Current returns the notice still on display, if any.
func (n *Notices) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cur == nil {
		return Notice{}, false
	}
	return *n.cur, true
}
