package segarray

import (
	"context"

	"github.com/guiguan/caster"
)

// EventKind classifies page lifecycle events.
type EventKind int8

// Page lifecycle events published to watchers.
const (
	PageCreated     EventKind = iota + 1 // a page has been appended to the page table
	PageReplaced                         // SetPage replaced an existing page
	PageTransformed                      // a parallel transform has finished a page
)

func (k EventKind) String() string {
	switch k {
	case PageCreated:
		return "created"
	case PageReplaced:
		return "replaced"
	case PageTransformed:
		return "transformed"
	}
	return "unknown"
}

// PageEvent is the message type delivered to watchers.
type PageEvent struct {
	Kind   EventKind
	PageID int
}

// Watch subscribes to page lifecycle events. Messages on the returned
// channel are of type PageEvent. capacity is the channel's buffer size.
//
// Publishing blocks while a subscriber's buffer is full, so subscribers have
// to drain their channel or call the returned cancel function. Watch must
// not be called concurrently with array mutations.
//
// The cancel function stays bound to the subscription it was created for;
// calling it after CloseWatchers is a no-op. Watching a nil array yields a
// closed channel.
func (a *Array[T]) Watch(capacity uint) (<-chan any, func()) {
	if a == nil {
		ch := make(chan any)
		close(ch)
		return ch, func() {}
	}
	if a.cast == nil {
		a.cast = caster.New(context.Background())
	}
	c := a.cast
	ch, ok := c.Sub(context.Background(), capacity)
	mustHold(ok, "Watch: page event caster is closed")
	tracer().Debugf("segarray: page watcher subscribed")
	return ch, func() {
		c.Unsub(ch)
	}
}

// CloseWatchers unsubscribes all watchers, closing their channels.
func (a *Array[T]) CloseWatchers() {
	if a == nil || a.cast == nil {
		return
	}
	a.cast.Close()
	a.cast = nil
}

func (a *Array[T]) publish(e PageEvent) {
	if a.cast == nil {
		return
	}
	a.cast.Pub(e)
}
