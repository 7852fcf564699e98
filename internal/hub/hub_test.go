package hub

import (
	"StatClickerApi/internal/assert"
	"testing"
)

// register adds a watcher to a running hub without starting connection pumps,
// so tests can assert on the Receive channel directly.
func register(h *Hub, seed []byte) *Watcher {
	w := newWatcher(h, nil, seed)
	h.JoinWatcher <- w
	return w
}

func TestPublishFansOutToAllWatchers(t *testing.T) {
	h := New()
	go h.Run()

	first := register(h, nil)
	second := register(h, nil)

	msg := []byte(`{"box_score":{}}`)
	h.Publish(msg)

	assert.Equal(t, string(<-first.Receive), string(msg))
	assert.Equal(t, string(<-second.Receive), string(msg))
}

func TestSeedQueuedBeforeRegistration(t *testing.T) {
	h := New()
	go h.Run()

	seed := []byte(`{"box_score":{"rows":[]}}`)
	w := register(h, seed)

	assert.Equal(t, string(<-w.Receive), string(seed))

	msg := []byte(`{"box_score":{"rows":[1]}}`)
	h.Publish(msg)
	assert.Equal(t, string(<-w.Receive), string(msg))
}

func TestLeaveClosesReceive(t *testing.T) {
	h := New()
	go h.Run()

	w := register(h, nil)
	h.LeaveWatcher <- w

	_, ok := <-w.Receive
	assert.Equal(t, ok, false)
}

func TestImmediateLeaveWithQueuedSeed(t *testing.T) {
	h := New()
	go h.Run()

	// a client that drops right after the upgrade leaves its seed unread;
	// later broadcasts must still reach the remaining watchers
	gone := register(h, []byte("seed"))
	stayer := register(h, nil)

	h.LeaveWatcher <- gone

	msg := []byte(`{"box_score":{}}`)
	h.Publish(msg)
	assert.Equal(t, string(<-stayer.Receive), string(msg))

	seed, ok := <-gone.Receive
	assert.Equal(t, ok, true)
	assert.Equal(t, string(seed), "seed")
	_, ok = <-gone.Receive
	assert.Equal(t, ok, false)
}

func TestSlowWatcherEvicted(t *testing.T) {
	h := New()
	go h.Run()

	slow := register(h, nil)
	fast := register(h, nil)

	// fill the slow watcher's buffer so the next fan-out cannot queue
	backlog := cap(slow.Receive)
	for i := 0; i < backlog; i++ {
		slow.Receive <- []byte("backlog")
	}

	evicting := []byte("evicting")
	h.Publish(evicting)
	assert.Equal(t, string(<-fast.Receive), string(evicting))

	// the fast watcher receiving again proves the eviction broadcast was
	// fully processed before this one
	after := []byte("after")
	h.Publish(after)
	assert.Equal(t, string(<-fast.Receive), string(after))

	for i := 0; i < backlog; i++ {
		msg, ok := <-slow.Receive
		assert.Equal(t, ok, true)
		assert.Equal(t, string(msg), "backlog")
	}
	_, ok := <-slow.Receive
	assert.Equal(t, ok, false)
}
