// Package hub fans re-projected box-score tables out to websocket watchers.
// Watchers are read-only: every mutation arrives over the HTTP surface, so
// there is no keeper role here.
package hub

import (
	"github.com/gorilla/websocket"
)

type Hub struct {
	Watchers     map[*Watcher]bool
	Broadcast    chan []byte
	JoinWatcher  chan *Watcher
	LeaveWatcher chan *Watcher
}

func New() *Hub {
	return &Hub{
		Watchers:     make(map[*Watcher]bool),
		Broadcast:    make(chan []byte),
		JoinWatcher:  make(chan *Watcher),
		LeaveWatcher: make(chan *Watcher),
	}
}

// Join registers the connection and starts its pumps. A non-nil seed is
// queued as the watcher's first message before registration; once a watcher
// is registered, only the run loop may touch its Receive channel.
func (h *Hub) Join(conn *websocket.Conn, seed []byte) *Watcher {
	watcher := newWatcher(h, conn, seed)
	h.JoinWatcher <- watcher
	go watcher.WriteUpdates()
	go watcher.ReadControl()
	return watcher
}

// Publish hands a message to the run loop for fan-out.
func (h *Hub) Publish(msg []byte) {
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.JoinWatcher:
			h.Watchers[watcher] = true
		case watcher := <-h.LeaveWatcher:
			if _, ok := h.Watchers[watcher]; ok {
				delete(h.Watchers, watcher)
				close(watcher.Receive)
			}
		case msg := <-h.Broadcast:
			h.toAllWatchers(msg)
		}
	}
}

func (h *Hub) toAllWatchers(msg []byte) {
	for watcher := range h.Watchers {
		select {
		case watcher.Receive <- msg:
		default:
			close(watcher.Receive)
			delete(h.Watchers, watcher)
		}
	}
}
