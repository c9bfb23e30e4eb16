package ws

import (
	"sync"

	"jobportal_backend/internal/logger"
)

// TopicJobs is the room every connection joins on connect. Job mutations are
// published here instead of being fanned out to the raw client set, so a
// client that does not care about the jobs board could leave it.
const TopicJobs = "jobs"

func userRoom(userID string) string {
	return "user:" + userID
}

// Hub tracks connected clients and their room memberships. Rooms are an
// in-memory index only; membership is rebuilt from scratch when a client
// reconnects and re-authenticates.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.joinLocked(client, TopicJobs)
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("client connected", "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.leaveAllLocked(client)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Debug("client disconnected", "total", total)
		}
	}
}

// JoinRoom adds the client to a named room. Authenticating joins the
// client's own user:<id> room. A client that has already unregistered is
// ignored so a late join cannot resurrect its room membership.
func (h *Hub) JoinRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	h.joinLocked(client, room)
}

// EmitToRoom sends an event to every client in the room. Clients whose send
// buffer is full are disconnected rather than blocking the emitter.
func (h *Hub) EmitToRoom(room, event string, data any) {
	msg := &Broadcast{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		h.deliver(client, msg)
	}
}

// ClientCount reports the number of registered connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomSize reports the membership of a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) joinLocked(client *Client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}
}

func (h *Hub) leaveAllLocked(client *Client) {
	for room, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// deliver hands a frame to one client without blocking the emitter. A full
// buffer means the peer stopped reading; shutting the connection down lets
// readPump exit and unregister on its own goroutine, so the hub never closes
// a channel the pumps still write to.
func (h *Hub) deliver(client *Client, msg *Broadcast) {
	select {
	case client.send <- msg:
	default:
		logger.Warn("dropping slow client", "event", msg.Event)
		client.shutdown()
	}
}
