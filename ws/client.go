package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
)

// Client is one websocket connection. A connection starts with no identity;
// the authenticate event attaches {userId, role} for the rest of its life.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	router *Router
	send   chan any
	done   chan struct{}
	once   sync.Once
	ctx    context.Context

	mu     sync.RWMutex
	userID string
	role   models.UserRole
}

func newClient(hub *Hub, conn *websocket.Conn, router *Router) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		router: router,
		send:   make(chan any, 256),
		done:   make(chan struct{}),
		ctx:    context.Background(),
	}
}

// shutdown closes the connection and wakes both pumps. The send channel is
// never closed: readPump may still be mid-dispatch, so writers race a close.
// Safe to call from any goroutine, any number of times.
func (c *Client) shutdown() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) setSession(userID string, role models.UserRole) {
	c.mu.Lock()
	c.userID = userID
	c.role = role
	c.mu.Unlock()
}

func (c *Client) session() (string, models.UserRole) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID, c.role
}

func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *Client) Role() models.UserRole {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// readPump handles inbound frames one at a time on this goroutine, so two
// requests from the same connection never interleave.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.shutdown()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read error", "error", err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			logger.Warn("dropping malformed frame", "error", err)
			continue
		}

		select {
		case c.send <- c.router.Dispatch(c, &req):
		case <-c.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.shutdown()

	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Warn("websocket write error", "error", err)
				return
			}
		case <-c.done:
			return
		}
	}
}
