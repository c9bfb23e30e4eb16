package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/pkg/apperrors"
)

// HandlerFunc processes one request and returns the ack fields to merge into
// the ok acknowledgement, or an error that becomes an error ack.
type HandlerFunc func(c *Client, data json.RawMessage) (gin.H, error)

type route struct {
	handler  HandlerFunc
	needAuth bool
	needRole models.UserRole
}

// Router maps event names to handlers. Authentication and role requirements
// are declared per route so ownership-of-session checks live in one place
// instead of being repeated inside every handler.
type Router struct {
	routes map[string]route
}

func NewRouter() *Router {
	return &Router{routes: make(map[string]route)}
}

// Handle registers a public event.
func (r *Router) Handle(event string, h HandlerFunc) {
	r.routes[event] = route{handler: h}
}

// HandleAuth registers an event that requires an authenticated session.
func (r *Router) HandleAuth(event string, h HandlerFunc) {
	r.routes[event] = route{handler: h, needAuth: true}
}

// HandleRole registers an event restricted to one role.
func (r *Router) HandleRole(event string, role models.UserRole, h HandlerFunc) {
	r.routes[event] = route{handler: h, needAuth: true, needRole: role}
}

// Dispatch runs the handler for a request and always produces an ack. No
// error crosses this boundary unstructured: everything collapses to
// {status: "error", message} with internals hidden.
func (r *Router) Dispatch(c *Client, req *Request) gin.H {
	rt, ok := r.routes[req.Event]
	if !ok {
		return errorAck(req.ID, "Unknown event: "+req.Event)
	}

	if rt.needAuth {
		userID, role := c.session()
		if userID == "" {
			return errorAck(req.ID, "Not authenticated")
		}
		if rt.needRole != "" && role != rt.needRole {
			return errorAck(req.ID, "Not authorized")
		}
	}

	fields, err := rt.handler(c, req.Data)
	if err != nil {
		logDispatchError(req.Event, err)
		return errorAck(req.ID, apperrors.ClientMessage(err))
	}
	return okAck(req.ID, fields)
}

func logDispatchError(event string, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.HTTPCode < 500 {
		logger.Debug("request rejected", "event", event, "error", err)
		return
	}
	logger.Error("request failed", "event", event, "error", err)
}
