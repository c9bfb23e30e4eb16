package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Request is one inbound frame: a named event plus a correlation id the
// client uses to match the acknowledgement.
type Request struct {
	ID    int64           `json:"id"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Broadcast is a server-initiated frame. It carries no id and expects no
// acknowledgement.
type Broadcast struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func okAck(id int64, fields gin.H) gin.H {
	ack := gin.H{"id": id, "status": "ok"}
	for k, v := range fields {
		ack[k] = v
	}
	return ack
}

func errorAck(id int64, message string) gin.H {
	return gin.H{"id": id, "status": "error", "message": message}
}
