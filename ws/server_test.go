package ws_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"jobportal_backend/database"
	"jobportal_backend/internal/app"
	"jobportal_backend/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.JWT.Secret = "test_secret"
	cfg.JWT.TTLDays = 1
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	config.AppConfig = cfg

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	router, wsServer := app.SetupRouter(cfg, db)
	go wsServer.Run()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type wsClient struct {
	t      *testing.T
	conn   *websocket.Conn
	nextID int64
}

func dialWS(t *testing.T, srv *httptest.Server) *wsClient {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &wsClient{t: t, conn: conn}
}

// request sends one event and reads frames until the matching ack arrives,
// discarding interleaved broadcasts.
func (c *wsClient) request(event string, data any) map[string]any {
	c.t.Helper()

	c.nextID++
	frame := map[string]any{"id": c.nextID, "event": event}
	if data != nil {
		frame["data"] = data
	}
	require.NoError(c.t, c.conn.WriteJSON(frame))

	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(c.t, c.conn.SetReadDeadline(deadline))
		var msg map[string]any
		require.NoError(c.t, c.conn.ReadJSON(&msg))
		if id, ok := msg["id"].(float64); ok && int64(id) == c.nextID {
			return msg
		}
	}
}

func (c *wsClient) requireOK(event string, data any) map[string]any {
	c.t.Helper()

	ack := c.request(event, data)
	require.Equal(c.t, "ok", ack["status"], "event %s failed: %v", event, ack)
	return ack
}

// waitEvent reads frames until the named broadcast arrives and returns its
// data payload.
func (c *wsClient) waitEvent(event string) map[string]any {
	c.t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(c.t, c.conn.SetReadDeadline(deadline))
		var msg map[string]any
		require.NoError(c.t, c.conn.ReadJSON(&msg))
		if msg["event"] == event {
			data, _ := msg["data"].(map[string]any)
			return data
		}
	}
}

func (c *wsClient) registerAndAuthenticate(name, email, role string) string {
	c.t.Helper()

	ack := c.requireOK("register", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	token, _ := ack["token"].(string)
	require.NotEmpty(c.t, token)
	user, _ := ack["user"].(map[string]any)
	require.NotNil(c.t, user)

	authAck := c.requireOK("authenticate", map[string]any{"token": token})
	require.Equal(c.t, user["id"], authAck["userId"])
	require.Equal(c.t, role, authAck["role"])

	return user["id"].(string)
}

func TestLivenessEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "Job portal socket server is running")
}

func TestRequestsWithoutSessionAreRejected(t *testing.T) {
	srv := newTestServer(t)
	client := dialWS(t, srv)

	ack := client.request("getNotifications", nil)
	assert.Equal(t, "error", ack["status"])
	assert.Equal(t, "Not authenticated", ack["message"])
}

func TestUnknownEvent(t *testing.T) {
	srv := newTestServer(t)
	client := dialWS(t, srv)

	ack := client.request("teleport", nil)
	assert.Equal(t, "error", ack["status"])
	assert.Equal(t, "Unknown event: teleport", ack["message"])
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	srv := newTestServer(t)
	client := dialWS(t, srv)

	ack := client.request("authenticate", map[string]any{"token": "not-a-jwt"})
	assert.Equal(t, "error", ack["status"])
	assert.Equal(t, "Invalid token", ack["message"])
}

func TestApplyAndStatusUpdateFlow(t *testing.T) {
	srv := newTestServer(t)

	employer := dialWS(t, srv)
	candidate := dialWS(t, srv)

	employer.registerAndAuthenticate("Tech Corp", "company@example.com", "company")
	candidate.registerAndAuthenticate("John Doe", "john@example.com", "candidate")

	// Company-only events stay closed to candidates.
	guard := candidate.request("getMyJobs", nil)
	assert.Equal(t, "error", guard["status"])
	assert.Equal(t, "Not authorized", guard["message"])

	jobAck := employer.requireOK("createJob", map[string]any{
		"title":       "Frontend Engineer",
		"description": "Build modern UI.",
		"companyname": "Tech Corp",
		"jobType":     "Full-time",
	})
	job := jobAck["job"].(map[string]any)
	jobID := job["id"].(string)

	// Every connection sits in the jobs topic, so the candidate sees the
	// posting immediately.
	created := candidate.waitEvent("job:created")
	assert.Equal(t, "Frontend Engineer", created["title"])

	candidate.requireOK("applyToJob", map[string]any{"jobId": jobID})

	update := employer.waitEvent("employer:updateApplicants")
	application := update["application"].(map[string]any)
	assert.Equal(t, "pending", application["status"])
	assert.Equal(t, "John Doe", application["name"])
	applicationID := application["id"].(string)

	employer.requireOK("updateApplicationStatus", map[string]any{
		"applicationId": applicationID,
		"status":        "accepted",
	})

	statusEvent := candidate.waitEvent("application:statusUpdated")
	assert.Equal(t, "accepted", statusEvent["status"])
	assert.Equal(t, applicationID, statusEvent["applicationId"])

	notifications := candidate.requireOK("getNotifications", nil)
	list := notifications["notifications"].([]any)
	require.NotEmpty(t, list)
	first := list[0].(map[string]any)
	assert.Equal(t, "Your application for Frontend Engineer was accepted", first["message"])
	assert.EqualValues(t, 1, notifications["unreadCount"])

	employer.requireOK("deleteJob", map[string]any{"id": jobID})
	deleted := candidate.waitEvent("job:deleted")
	assert.Equal(t, jobID, deleted["jobId"])
}

func TestConnectionRequestFlow(t *testing.T) {
	srv := newTestServer(t)

	requester := dialWS(t, srv)
	receiver := dialWS(t, srv)

	requester.registerAndAuthenticate("John Doe", "john@example.com", "candidate")
	receiverID := receiver.registerAndAuthenticate("Jane Roe", "jane@example.com", "candidate")

	sendAck := requester.requireOK("sendConnectionRequest", map[string]any{"receiverId": receiverID})
	connection := sendAck["connection"].(map[string]any)
	connectionID := connection["id"].(string)
	assert.Equal(t, "pending", connection["status"])

	incoming := receiver.waitEvent("notification:new")
	assert.Equal(t, "📨 You received a new connection request!", incoming["message"])

	receiver.requireOK("respondConnectionRequest", map[string]any{
		"connectionId": connectionID,
		"action":       "rejected",
	})

	removed := receiver.waitEvent("notification:removedConnection")
	assert.Equal(t, connectionID, removed["connectionId"])

	outcome := requester.waitEvent("notification:new")
	assert.Equal(t, "❌ Your connection request was rejected!", outcome["message"])
}

func TestProfileUpdateEchoesToOwnRoom(t *testing.T) {
	srv := newTestServer(t)

	tabOne := dialWS(t, srv)
	tabTwo := dialWS(t, srv)

	tabOne.registerAndAuthenticate("John Doe", "john@example.com", "candidate")

	// Second tab of the same user: log in and authenticate with a fresh
	// token for the same account.
	loginAck := tabTwo.requireOK("login", map[string]any{"email": "john@example.com", "password": "password123"})
	tabTwo.requireOK("authenticate", map[string]any{"token": loginAck["token"]})

	tabOne.requireOK("saveProfile", map[string]any{
		"headline": "Frontend engineer",
		"skills":   []string{"Go", "TypeScript"},
	})

	echoed := tabTwo.waitEvent("profile:updated")
	assert.Equal(t, "Frontend engineer", echoed["headline"])
}
