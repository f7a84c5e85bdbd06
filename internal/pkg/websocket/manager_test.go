package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Expiration: 10}

func newTestServer(t *testing.T) (*Manager, string) {
	m := NewManager(testJWT)
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return m, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string, userID uuid.UUID) *websocket.Conn {
	token, _, err := jwtpkg.GenerateToken(userID, "u@example.com", models.RoleTraveller, testJWT)
	require.NoError(t, err)
	ws, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readMessage(t *testing.T, ws *websocket.Conn) models.WSMessage {
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, ws.ReadJSON(&msg))
	return msg
}

func TestManager_RejectsMissingToken(t *testing.T) {
	_, url := newTestServer(t)
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestManager_NotifyUser(t *testing.T) {
	m, url := newTestServer(t)
	userID := uuid.New()
	first := dial(t, url, userID)
	second := dial(t, url, userID)

	require.Eventually(t, func() bool {
		m.RLock()
		defer m.RUnlock()
		return len(m.clients[userID.String()]) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.NotifyUser(userID.String(), constants.EventReservationCreated, map[string]string{"reservation_id": "r-1"}))

	for _, ws := range []*websocket.Conn{first, second} {
		msg := readMessage(t, ws)
		assert.Equal(t, constants.EventReservationCreated, msg.Event)
		assert.JSONEq(t, `{"reservation_id":"r-1"}`, string(msg.Data))
	}

	assert.NoError(t, m.NotifyUser(uuid.NewString(), constants.EventTripCancelled, nil))
}

func TestManager_PingPongAndBadFormat(t *testing.T) {
	m, url := newTestServer(t)
	userID := uuid.New()
	ws := dial(t, url, userID)

	require.NoError(t, ws.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	assert.Equal(t, constants.EventPong, readMessage(t, ws).Event)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := readMessage(t, ws)
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), constants.ErrorInvalidFormat)

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return !m.IsConnected(userID.String()) }, 2*time.Second, 10*time.Millisecond)
}
