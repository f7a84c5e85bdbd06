package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type conn struct {
	client *models.WebSocketClient
	ws     *websocket.Conn
	mu     sync.Mutex
}

func (c *conn) write(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(msg)
}

func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Manager tracks authenticated WebSocket connections by user id. A user may
// hold several connections at once.
type Manager struct {
	sync.RWMutex
	clients  map[string]map[*conn]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]map[*conn]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and serves a connection until
// the peer goes away
func (m *Manager) HandleConnection(c echo.Context) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cn := &conn{client: client, ws: ws}
	m.add(cn)
	defer func() {
		m.remove(cn)
		ws.Close()
	}()

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	done := make(chan struct{})
	defer close(done)
	go m.keepAlive(cn, done)

	m.readLoop(cn)
	return nil
}

func (m *Manager) readLoop(cn *conn) {
	_ = cn.ws.SetReadDeadline(time.Now().Add(pongWait))
	cn.ws.SetPongHandler(func(string) error {
		return cn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.WSMessage
		if err := cn.ws.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				_ = m.sendError(cn, constants.ErrorInvalidFormat, "Invalid message format")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", cn.client.UserID),
					logger.Err(err))
			}
			return
		}

		switch msg.Event {
		case constants.EventPing:
			_ = m.send(cn, constants.EventPong, map[string]int64{"ts": time.Now().Unix()})
		default:
			_ = m.sendError(cn, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
		}
	}
}

func (m *Manager) keepAlive(cn *conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := cn.ping(); err != nil {
				return
			}
		}
	}
}

// authenticateClient accepts a bearer token in the Authorization header or,
// for browsers, in the token query parameter
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization token is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID.String(),
		Role:   string(claims.Role),
	}, nil
}

func (m *Manager) add(cn *conn) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[cn.client.UserID]
	if !ok {
		set = make(map[*conn]struct{})
		m.clients[cn.client.UserID] = set
	}
	set[cn] = struct{}{}
}

func (m *Manager) remove(cn *conn) {
	m.Lock()
	defer m.Unlock()
	set := m.clients[cn.client.UserID]
	delete(set, cn)
	if len(set) == 0 {
		delete(m.clients, cn.client.UserID)
	}
}

// IsConnected reports whether userID has at least one open connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID]) > 0
}

// NotifyUser sends event to every connection of userID. Users without a
// connection are skipped silently.
func (m *Manager) NotifyUser(userID, event string, data interface{}) error {
	m.RLock()
	conns := make([]*conn, 0, len(m.clients[userID]))
	for cn := range m.clients[userID] {
		conns = append(conns, cn)
	}
	m.RUnlock()

	var firstErr error
	for _, cn := range conns {
		if err := m.send(cn, event, data); err != nil {
			logger.Warn("Failed to deliver WebSocket event",
				logger.String("user_id", userID),
				logger.String("event", event),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *Manager) send(cn *conn, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}
	return cn.write(models.WSMessage{Event: event, Data: rawData})
}

func (m *Manager) sendError(cn *conn, code, message string) error {
	return m.send(cn, constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}
