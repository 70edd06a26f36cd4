package websocketPkg

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"MedicalAssistant/internal/api/diagnosis"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var ErrNotConnected = errors.New("chat client is not connected")

// IChatClient talks to the diagnosis chat endpoint of a running server.
// Every Send waits for the one reply the server writes per frame.
type IChatClient interface {
	Send(ctx context.Context, msg diagnosis.ChatMessage) (*diagnosis.ChatReply, error)
	IsConnected() bool
	Reconnect() error
	Close()
}

type chatClient struct {
	url          string
	log          *logrus.Logger
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewChatClient(url string, log *logrus.Logger) IChatClient {
	return &chatClient{
		url:          url,
		log:          log,
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}
}

// ChatURL builds the WebSocket address of a session from the HTTP base
// address of the server.
func ChatURL(baseURL, sessionID string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		baseURL = "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		baseURL = "ws://" + strings.TrimPrefix(baseURL, "http://")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	return fmt.Sprintf("%s/api/v1/diagnosis/sessions/%s/ws", baseURL, sessionID)
}

func (c *chatClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *chatClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	c.log.WithField("url", c.url).Debug("Connecting to diagnosis chat")

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		if err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout)); err != nil {
			c.log.Warnf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn
	go c.keepAlive(conn)

	return nil
}

func (c *chatClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(c.writeTimeout),
		)
		c.conn.Close()
		c.conn = nil
	}
}

func (c *chatClient) keepAlive(conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.conn != conn {
			c.mu.Unlock()
			return
		}

		if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(c.writeTimeout)); err != nil {
			c.log.Warnf("Ping failed, marking chat connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

// Send writes one frame and reads its reply. A connection that fails mid
// exchange is dropped; the next Send dials again.
func (c *chatClient) Send(ctx context.Context, msg diagnosis.ChatMessage) (*diagnosis.ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !c.IsConnected() {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn := c.conn
	if conn == nil {
		return nil, ErrNotConnected
	}

	payload, err := jsoniter.Marshal(msg)
	if err != nil {
		return nil, err
	}

	conn.SetWriteDeadline(c.deadline(ctx, c.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.drop(conn)
		return nil, fmt.Errorf("error sending chat message: %w", err)
	}

	conn.SetReadDeadline(c.deadline(ctx, c.readTimeout))
	_, message, err := conn.ReadMessage()
	if err != nil {
		c.drop(conn)
		return nil, fmt.Errorf("error reading chat reply: %w", err)
	}

	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	var reply diagnosis.ChatReply
	if err := jsoniter.Unmarshal(message, &reply); err != nil {
		return nil, fmt.Errorf("error unmarshaling chat reply: %w", err)
	}
	return &reply, nil
}

// drop forgets a broken connection. Callers hold c.mu.
func (c *chatClient) drop(conn *websocket.Conn) {
	conn.Close()
	if c.conn == conn {
		c.conn = nil
	}
}

func (c *chatClient) deadline(ctx context.Context, timeout time.Duration) time.Time {
	d := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		return ctxDeadline
	}
	return d
}
