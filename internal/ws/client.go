package ws

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"kuryecini/pkg/logger"
)

const (
	pingMessage = "ping"
	pongMessage = "pong"

	maxMessageSize = 4 * 1024
)

type connLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// MessageHandler получает текстовые кадры клиента, кроме служебного "ping".
type MessageHandler func(c *Client, payload []byte)

type ClientConfig struct {
	// IdleTimeout — максимум тишины от клиента; дедлайн чтения
	// перевзводится на каждый входящий кадр, включая "ping".
	IdleTimeout  time.Duration
	WriteTimeout time.Duration
	SendBuffer   int
}

// Client обслуживает одно websocket-соединение: исходящие кадры идут
// через буферизованный канал, чтобы медленный клиент не блокировал рассылку.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once
	onMessage MessageHandler
	onClose   func(c *Client)

	log          connLogger
	idleTimeout  time.Duration
	writeTimeout time.Duration
}

func NewClient(id string, conn *websocket.Conn, cfg ClientConfig, log connLogger) *Client {
	return &Client{
		id:           id,
		conn:         conn,
		send:         make(chan []byte, cfg.SendBuffer),
		done:         make(chan struct{}),
		log:          log.With(logger.NewField("conn_id", id)),
		idleTimeout:  cfg.IdleTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) OnMessage(handler MessageHandler) {
	c.onMessage = handler
}

func (c *Client) OnClose(fn func(c *Client)) {
	c.onClose = fn
}

// Run блокируется до закрытия соединения с любой стороны.
func (c *Client) Run() {
	ConnectionsActive.Inc()
	defer ConnectionsActive.Dec()

	go c.writePump()
	c.readPump()
}

// TrySend кладет кадр в исходящий буфер без блокировки.
// false означает переполненный буфер или закрытое соединение.
func (c *Client) TrySend(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// Shutdown закрывает соединение; повторные вызовы безопасны.
func (c *Client) Shutdown() {
	c.close(websocket.CloseNormalClosure, "")
}

func (c *Client) close(code int, reason string) {
	c.closeOnce.Do(func() {
		deadline := time.Now().Add(c.writeTimeout)
		message := websocket.FormatCloseMessage(code, reason)
		if err := c.conn.WriteControl(websocket.CloseMessage, message, deadline); err != nil {
			c.log.With(logger.NewField("error", err.Error())).
				Info("close frame not delivered")
		}

		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log.With(logger.NewField("error", err.Error())).
				Info("connection close error")
		}

		if c.onClose != nil {
			c.onClose(c)
		}
	})
}

func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)

	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
			c.close(websocket.CloseInternalServerErr, "")
			return
		}

		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				IdleDisconnectsTotal.Inc()
				c.log.Info("closing idle connection")
				c.close(websocket.CloseNormalClosure, "Idle timeout")
				return
			}
			c.close(websocket.CloseNormalClosure, "")
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		if string(payload) == pingMessage {
			c.TrySend([]byte(pongMessage))
			continue
		}

		if c.onMessage != nil {
			c.onMessage(c, payload)
		}
	}
}

func (c *Client) writePump() {
	for {
		select {
		case payload := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
				c.close(websocket.CloseInternalServerErr, "")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.log.With(logger.NewField("error", err.Error())).
					Info("write failed, dropping connection")
				c.close(websocket.CloseInternalServerErr, "")
				return
			}
		case <-c.done:
			return
		}
	}
}
