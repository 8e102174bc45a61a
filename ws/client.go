package ws

import (
	"github.com/gorilla/websocket"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

type Client struct {
	conn *websocket.Conn
	send chan []byte
	wsID string
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, 16),
		wsID: shortuuid.New(),
	}
}

// WriteLoop drains the send channel into the connection. It exits when the
// hub closes the channel or the connection breaks.
func (c *Client) WriteLoop() {
	defer c.conn.Close()
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logrus.WithError(err).WithField("ws_id", c.wsID).Debug("write to client failed")
			return
		}
	}
}

// ReadLoop discards inbound frames and returns when the peer goes away.
// Clients only listen; the read loop exists to notice disconnects.
func (c *Client) ReadLoop(hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("ws_id", c.wsID).Debug("client read failed")
			}
			return
		}
	}
}
