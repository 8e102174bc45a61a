package ws

import (
	"encoding/json"
	"net/http"
	"storefront/metrics"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Event is what connected clients receive. Kinds in use: newOrder,
// newProduct, updatedProduct, deleteProduct, waitlistUpdated.
type Event struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

// Hub broadcasts events to all currently connected clients. Delivery is fire
// and forget: there is no backlog and no replay, a client connecting after a
// broadcast simply misses it.
type Hub struct {
	lock     sync.Mutex
	clients  map[*Client]struct{}
	upgrader websocket.Upgrader
}

func NewHub(allowedOrigin string) *Hub {
	return &Hub{
		clients: map[*Client]struct{}{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "*" || allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

func (h *Hub) Register(client *Client) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.clients[client] = struct{}{}
	logrus.WithField("ws_id", client.wsID).Info("client joined broadcast")
}

func (h *Hub) Unregister(client *Client) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	logrus.WithField("ws_id", client.wsID).Info("client removed from broadcast")
}

// Broadcast pushes an event to every connected client. A client whose send
// buffer is full is skipped rather than blocking the others.
func (h *Hub) Broadcast(kind string, payload any) {
	data, err := json.Marshal(Event{Kind: kind, Payload: payload})
	if err != nil {
		metrics.NotificationFailures.WithLabelValues(metrics.ChannelBroadcast).Inc()
		logrus.WithError(err).WithField("kind", kind).Error("could not marshal broadcast event")
		return
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			logrus.WithField("ws_id", client.wsID).Warn("dropping broadcast for slow client")
		}
	}
}

func (h *Hub) ClientCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()

	return len(h.clients)
}

// HandleWS upgrades the request and keeps the connection registered until the
// client goes away.
func (h *Hub) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(conn)
	h.Register(client)

	go client.WriteLoop()
	go client.ReadLoop(h)

	return nil
}
