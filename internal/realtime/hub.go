// Package realtime pushes match snapshots to websocket viewers.
package realtime

import (
	"encoding/json"
	"log"
	"time"
)

const (
	broadcastBuffer = 256
	// AllMatches is the filter of a client that did not ask for a single match.
	AllMatches = ""
)

// Keyed payloads are only delivered to clients watching that key.
type Keyed interface {
	SubscriptionKey() string
}

// Envelope is the frame every client receives.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	key   string
	frame []byte
}

// Hub owns the set of connected clients. All client bookkeeping happens on
// the Run goroutine.
type Hub struct {
	clients      map[*Client]bool
	register     chan *Client
	unregister   chan *Client
	broadcast    chan outbound
	countReq     chan chan int
	shutdown     chan struct{}
	done         chan struct{}
	sendBuffer   int
	writeTimeout time.Duration
}

// NewHub creates a hub and starts its loop. sendBuffer is the number of
// frames a client may fall behind before it is dropped.
func NewHub(sendBuffer int, writeTimeout time.Duration) *Hub {
	if sendBuffer < 1 {
		sendBuffer = 1
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	h := &Hub{
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		broadcast:    make(chan outbound, broadcastBuffer),
		countReq:     make(chan chan int),
		shutdown:     make(chan struct{}),
		done:         make(chan struct{}),
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
	}
	go h.run()
	return h
}

// Publish encodes payload once and queues it for delivery. It never waits on
// a client; when the hub itself is backed up the frame is dropped.
func (h *Hub) Publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: cannot encode %s payload: %v", topic, err)
		return
	}
	frame, err := json.Marshal(Envelope{Event: topic, Data: data})
	if err != nil {
		log.Printf("realtime: cannot encode %s frame: %v", topic, err)
		return
	}
	msg := outbound{frame: frame}
	if k, ok := payload.(Keyed); ok {
		msg.key = k.SubscriptionKey()
	}

	select {
	case h.broadcast <- msg:
	case <-h.done:
	default:
		log.Printf("realtime: broadcast queue full, dropped %s for %q", topic, msg.key)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	reply := make(chan int)
	select {
	case h.countReq <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Shutdown disconnects every client and stops the loop.
func (h *Hub) Shutdown() {
	select {
	case <-h.done:
		return
	case h.shutdown <- struct{}{}:
	}
	<-h.done
}

func (h *Hub) run() {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			log.Printf("realtime: client %s connected (match %q), %d online", c.ID, c.matchID, len(h.clients))
		case c := <-h.unregister:
			h.drop(c)
		case reply := <-h.countReq:
			reply <- len(h.clients)
		case msg := <-h.broadcast:
			for c := range h.clients {
				if c.matchID != AllMatches && c.matchID != msg.key {
					continue
				}
				select {
				case c.send <- msg.frame:
				default:
					log.Printf("realtime: client %s too slow, disconnecting", c.ID)
					h.drop(c)
				}
			}
		case <-h.shutdown:
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

// drop closes the client's send queue; its write pump then closes the socket.
func (h *Hub) drop(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	log.Printf("realtime: client %s disconnected, %d online", c.ID, len(h.clients))
}
