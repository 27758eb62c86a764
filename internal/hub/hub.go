// Package hub broadcasts change events to anything watching the app state.
// Every store mutation and every navigation move publishes a small event on a
// topic ("round", "social", "navigation", ...). Subscribers register for one
// topic, or for TopicAll, and receive the raw event bytes on their Send channel.
// This is what lets dependent views refresh the moment state changes, without
// polling the API.
package hub

import "sync" // sync provides the RWMutex that guards the clients map and the Once behind Stop

// TopicAll subscribes a client to every topic.
const TopicAll = "*"

// Client is a single subscriber, typically one open /changes stream.
type Client struct {
	Topic string      // Which topic this client follows; TopicAll for everything
	Send  chan []byte // Buffered; the Hub writes events here and closes it when the client is dropped
}

// NewClient creates a client for topic with a Send buffer of size buf.
// A bigger buffer lets a subscriber fall further behind before the Hub drops it.
func NewClient(topic string, buf int) *Client {
	return &Client{Topic: topic, Send: make(chan []byte, buf)}
}

// Message is one event bound for the subscribers of a topic.
type Message struct {
	Topic string // The topic the event was published on
	Data  []byte // The raw bytes to send (a JSON-encoded change event)
}

// Hub tracks subscribers grouped by topic.
// It runs in its own goroutine and processes registration, unregistration and
// broadcast events through channels, so the map is only written from one place.
type Hub struct {
	// clients is topic -> set of clients. map[*Client]bool is the usual Go set.
	clients map[string]map[*Client]bool

	broadcast  chan *Message // Events waiting to be fanned out
	register   chan *Client  // New subscribers
	unregister chan *Client  // Subscribers that went away

	// quit is closed by Stop. Every sender selects on it too, so nobody blocks
	// on a channel the Run loop has stopped reading.
	quit     chan struct{}
	stopOnce sync.Once

	// mu guards clients between the Run loop (writer) and Subscribers (reader).
	mu sync.RWMutex
}

// New creates a Hub. The broadcast channel is buffered so publishers don't
// block while the loop is busy; register and unregister are unbuffered because
// callers expect them to have taken effect when the call returns.
func New() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
	}
}

// Run is the Hub's event loop. Start it with "go h.Run()"; it returns after Stop.
// select waits until one of the channels is ready and handles one event at a time.
func (h *Hub) Run() {
	for {
		select {

		// A new subscriber: add it under its topic, creating the set on first use
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Topic] == nil {
				h.clients[client.Topic] = make(map[*Client]bool)
			}
			h.clients[client.Topic][client] = true
			h.mu.Unlock()

		// A subscriber went away: forget it and close its Send channel
		case client := <-h.unregister:
			h.remove(client)

		// An event: copy it to every matching subscriber
		case msg := <-h.broadcast:
			h.deliver(msg)

		// Stop was called: close every Send channel so readers finish, then exit
		case <-h.quit:
			h.closeAll()
			return
		}
	}
}

// remove drops client and closes its Send channel. Removing a client twice is harmless.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.Topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send) // Tells the reader goroutine to stop
	if len(clients) == 0 {
		delete(h.clients, client.Topic) // No subscribers left; don't keep an empty set around
	}
}

// closeAll closes every subscriber's Send channel and empties the map.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, clients := range h.clients {
		for client := range clients {
			close(client.Send)
		}
		delete(h.clients, topic)
	}
}

// deliver fans msg out to the topic's subscribers and to TopicAll subscribers.
func (h *Hub) deliver(msg *Message) {
	// Collect targets under the read lock, then send without holding it.
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[msg.Topic])+len(h.clients[TopicAll]))
	for c := range h.clients[msg.Topic] {
		targets = append(targets, c)
	}
	if msg.Topic != TopicAll {
		for c := range h.clients[TopicAll] {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- msg.Data:
		default:
			// Slow subscriber: drop it rather than stall everyone else.
			// Called from the Run goroutine, so remove directly instead of
			// sending on the unbuffered unregister channel.
			h.remove(client)
		}
	}
}

// Broadcast queues data for every subscriber of topic.
// Once the Hub has stopped the event is discarded.
func (h *Hub) Broadcast(topic string, data []byte) {
	select {
	case h.broadcast <- &Message{Topic: topic, Data: data}:
	case <-h.quit:
	}
}

// Register adds a client. It blocks until the Run loop has accepted it.
// Registering with a stopped Hub closes the client's Send channel straight
// away, so a reader waiting on it finishes instead of hanging.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.quit:
		close(client.Send)
	}
}

// Unregister removes a client and closes its Send channel.
// After Stop it returns immediately; Stop has already closed the channel.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.quit:
	}
}

// Subscribers reports how many clients follow topic (not counting TopicAll).
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// Stop ends the Run loop. Calling it more than once is harmless.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}
