package messaging

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects published by the core.
const (
	SubjectUserRegistered = "user.registered"
	SubjectDoubtResponded = "doubt.responded"
)

// Publisher emits domain events over NATS. Without a configured connection
// it degrades to a no-op so the core keeps working when the broker is down.
type Publisher struct {
	mu sync.Mutex
	nc *nats.Conn
}

// Connect establishes the NATS connection. An empty URL leaves the
// publisher disabled.
func Connect(url string) *Publisher {
	p := &Publisher{}
	if url == "" {
		log.Println("NATS not configured; event publishing disabled.")
		return p
	}

	nc, err := nats.Connect(url, nats.Timeout(5*time.Second), nats.RetryOnFailedConnect(true))
	if err != nil {
		log.Println("Failed to connect to NATS:", err)
		return p
	}

	log.Println("Connected to NATS.")
	p.nc = nc
	return p
}

// Publish sends the event payload as JSON. Failures are logged, not
// propagated: events are advisory, never part of an operation's outcome.
func (p *Publisher) Publish(subject string, event any) {
	p.mu.Lock()
	nc := p.nc
	p.mu.Unlock()

	if nc == nil || !nc.IsConnected() {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode event for %s: %v", subject, err)
		return
	}

	if err := nc.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
	}
}

// Close closes the NATS connection gracefully.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		log.Println("NATS connection closed.")
	}
}

// UserRegisteredEvent announces a first successful login.
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// DoubtRespondedEvent announces that a doubt received its response.
type DoubtRespondedEvent struct {
	DoubtID        string `json:"doubt_id"`
	AskerEmail     string `json:"asker_email"`
	ResponderEmail string `json:"responder_email"`
}
