package api

import "sync"

type SubscriptionState int

const (
	SubscriptionUnconfirmed SubscriptionState = iota
	SubscriptionConfirmed
)

// SubscriptionRegistry tracks the Unconfirmed -> Confirmed handshake per
// topic reference. Confirming is idempotent.
type SubscriptionRegistry struct {
	lock  sync.Mutex
	state map[string]SubscriptionState
}

func NewSubscriptionRegistry() *SubscriptionRegistry {
	return &SubscriptionRegistry{
		state: map[string]SubscriptionState{},
	}
}

func (r *SubscriptionRegistry) MarkConfirmed(topicRef string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.state[topicRef] = SubscriptionConfirmed
}

func (r *SubscriptionRegistry) State(topicRef string) SubscriptionState {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.state[topicRef]
}
