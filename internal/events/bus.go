// Package events implements the in-process notification bus that keeps the
// back-office views in sync: mutating operations publish typed events,
// dependent views subscribe and reload.
package events

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Kind identifies the event type.
type Kind string

const (
	ContractsChanged   Kind = "contracts_changed"
	ContractDeleted    Kind = "contract_deleted"
	BudgetChanged      Kind = "budget_changed"
	OrdersChanged      Kind = "orders_changed"
	OpenContractEditor Kind = "open_contract_editor"
	Toast              Kind = "toast"
)

// kinds lists every declared event kind.
var kinds = []Kind{
	ContractsChanged,
	ContractDeleted,
	BudgetChanged,
	OrdersChanged,
	OpenContractEditor,
	Toast,
}

// Valid reports whether the kind is one of the declared event kinds.
func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// Event is a single notification. ID and Message are set depending on the
// kind: deletions and editor requests carry the resource ID, toasts carry
// the message.
type Event struct {
	Kind    Kind      `json:"kind" example:"contract_deleted"`
	ID      uuid.UUID `json:"id,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Bus is a typed publish/subscribe channel. Publishing never blocks: a
// subscriber that does not drain its channel misses events instead of
// stalling the publisher.
type Bus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// Default is the bus used by the application. Tests create their own.
var Default = NewBus()

func NewBus() *Bus {
	return &Bus{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called to unsubscribe; afterwards the channel is closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}

	return ch, cancel
}

// Publish delivers the event to all current subscribers.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, drop the event for it
		}
	}
}
