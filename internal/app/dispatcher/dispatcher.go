package dispatcher

import (
	"sync"

	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/models"
)

// Dispatcher fans events out to subscribers. Subscription happens at startup
// from the caller's thread; publishing happens from any worker goroutine, so
// the subscriber list is read under an RWMutex. Delivery is synchronous: the
// publisher blocks until every subscriber has been called once.
type Dispatcher struct {
	mu          sync.RWMutex
	subscribers []app.Subscriber
}

func CreateDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(subscriber app.Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, subscriber)
}

func (d *Dispatcher) Publish(event models.Event) {
	d.mu.RLock()
	subscribers := d.subscribers
	d.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.Receive(event)
	}
}

func (d *Dispatcher) PublishLoginStatus(source, catalog bool) {
	d.Publish(models.LoginStatusEvent{Source: source, Catalog: catalog})
}
