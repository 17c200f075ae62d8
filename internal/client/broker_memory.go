package client

import (
	"sync"
)

// inMemoryBroker fans announcements out to in-process subscribers only. It is
// the fallback when RabbitMQ is unreachable, and doubles as the broker in
// tests.
type inMemoryBroker struct {
	subscribers     map[string]chan MatchAnnouncement
	subscriberMutex sync.RWMutex
}

func NewInMemoryBroker() BrokerClient {
	return &inMemoryBroker{
		subscribers: make(map[string]chan MatchAnnouncement),
	}
}

func (b *inMemoryBroker) PublishMatch(announcement MatchAnnouncement) error {
	b.subscriberMutex.RLock()
	defer b.subscriberMutex.RUnlock()

	for _, subscriberChan := range b.subscribers {
		select {
		case subscriberChan <- announcement:
		default:
		}
	}

	return nil
}

func (b *inMemoryBroker) SubscribeToMatches(id string) (<-chan MatchAnnouncement, error) {
	b.subscriberMutex.Lock()
	defer b.subscriberMutex.Unlock()

	if subscriberChan, exists := b.subscribers[id]; exists {
		return subscriberChan, nil
	}

	subscriberChan := make(chan MatchAnnouncement, 100)
	b.subscribers[id] = subscriberChan

	return subscriberChan, nil
}

func (b *inMemoryBroker) UnsubscribeFromMatches(id string) error {
	b.subscriberMutex.Lock()
	defer b.subscriberMutex.Unlock()

	if subscriberChan, exists := b.subscribers[id]; exists {
		delete(b.subscribers, id)
		close(subscriberChan)
	}

	return nil
}

func (b *inMemoryBroker) Close() error {
	return nil
}
