package network

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// SubscriberBuffer - сколько снимков может скопиться у медленного зрителя.
const SubscriberBuffer = 64

// Broadcaster занимается только рассылкой снимков подписчикам.
// Симуляция публикует, зрители читают из личных каналов на своих горутинах.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID зрителя -> Личный канал
	subscribers map[string]chan api.Snapshot

	last    api.Snapshot
	hasLast bool
	dropped uint64
}

var _ engine.Observer = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register создает личный канал зрителя. Если снимок уже есть, он сразу
// кладется в канал, чтобы новому зрителю было что нарисовать.
func (b *Broadcaster) Register(id string) <-chan api.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Snapshot, SubscriberBuffer)
	if b.hasLast {
		ch <- b.last
	}
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Broadcast отправляет снимок всем и запоминает его как последний.
// Полные каналы пропускаются: симуляция никогда не ждет зрителей.
func (b *Broadcaster) Broadcast(msg api.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = msg
	b.hasLast = true

	for id, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			b.dropped++
			logger.Log.WithFields(logrus.Fields{
				"component":  "broadcaster",
				"subscriber": id,
			}).Debug("Channel full, snapshot dropped")
		}
	}
}

// OnTurn публикует снимок после каждого прогона конвейера.
func (b *Broadcaster) OnTurn(s *engine.Scheduler, _ engine.TurnEvents) {
	b.Broadcast(s.Snapshot())
}

// Last возвращает последний опубликованный снимок.
func (b *Broadcaster) Last() (api.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько снимков не влезло в каналы зрителей.
func (b *Broadcaster) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}
