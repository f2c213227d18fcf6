package network

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/dungeon"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterAndBroadcast(t *testing.T) {
	b := NewBroadcaster()

	ch := b.Register("alice")
	assert.Equal(t, 1, b.SubscriberCount())

	b.Broadcast(api.Snapshot{Type: "UPDATE", Turn: 1})

	select {
	case msg := <-ch:
		assert.Equal(t, 1, msg.Turn)
	default:
		t.Fatal("expected a snapshot in the channel")
	}
}

func TestBroadcaster_LateSubscriberGetsLastSnapshot(t *testing.T) {
	b := NewBroadcaster()
	_, ok := b.Last()
	assert.False(t, ok)

	b.Broadcast(api.Snapshot{Turn: 7})
	ch := b.Register("late")

	require.Len(t, ch, 1)
	assert.Equal(t, 7, (<-ch).Turn)
}

func TestBroadcaster_UnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("bob")

	b.Unregister("bob")
	b.Unregister("bob")

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, b.SubscriberCount())
}

func TestBroadcaster_ReRegisterReplacesChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("carol")
	fresh := b.Register("carol")

	_, open := <-old
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.Broadcast(api.Snapshot{Turn: 2})
	assert.Len(t, fresh, 1)
}

func TestBroadcaster_SlowSubscriberNeverBlocks(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < SubscriberBuffer+10; i++ {
		b.Broadcast(api.Snapshot{Turn: i})
	}

	assert.Len(t, ch, SubscriberBuffer)
	assert.Equal(t, uint64(10), b.Dropped())

	last, ok := b.Last()
	require.True(t, ok)
	assert.Equal(t, SubscriberBuffer+9, last.Turn)
}

func TestBroadcaster_PublishesSchedulerTurns(t *testing.T) {
	m := domain.NewMap(12, 8)
	for y := 1; y < 7; y++ {
		for x := 1; x < 11; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
	m.PopulateBlocked()
	w := domain.NewWorld(m)
	dungeon.CreatePlayer(w, domain.Position{X: 3, Y: 3})

	b := NewBroadcaster()
	ch := b.Register("watcher")

	s := engine.NewScheduler(w, nil, nil)
	s.Seed = 5
	s.Subscribe(b)
	s.Tick()

	require.Len(t, ch, 1)
	snap := <-ch
	assert.Equal(t, "PRE_RUN", snap.State)
	assert.Equal(t, int64(5), snap.Seed)
	assert.NotEmpty(t, snap.Map)
	require.Len(t, snap.Entities, 1)
	assert.Equal(t, "PLAYER", snap.Entities[0].Type)
}
