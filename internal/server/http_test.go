package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p5d/RustyRougelike/internal/network"
	"github.com/p5d/RustyRougelike/internal/version"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func sampleSnapshot(turn int) api.Snapshot {
	snap := api.Snapshot{
		Type:  "UPDATE",
		Turn:  turn,
		State: "AWAITING_INPUT",
		Grid:  &api.GridMeta{Width: 4, Height: 3},
		Map: []api.TileView{
			{X: 0, Y: 1, Symbol: "#", IsWall: true},
			{X: 1, Y: 1, Symbol: "."},
			{X: 2, Y: 1, Symbol: "."},
		},
	}
	player := api.EntityView{ID: "1", Type: "PLAYER", Name: "Player"}
	player.Pos = api.PositionPayload{X: 2, Y: 1}
	player.Render.Symbol = "@"
	snap.Entities = []api.EntityView{player}
	return snap
}

func TestServer_Health(t *testing.T) {
	ts := httptest.NewServer(New(network.NewBroadcaster(), "").Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Version(t *testing.T) {
	ts := httptest.NewServer(New(network.NewBroadcaster(), "").Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	var info version.VersionInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, version.Info(), info)
}

func TestDebug_SnapshotAndMap(t *testing.T) {
	hub := network.NewBroadcaster()
	ts := httptest.NewServer(New(hub, "").Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/snapshot")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	hub.Broadcast(sampleSnapshot(3))

	resp, err = http.Get(ts.URL + "/debug/snapshot")
	require.NoError(t, err)
	var snap api.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	resp.Body.Close()
	assert.Equal(t, 3, snap.Turn)

	resp, err = http.Get(ts.URL + "/debug/map")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "\n#.@\n\n", string(body))
}

func TestRenderASCII_NoGrid(t *testing.T) {
	assert.Empty(t, RenderASCII(api.Snapshot{}))
}

func TestServer_WebSocketFeed(t *testing.T) {
	hub := network.NewBroadcaster()
	hub.Broadcast(sampleSnapshot(1))

	ts := httptest.NewServer(New(hub, "").Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	// Сначала приходит последний известный снимок
	var first api.Snapshot
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, 1, first.Turn)

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)
	hub.Broadcast(sampleSnapshot(2))

	var second api.Snapshot
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, 2, second.Turn)
	assert.Equal(t, "@", second.Entities[0].Render.Symbol)
}

func TestServer_WebSocketDisconnectUnregisters(t *testing.T) {
	hub := network.NewBroadcaster()
	ts := httptest.NewServer(New(hub, "").Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.SubscriberCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
