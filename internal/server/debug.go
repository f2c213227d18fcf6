package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/p5d/RustyRougelike/internal/network"
	"github.com/p5d/RustyRougelike/pkg/api"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// DebugHandler предоставляет доступ к последнему снимку и состоянию рассылки
type DebugHandler struct {
	Hub *network.Broadcaster
}

func NewDebugHandler(hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/snapshot", h.handleSnapshot)
	mux.HandleFunc("/debug/map", h.handleMap)
	mux.HandleFunc("/debug/hub", h.handleHub)
}

// /debug/snapshot - последний опубликованный снимок целиком
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Hub.Last()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}

// /debug/map - открытая часть карты последнего снимка в виде ASCII
func (h *DebugHandler) handleMap(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Hub.Last()
	if !ok || snap.Grid == nil {
		http.Error(w, "No snapshot published yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(RenderASCII(snap))); err != nil {
		logger.Log.WithError(err).Debug("debug map write failed")
	}
}

// /debug/hub - статистика рассылки
func (h *DebugHandler) handleHub(w http.ResponseWriter, r *http.Request) {
	type HubSummary struct {
		Subscribers int    `json:"subscribers"`
		Dropped     uint64 `json:"dropped"`
		HasSnapshot bool   `json:"has_snapshot"`
	}
	_, ok := h.Hub.Last()
	writeJSON(w, HubSummary{
		Subscribers: h.Hub.SubscriberCount(),
		Dropped:     h.Hub.Dropped(),
		HasSnapshot: ok,
	})
}

// RenderASCII рисует снимок строками: неоткрытые клетки - пробел,
// сущности поверх тайлов в порядке отрисовки.
func RenderASCII(snap api.Snapshot) string {
	if snap.Grid == nil {
		return ""
	}
	rows := make([][]rune, snap.Grid.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(" ", snap.Grid.Width))
	}
	put := func(x, y int, s string) {
		if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) || s == "" {
			return
		}
		rows[y][x] = []rune(s)[0]
	}

	for _, t := range snap.Map {
		put(t.X, t.Y, t.Symbol)
	}
	// Entities уже отсортированы: меньший порядок отрисовки - последним
	for _, e := range snap.Entities {
		put(e.Pos.X, e.Pos.Y, e.Render.Symbol)
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug json write failed")
	}
}
