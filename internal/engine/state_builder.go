package engine

import (
	"sort"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/api"
)

// SnapshotLogSize - сколько последних сообщений журнала попадает в снимок.
const SnapshotLogSize = 5

// Snapshot создает "снимок" мира глазами игрока.
// Карта - только открытые клетки, сущности - только те, что сейчас видны.
// Снимок не ссылается на состояние мира и безопасен для передачи между горутинами.
func (s *Scheduler) Snapshot() api.Snapshot {
	return BuildSnapshot(s.World, s.state.String(), s.turn, s.Seed, s.gameOver)
}

// BuildSnapshot собирает снимок без планировщика (для генератора уровней и тестов).
func BuildSnapshot(w *domain.World, state string, turn int, seed int64, gameOver bool) api.Snapshot {
	m := w.Map

	// 1. Карта
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if !m.Revealed[idx] {
				continue
			}
			tile := m.Tiles[idx]
			g := tile.Glyph()
			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Symbol:    string(g.Char()),
				Color:     g.HexColor(),
				IsWall:    tile == domain.TileWall,
				IsVisible: m.Visible[idx],
			})
		}
	}

	// 2. Сущности: игрок всегда, остальные - если клетка видна
	var viewEntities []api.EntityView
	for _, e := range domain.Query(w.Positions, w.Renderables) {
		pos, _ := w.Positions.Get(e)
		if e != w.Player && (!m.InBounds(pos.X, pos.Y) || !m.Visible[m.IndexOf(pos)]) {
			continue
		}
		viewEntities = append(viewEntities, toEntityView(w, e, pos))
	}
	sort.SliceStable(viewEntities, func(i, j int) bool {
		return viewEntities[i].Render.Order > viewEntities[j].Render.Order
	})

	return api.Snapshot{
		Type:     "UPDATE",
		Turn:     turn,
		State:    state,
		Seed:     seed,
		Grid:     &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:      mapDTO,
		Entities: viewEntities,
		Logs:     w.Log.Last(SnapshotLogSize),
		GameOver: gameOver,
	}
}

// toEntityView конвертирует сущность в DTO для отправки зрителю.
func toEntityView(w *domain.World, e types.EntityID, pos domain.Position) api.EntityView {
	view := api.EntityView{
		ID:   e.String(),
		Type: e.Kind().String(),
		Name: w.NameOf(e),
	}
	view.Pos.X = pos.X
	view.Pos.Y = pos.Y

	if r, ok := w.Renderables.Get(e); ok {
		view.Render.Symbol = string(r.Glyph.Char())
		view.Render.Color = r.Glyph.HexColor()
		view.Render.Order = r.RenderOrder
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#FFFFFF"
	}

	if st, ok := w.Stats.Get(e); ok {
		view.Stats = &api.StatsView{
			HP:      st.HP,
			MaxHP:   st.MaxHP,
			Defense: st.Defense,
			Power:   st.Power,
			IsDead:  st.IsDead(),
		}
	}
	return view
}
