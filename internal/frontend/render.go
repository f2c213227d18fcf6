package frontend

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
)

const (
	// noiseScale - масштаб шума для оттенков стен: чем меньше, тем крупнее пятна.
	noiseScale = 0.15
	// wallShadeMin - самая темная стена в долях от базового цвета.
	wallShadeMin = 0.6
)

var (
	hudStyle  = tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(types.ColorYellow)))
	hpStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(types.ColorRed)))
	textStyle = tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(types.ColorWhite)))
)

// palette - раскраска уровня. Шум пересоздается при смене сида,
// поэтому один и тот же уровень всегда выглядит одинаково.
type palette struct {
	seed  int64
	noise opensimplex.Noise
}

func (p *palette) reseed(seed int64) {
	if p.noise != nil && p.seed == seed {
		return
	}
	p.seed = seed
	p.noise = opensimplex.NewNormalized(seed)
}

// wall возвращает оттенок стены в клетке (x, y).
func (p *palette) wall(x, y int, base uint32) uint32 {
	n := p.noise.Eval2(float64(x)*noiseScale, float64(y)*noiseScale)
	return scaleColor(base, wallShadeMin+(1-wallShadeMin)*n)
}

func scaleColor(c uint32, k float64) uint32 {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	r := uint32(float64(c>>16&0xFF) * k)
	g := uint32(float64(c>>8&0xFF) * k)
	b := uint32(float64(c&0xFF) * k)
	return r<<16 | g<<8 | b
}

// greyscale - цвет клетки, которую игрок помнит, но не видит.
func greyscale(c uint32) uint32 {
	r, g, b := float64(c>>16&0xFF), float64(c>>8&0xFF), float64(c&0xFF)
	l := uint32(0.299*r + 0.587*g + 0.114*b)
	return l<<16 | l<<8 | l
}

func glyphStyle(g types.Glyph) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(g.Fg()))).
		Background(tcell.NewHexColor(int32(g.Bg())))
}

func (t *Terminal) setGlyph(x, y int, g types.Glyph) {
	t.screen.SetContent(x, y, g.Char(), nil, glyphStyle(g))
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// draw перерисовывает кадр целиком: карта, сущности, HUD.
func (t *Terminal) draw(s *engine.Scheduler) {
	t.colors.reseed(s.Seed)
	t.screen.Clear()
	t.drawMap(s.World.Map)
	t.drawEntities(s.World)
	t.drawHUD(s)
}

func (t *Terminal) drawMap(m *domain.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if !m.Revealed[idx] {
				continue
			}
			tile := m.Tiles[idx]
			g := tile.Glyph()
			fg := g.Fg()
			if tile == domain.TileWall {
				fg = t.colors.wall(x, y, fg)
			}
			if !m.Visible[idx] {
				fg = greyscale(fg)
			}
			t.setGlyph(x, y, g.WithFg(fg))
		}
	}
}

// drawEntities рисует видимые сущности. Меньший RenderOrder рисуется последним,
// то есть поверх.
func (t *Terminal) drawEntities(w *domain.World) {
	m := w.Map
	entities := domain.Query(w.Positions, w.Renderables)
	sort.SliceStable(entities, func(i, j int) bool {
		ri, _ := w.Renderables.Get(entities[i])
		rj, _ := w.Renderables.Get(entities[j])
		return ri.RenderOrder > rj.RenderOrder
	})

	for _, e := range entities {
		pos, _ := w.Positions.Get(e)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.IndexOf(pos)] {
			continue
		}
		r, _ := w.Renderables.Get(e)
		t.setGlyph(pos.X, pos.Y, r.Glyph)
	}
}

// drawHUD - строка здоровья и последние сообщения журнала под картой.
func (t *Terminal) drawHUD(s *engine.Scheduler) {
	w := s.World
	y := w.Map.Height

	if stats, ok := w.Stats.Get(w.Player); ok {
		label := fmt.Sprintf(" HP: %d / %d ", stats.HP, stats.MaxHP)
		t.drawText(0, y, label, hudStyle)
		t.drawBar(len(label), y, barWidth, stats.HP, stats.MaxHP)
	}
	t.drawText(turnColumn, y, fmt.Sprintf("Turn %d", s.Turn()), hudStyle)

	for i, msg := range w.Log.Last(engine.SnapshotLogSize) {
		t.drawText(1, y+1+i, msg, textStyle)
	}
}

const (
	barWidth   = 30
	turnColumn = 50
)

func (t *Terminal) drawBar(x, y, width, value, max int) {
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
	}
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		t.screen.SetContent(x+i, y, ch, nil, hpStyle)
	}
}
