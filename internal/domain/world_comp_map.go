package domain

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/core/types"
)

// TileType - тип местности клетки.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	if t == TileFloor {
		return "FLOOR"
	}
	return "WALL"
}

// Цвета тайлов на черном фоне.
const (
	FloorColor uint32 = 0xE30F5E
	WallColor  uint32 = 0xFFAA33
)

// Glyph - как рисуется клетка, когда она в поле зрения.
func (t TileType) Glyph() types.Glyph {
	if t == TileFloor {
		return types.MakeGlyph(FloorColor, types.ColorBlack, '.')
	}
	return types.MakeGlyph(WallColor, types.ColorBlack, '#')
}

// Стоимость шагов для поиска пути.
const (
	CostOrthogonal = 1.0
	CostDiagonal   = 1.45
)

// Exit - соседняя клетка, в которую можно шагнуть, и цена шага.
type Exit struct {
	Index int
	Cost  float64
}

// Map - плоская row-major сетка уровня.
//
// Все срезы имеют длину Width*Height, индекс (x,y) = y*Width + x.
// Blocked и TileContent - производные данные: пересобираются системой
// индексации на каждом шаге и не доверяются между шагами.
type Map struct {
	Width  int
	Height int

	Tiles       []TileType
	Rooms       []Rect
	Revealed    []bool
	Visible     []bool
	Blocked     []bool
	TileContent [][]types.EntityID
}

// NewMap создает карту, целиком залитую стенами.
func NewMap(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]types.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m
}

// InBounds проверяет, что координата лежит на сетке.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Index переводит координаты в индекс массива.
// Вызов вне сетки - ошибка программиста: паникует с ErrOutOfBounds.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// IndexOf - Index для Position.
func (m *Map) IndexOf(p Position) int {
	return m.Index(p.X, p.Y)
}

// PositionOf - обратное преобразование индекса в координаты.
func (m *Map) PositionOf(idx int) Position {
	return Position{X: idx % m.Width, Y: idx / m.Width}
}

// TileAt возвращает тип клетки; всё вне сетки считается стеной.
func (m *Map) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y*m.Width+x]
}

// SetTile меняет тип клетки, молча игнорируя координаты вне сетки.
func (m *Map) SetTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[y*m.Width+x] = t
	}
}

// IsOpaque - предикат непрозрачности для FOV. Вне сетки всё непрозрачно.
func (m *Map) IsOpaque(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// PopulateBlocked сбрасывает Blocked к состоянию "только стены".
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContentIndex очищает списки сущностей во всех клетках, сохраняя емкость.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible гасит маску текущей видимости целиком.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// IsExitValid: в клетку можно шагнуть, если она не на внешней кромке слева/сверху
// (1 <= x <= Width-1, 1 <= y <= Height-1), лежит на сетке и не заблокирована.
func (m *Map) IsExitValid(x, y int) bool {
	if x < 1 || x > m.Width-1 || y < 1 || y > m.Height-1 {
		return false
	}
	if !m.InBounds(x, y) {
		return false
	}
	return !m.Blocked[y*m.Width+x]
}

// neighbour описывает смещение до соседней клетки и цену шага.
type neighbour struct {
	dx, dy int
	cost   float64
}

// Восемь направлений. Каждое диагональное смещение задано отдельно.
var neighbours = [8]neighbour{
	{-1, 0, CostOrthogonal},
	{1, 0, CostOrthogonal},
	{0, -1, CostOrthogonal},
	{0, 1, CostOrthogonal},
	{-1, -1, CostDiagonal},
	{1, -1, CostDiagonal},
	{-1, 1, CostDiagonal},
	{1, 1, CostDiagonal},
}

// AvailableExits возвращает проходимых соседей клетки idx.
// Сама клетка idx не проверяется, поэтому собственный флаг Blocked
// движущейся сущности поиску не мешает.
func (m *Map) AvailableExits(idx int) []Exit {
	exits := make([]Exit, 0, len(neighbours))
	p := m.PositionOf(idx)
	for _, n := range neighbours {
		x, y := p.X+n.dx, p.Y+n.dy
		if m.IsExitValid(x, y) {
			exits = append(exits, Exit{Index: y*m.Width + x, Cost: n.cost})
		}
	}
	return exits
}

// PathingDistance - евклидово расстояние между клетками, эвристика A*.
func (m *Map) PathingDistance(idx1, idx2 int) float64 {
	return m.PositionOf(idx1).DistanceTo(m.PositionOf(idx2))
}
