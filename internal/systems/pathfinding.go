package systems

import (
	"container/heap"

	"github.com/p5d/RustyRougelike/internal/domain"
)

// MaxSearchSteps ограничивает число раскрытых узлов одного поиска.
const MaxSearchSteps = 65536

// NavigationPath - результат поиска: индексы клеток от старта до цели включительно.
type NavigationPath struct {
	Steps   []int
	Success bool
}

// openNode обертка для элемента открытого множества
type openNode struct {
	idx   int
	f     float64 // g + эвристика
	g     float64
	index int // индекс в куче
}

// openSet реализует heap.Interface: MinHeap по f, при равенстве - по большему g
type openSet []*openNode

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f == pq[j].f {
		return pq[i].g > pq[j].g
	}
	return pq[i].f < pq[j].f
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x interface{}) {
	item := x.(*openNode)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// AStarSearch ищет кратчайший путь от start до end по карте.
//
// Проходимость и цены шагов берутся из Map.AvailableExits (1.0 по прямой,
// 1.45 по диагонали), эвристика - Map.PathingDistance (евклидова, допустима
// при такой цене диагонали). Собственная клетка start не проверяется, поэтому
// флаг Blocked движущейся сущности поиску не мешает.
// Отсутствие пути - нормальный результат: Success == false.
func AStarSearch(m *domain.Map, start, end int) NavigationPath {
	n := m.Width * m.Height
	if start < 0 || start >= n || end < 0 || end >= n {
		return NavigationPath{}
	}
	if start == end {
		return NavigationPath{Steps: []int{start}, Success: true}
	}

	gScore := map[int]float64{start: 0}
	parent := make(map[int]int)
	closed := make(map[int]bool)

	open := &openSet{}
	heap.Push(open, &openNode{idx: start, f: m.PathingDistance(start, end)})

	for steps := 0; open.Len() > 0 && steps < MaxSearchSteps; steps++ {
		cur := heap.Pop(open).(*openNode)
		if closed[cur.idx] {
			continue
		}
		if cur.idx == end {
			return NavigationPath{Steps: reconstruct(parent, start, end), Success: true}
		}
		closed[cur.idx] = true

		for _, exit := range m.AvailableExits(cur.idx) {
			if closed[exit.Index] {
				continue
			}
			g := cur.g + exit.Cost
			if best, seen := gScore[exit.Index]; seen && g >= best {
				continue
			}
			gScore[exit.Index] = g
			parent[exit.Index] = cur.idx
			heap.Push(open, &openNode{
				idx: exit.Index,
				g:   g,
				f:   g + m.PathingDistance(exit.Index, end),
			})
		}
	}

	return NavigationPath{}
}

func reconstruct(parent map[int]int, start, end int) []int {
	steps := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
