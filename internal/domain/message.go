package domain

import "fmt"

// DefaultLogCapacity - сколько последних сообщений хранит журнал.
const DefaultLogCapacity = 64

// GameLog - кольцевой журнал игровых сообщений для HUD и зрителей.
type GameLog struct {
	entries  []string
	capacity int
	total    int
}

// NewGameLog создает журнал заданной емкости (минимум 1).
func NewGameLog(capacity int) *GameLog {
	if capacity < 1 {
		capacity = 1
	}
	return &GameLog{entries: make([]string, 0, capacity), capacity: capacity}
}

// Add добавляет сообщение, вытесняя самое старое при переполнении.
func (l *GameLog) Add(msg string) {
	l.total++
	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, msg)
		return
	}
	copy(l.entries, l.entries[1:])
	l.entries[len(l.entries)-1] = msg
}

// Addf - Add с форматированием.
func (l *GameLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Last возвращает до n последних сообщений, новые в конце.
func (l *GameLog) Last(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]string, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Total - сколько сообщений было записано за всё время.
func (l *GameLog) Total() int {
	return l.total
}
