package domain

// Rect - прямоугольник комнаты, заданный двумя углами включительно.
// Неизменяем после создания.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect строит прямоугольник по левому верхнему углу и размерам.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect сообщает, перекрываются ли границы по обеим осям (включительно).
// Соприкосновение стенами тоже считается пересечением.
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center возвращает центральную клетку.
func (r Rect) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains проверяет, лежит ли клетка во внутренней (вырезанной) части комнаты.
func (r Rect) Contains(p Position) bool {
	return p.X > r.X1 && p.X <= r.X2 && p.Y > r.Y1 && p.Y <= r.Y2
}
