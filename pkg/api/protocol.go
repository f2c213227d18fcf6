package api

// --- СЕРВЕР -> ЗРИТЕЛЬ ---

// Snapshot это корневой объект, который сервер отправляет зрителям.
// Он представляет собой "снимок" мира глазами игрока: карта в пределах
// открытого, сущности в пределах текущей видимости.
// Отправляется после каждого шага планировщика, менявшего мир.
type Snapshot struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Turn число завершенных ходов монстров.
	Turn int `json:"turn"`

	// State текущая фаза планировщика (AWAITING_INPUT, MONSTER_TURN, ...).
	State string `json:"state"`

	// Seed сид уровня, чтобы зритель мог воспроизвести генерацию.
	Seed int64 `json:"seed"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых игроку сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs последние сообщения журнала, новые в конце.
	Logs []string `json:"logs,omitempty"`

	// GameOver true, если игрок погиб.
	GameOver bool `json:"gameOver,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	// Если false - тайл только исследован и рендерится тускло.
	IsVisible bool `json:"isVisible"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, MONSTER, ITEM
	Name string `json:"name"`

	Pos PositionPayload `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
		Order  int    `json:"order"`
	} `json:"render"`

	// Stats характеристики сущности, если они есть.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для боевых характеристик.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Defense int  `json:"defense"`
	Power   int  `json:"power"`
	IsDead  bool `json:"isDead"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (e.g. MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload используется для точек на карте (позиции, цели).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
