package domain

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

// Item помечает предмет, который можно подобрать.
type Item struct {
	Category enums.ItemCategory
}

// Consumable - предмет исчезает после применения.
type Consumable struct{}

// ProvidesHealing - предмет лечит применившего.
type ProvidesHealing struct {
	HealAmount int
}

// InflictsDamage - предмет наносит урон целям.
type InflictsDamage struct {
	Damage int
}

// Ranged - предмет требует выбора клетки-цели в пределах Range.
type Ranged struct {
	Range int
}

// AreaOfEffect - эффект распространяется на видимые клетки в радиусе от цели.
type AreaOfEffect struct {
	Radius int
}

// Confusion - предмет (или статус на монстре): пропуск ходов AI.
type Confusion struct {
	Turns int
}

// InBackpack - предмет лежит в рюкзаке владельца и не имеет Position.
type InBackpack struct {
	Owner types.EntityID
}
