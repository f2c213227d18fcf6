package domain

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
)

// --- Маркеры ---

// Player помечает сущность игрока. Только её Viewshed пишет в Map.Visible/Revealed.
type Player struct{}

// Monster помечает враждебного актора, которым управляет AI.
type Monster struct{}

// BlocksTile - сущность занимает клетку и попадает в Map.Blocked.
type BlocksTile struct{}

// --- Описательные компоненты ---

// Name - отображаемое имя.
type Name struct {
	Name string
}

// Renderable - как рисовать сущность. Меньший RenderOrder рисуется поверх.
type Renderable struct {
	Glyph       types.Glyph
	RenderOrder int
}

// --- Намерения ---
//
// Живут один шаг: создаются вводом игрока или AI, потребляются системами
// разрешения и очищаются планировщиком в конце конвейера.

// WantsToMelee - намерение атаковать цель в ближнем бою.
type WantsToMelee struct {
	Target types.EntityID
}

// SufferDamage копит урон, полученный за шаг, до системы урона.
type SufferDamage struct {
	Amounts []int
}

// WantsToPickupItem - поднять предмет с клетки.
type WantsToPickupItem struct {
	CollectedBy types.EntityID
	Item        types.EntityID
}

// WantsToUseItem - применить предмет. Target задан для дальнобойных предметов.
type WantsToUseItem struct {
	Item   types.EntityID
	Target *Position
}

// WantsToDropItem - выбросить предмет из рюкзака под ноги.
type WantsToDropItem struct {
	Item types.EntityID
}
