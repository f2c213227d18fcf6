package dungeon

import (
	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
)

// MonsterTemplate определяет шаблон для создания монстра
type MonsterTemplate struct {
	Name    string
	Symbol  rune
	Color   uint32
	MaxHP   int
	Defense int
	Power   int
	Sight   int
}

// ItemTemplate определяет шаблон для создания предмета.
// Нулевые поля эффектов означают, что компонент не навешивается.
type ItemTemplate struct {
	Name     string
	Symbol   rune
	Color    uint32
	Category enums.ItemCategory

	Heal       int
	Damage     int
	Range      int
	Radius     int
	ConfuseFor int
}

// --- МОНСТРЫ ---

func monster(name string, symbol rune) MonsterTemplate {
	return MonsterTemplate{
		Name:    name,
		Symbol:  symbol,
		Color:   types.ColorRed,
		MaxHP:   16,
		Defense: 1,
		Power:   4,
		Sight:   domain.DefaultViewRange,
	}
}

var (
	Orc         = monster("Orc", 'o')
	Goblin      = monster("Goblin", 'g')
	Hobgoblin   = monster("Hobgoblin", 'h')
	RustMonster = monster("Rust Monster", 'r')
	Ferris      = monster("Ferris The Rustacean", 'F')
)

// MonsterTable - выбор по броску 1d5, индекс = бросок-1.
var MonsterTable = []MonsterTemplate{Orc, Goblin, Hobgoblin, RustMonster, Ferris}

// --- ПРЕДМЕТЫ ---

var HealthPotion = ItemTemplate{
	Name:     "Health Potion",
	Symbol:   '¡',
	Color:    types.ColorMagenta,
	Category: enums.ItemCategoryPotion,
	Heal:     8,
}

var MagicMissileScroll = ItemTemplate{
	Name:     "Magic Missile Scroll",
	Symbol:   ')',
	Color:    types.ColorCyan,
	Category: enums.ItemCategoryScroll,
	Damage:   8,
	Range:    6,
}

var FireballScroll = ItemTemplate{
	Name:     "Fireball Scroll",
	Symbol:   ')',
	Color:    types.ColorOrange,
	Category: enums.ItemCategoryScroll,
	Damage:   20,
	Range:    6,
	Radius:   3,
}

var ConfusionScroll = ItemTemplate{
	Name:       "Confusion Scroll",
	Symbol:     ')',
	Color:      types.ColorPink,
	Category:   enums.ItemCategoryScroll,
	Range:      6,
	ConfuseFor: 4,
}

// ItemTable - выбор по броску 1d4, индекс = бросок-1.
var ItemTable = []ItemTemplate{HealthPotion, FireballScroll, ConfusionScroll, MagicMissileScroll}

// ItemTemplates - шаблоны по ключу для скриптов и отладки
var ItemTemplates = map[string]ItemTemplate{
	"health_potion": HealthPotion,
	"magic_missile": MagicMissileScroll,
	"fireball":      FireballScroll,
	"confusion":     ConfusionScroll,
}
