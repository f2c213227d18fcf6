package dungeon

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
)

// CreatePlayer создает героя и регистрирует его как ресурс мира.
// Игрок не блокирует клетку: он - цель поиска пути монстров.
func CreatePlayer(w *domain.World, pos domain.Position) types.EntityID {
	p := w.Spawn(enums.EntityKindPlayer)

	w.Positions.Set(p, pos)
	w.Renderables.Set(p, domain.Renderable{
		Glyph:       types.MakeGlyph(types.ColorYellow, types.ColorBlack, '@'),
		RenderOrder: domain.RenderOrderPlayer,
	})
	w.Players.Set(p, domain.Player{})
	w.Viewsheds.Set(p, domain.NewViewshed(domain.DefaultViewRange))
	w.Names.Set(p, domain.Name{Name: "Player"})
	w.Stats.Set(p, domain.NewCombatStats(domain.PlayerMaxHP, domain.PlayerDefense, domain.PlayerPower))

	w.Player = p
	w.PlayerPos = pos
	return p
}

// SpawnMonster создает монстра из шаблона на заданной позиции.
func (t MonsterTemplate) SpawnMonster(w *domain.World, pos domain.Position) types.EntityID {
	m := w.Spawn(enums.EntityKindMonster)

	w.Positions.Set(m, pos)
	w.Renderables.Set(m, domain.Renderable{
		Glyph:       types.MakeGlyph(t.Color, types.ColorBlack, t.Symbol),
		RenderOrder: domain.RenderOrderMonster,
	})
	w.Viewsheds.Set(m, domain.NewViewshed(t.Sight))
	w.Monsters.Set(m, domain.Monster{})
	w.Names.Set(m, domain.Name{Name: fmt.Sprintf("%s #%d", t.Name, m.Index())})
	w.Blockers.Set(m, domain.BlocksTile{})
	w.Stats.Set(m, domain.NewCombatStats(t.MaxHP, t.Defense, t.Power))
	return m
}

// SpawnItem создает предмет на полу.
func (t ItemTemplate) SpawnItem(w *domain.World, pos domain.Position) types.EntityID {
	it := t.newItem(w)
	w.Positions.Set(it, pos)
	return it
}

// SpawnInBackpack создает предмет сразу в рюкзаке владельца.
func (t ItemTemplate) SpawnInBackpack(w *domain.World, owner types.EntityID) types.EntityID {
	it := t.newItem(w)
	w.Backpack.Set(it, domain.InBackpack{Owner: owner})
	return it
}

func (t ItemTemplate) newItem(w *domain.World) types.EntityID {
	it := w.Spawn(enums.EntityKindItem)

	w.Renderables.Set(it, domain.Renderable{
		Glyph:       types.MakeGlyph(t.Color, types.ColorBlack, t.Symbol),
		RenderOrder: domain.RenderOrderItem,
	})
	w.Names.Set(it, domain.Name{Name: t.Name})
	w.Items.Set(it, domain.Item{Category: t.Category})
	w.Consumables.Set(it, domain.Consumable{})

	if t.Heal > 0 {
		w.Healing.Set(it, domain.ProvidesHealing{HealAmount: t.Heal})
	}
	if t.Damage > 0 {
		w.Damaging.Set(it, domain.InflictsDamage{Damage: t.Damage})
	}
	if t.Range > 0 {
		w.Ranged.Set(it, domain.Ranged{Range: t.Range})
	}
	if t.Radius > 0 {
		w.AreaEffects.Set(it, domain.AreaOfEffect{Radius: t.Radius})
	}
	if t.ConfuseFor > 0 {
		w.Confusion.Set(it, &domain.Confusion{Turns: t.ConfuseFor})
	}
	return it
}
