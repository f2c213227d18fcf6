package domain

// Параметры восприятия
const (
	DefaultViewRange = 8
	MeleeRange       = 1.5
)

// Параметры игрока при создании
const (
	PlayerMaxHP   = 30
	PlayerDefense = 5
	PlayerPower   = 5
)

// Порядок отрисовки: меньше - выше
const (
	RenderOrderPlayer  = 0
	RenderOrderMonster = 1
	RenderOrderItem    = 2
)

// MaxBackpackSize - максимум предметов в рюкзаке (буквы a..z в меню).
const MaxBackpackSize = 26
