package enums

// RunState - фаза планировщика ходов.
//
// Только PreRun, PlayerTurn и MonsterTurn гоняют конвейер систем.
// AwaitingInput и модальные состояния (Show*) передают управление
// внешним коллабораторам ввода и меню.
type RunState uint8

const (
	RunStatePreRun RunState = iota
	RunStateAwaitingInput
	RunStatePlayerTurn
	RunStateMonsterTurn
	RunStateShowInventory
	RunStateShowDropItem
	RunStateShowTargeting
)

var runStateToString = map[RunState]string{
	RunStatePreRun:        "PRE_RUN",
	RunStateAwaitingInput: "AWAITING_INPUT",
	RunStatePlayerTurn:    "PLAYER_TURN",
	RunStateMonsterTurn:   "MONSTER_TURN",
	RunStateShowInventory: "SHOW_INVENTORY",
	RunStateShowDropItem:  "SHOW_DROP_ITEM",
	RunStateShowTargeting: "SHOW_TARGETING",
}

func (s RunState) String() string {
	if val, ok := runStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// RunsSystems сообщает, выполняется ли в этом состоянии полный конвейер систем.
func (s RunState) RunsSystems() bool {
	return s == RunStatePreRun || s == RunStatePlayerTurn || s == RunStateMonsterTurn
}

// IsModal сообщает, что состояние обслуживается меню, а не симуляцией.
func (s RunState) IsModal() bool {
	return s == RunStateShowInventory || s == RunStateShowDropItem || s == RunStateShowTargeting
}
