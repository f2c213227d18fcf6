package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionPickup
	ActionOpenInventory
	ActionOpenDrop
	ActionQuit
)

// Маппинг для конвертации строк (скрипты, сеть) -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":      ActionMove,
	"WAIT":      ActionWait,
	"PICKUP":    ActionPickup,
	"INVENTORY": ActionOpenInventory,
	"DROP":      ActionOpenDrop,
	"QUIT":      ActionQuit,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:          "MOVE",
	ActionWait:          "WAIT",
	ActionPickup:        "PICKUP",
	ActionOpenInventory: "INVENTORY",
	ActionOpenDrop:      "DROP",
	ActionQuit:          "QUIT",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
