package enums

import "strings"

// EntityKind - грубая классификация сущности, зашитая в EntityID.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindMonster
	EntityKindItem
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:  "PLAYER",
	EntityKindMonster: "MONSTER",
	EntityKindItem:    "ITEM",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER":  EntityKindPlayer,
	"MONSTER": EntityKindMonster,
	"ITEM":    EntityKindItem,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToKind[upper]; ok {
		return val
	}
	return EntityKindUnknown
}
