package enums

import "strings"

type ItemCategory uint8

const (
	ItemCategoryUnknown ItemCategory = iota // 0
	ItemCategoryPotion                      // 1
	ItemCategoryScroll                      // 2
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryPotion: "POTION",
	ItemCategoryScroll: "SCROLL",
}

var itemCategoryStringToType = map[string]ItemCategory{
	"POTION": ItemCategoryPotion,
	"SCROLL": ItemCategoryScroll,
}

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemCategory(s string) ItemCategory {
	upper := strings.ToUpper(s)
	if val, ok := itemCategoryStringToType[upper]; ok {
		return val
	}
	return ItemCategoryUnknown
}
