package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKind_RoundTrip(t *testing.T) {
	for _, k := range []EntityKind{EntityKindPlayer, EntityKindMonster, EntityKindItem} {
		assert.Equal(t, k, ParseEntityKind(k.String()))
	}
	assert.Equal(t, EntityKindUnknown, ParseEntityKind("dragon"))
	assert.Equal(t, "UNKNOWN", EntityKind(200).String())
	assert.Equal(t, EntityKindMonster, ParseEntityKind("monster"))
}

func TestItemCategory_Parse(t *testing.T) {
	assert.Equal(t, ItemCategoryScroll, ParseItemCategory("scroll"))
	assert.Equal(t, ItemCategoryUnknown, ParseItemCategory(""))
	assert.Equal(t, "POTION", ItemCategoryPotion.String())
}

func TestRunState_Classification(t *testing.T) {
	tests := []struct {
		state   RunState
		systems bool
		modal   bool
	}{
		{RunStatePreRun, true, false},
		{RunStateAwaitingInput, false, false},
		{RunStatePlayerTurn, true, false},
		{RunStateMonsterTurn, true, false},
		{RunStateShowInventory, false, true},
		{RunStateShowDropItem, false, true},
		{RunStateShowTargeting, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.systems, tt.state.RunsSystems())
			assert.Equal(t, tt.modal, tt.state.IsModal())
		})
	}
}
