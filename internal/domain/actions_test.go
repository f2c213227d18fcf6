package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{" Wait ", ActionWait},
		{"pickup", ActionPickup},
		{"INVENTORY", ActionOpenInventory},
		{"drop", ActionOpenDrop},
		{"QUIT", ActionQuit},
		{"ATTACK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionOpenDrop, "DROP"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestCommand_String(t *testing.T) {
	if got := Move(-1, 1).String(); got != "MOVE(-1,1)" {
		t.Errorf("Move(-1,1).String() = %q", got)
	}
	if got := (Command{Action: ActionWait}).String(); got != "WAIT" {
		t.Errorf("wait command String() = %q", got)
	}
}
