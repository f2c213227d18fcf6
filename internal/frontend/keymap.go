package frontend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/p5d/RustyRougelike/internal/domain"
)

// Смещения для vi-клавиш и цифровой клавиатуры.
var runeMoves = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},

	'4': {-1, 0}, '6': {1, 0}, '8': {0, -1}, '2': {0, 1},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

var keyMoves = map[tcell.Key][2]int{
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

// translateKey переводит нажатие в команду. false - клавиша ничего не значит.
func translateKey(ev *tcell.EventKey) (domain.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.Command{Action: domain.ActionQuit}, true
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}

	if d, ok := keyMoves[ev.Key()]; ok {
		return domain.Move(d[0], d[1]), true
	}
	return domain.Command{}, false
}

func translateRune(r rune) (domain.Command, bool) {
	if d, ok := runeMoves[r]; ok {
		return domain.Move(d[0], d[1]), true
	}

	switch r {
	case '.', '5', ' ':
		return domain.Command{Action: domain.ActionWait}, true
	case 'g', ',':
		return domain.Command{Action: domain.ActionPickup}, true
	case 'i':
		return domain.Command{Action: domain.ActionOpenInventory}, true
	case 'd':
		return domain.Command{Action: domain.ActionOpenDrop}, true
	case 'q', 'Q':
		return domain.Command{Action: domain.ActionQuit}, true
	}
	return domain.Command{}, false
}

// menuIndex переводит букву меню в индекс: 'a' -> 0.
func menuIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}
