package frontend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/p5d/RustyRougelike/internal/core/types"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/internal/systems"
)

var (
	menuStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(types.ColorWhite))).Background(tcell.NewHexColor(int32(types.ColorBlack)))
	titleStyle  = menuStyle.Foreground(tcell.NewHexColor(int32(types.ColorYellow)))
	targetStyle = tcell.StyleDefault.Background(tcell.NewHexColor(int32(types.ColorCyan)))
	cursorStyle = tcell.StyleDefault.Background(tcell.NewHexColor(int32(types.ColorMagenta)))
)

// ShowInventory показывает рюкзак игрока и ждет выбора предмета.
func (t *Terminal) ShowInventory(s *engine.Scheduler) (engine.MenuResult, types.EntityID) {
	return t.itemMenu(s, "Inventory")
}

// ShowDropItem - то же меню, но для выбрасывания.
func (t *Terminal) ShowDropItem(s *engine.Scheduler) (engine.MenuResult, types.EntityID) {
	return t.itemMenu(s, "Drop Which Item?")
}

func (t *Terminal) itemMenu(s *engine.Scheduler, title string) (engine.MenuResult, types.EntityID) {
	w := s.World
	items := systems.Backpack(w, w.Player)

	t.draw(s)
	t.drawItemMenu(w, title, items)
	t.screen.Show()

	ev, ok := t.nextKey()
	if !ok {
		return engine.MenuCancel, types.NilEntityID
	}
	return pickItem(ev, items)
}

// pickItem разбирает нажатие в меню предметов.
func pickItem(ev *tcell.EventKey, items []types.EntityID) (engine.MenuResult, types.EntityID) {
	if ev.Key() == tcell.KeyEscape {
		return engine.MenuCancel, types.NilEntityID
	}
	if ev.Key() != tcell.KeyRune {
		return engine.MenuNoResponse, types.NilEntityID
	}
	idx, ok := menuIndex(ev.Rune())
	if !ok || idx >= len(items) {
		return engine.MenuNoResponse, types.NilEntityID
	}
	return engine.MenuSelected, items[idx]
}

func (t *Terminal) drawItemMenu(w *domain.World, title string, items []types.EntityID) {
	width := len(title) + 4
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("(%c) %s", 'a'+i, w.NameOf(item))
		if len(lines[i])+2 > width {
			width = len(lines[i]) + 2
		}
	}

	x := 15
	y := 25 - len(items)/2
	t.fill(x, y-2, width+2, len(items)+4, menuStyle)
	t.drawText(x+2, y-2, title, titleStyle)
	for i, line := range lines {
		t.drawText(x+2, y+i, line, menuStyle)
	}
	t.drawText(x+2, y+len(items)+1, "ESCAPE to cancel", titleStyle)
}

func (t *Terminal) fill(x, y, width, height int, style tcell.Style) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			t.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

// SelectTarget подсвечивает допустимые клетки и двигает курсор по ним.
// Tab и стрелки - следующая цель, Enter - выбор, Esc - отмена.
func (t *Terminal) SelectTarget(s *engine.Scheduler, rangeCells int) (engine.MenuResult, *domain.Position) {
	w := s.World
	targets := systems.ValidTargets(w, w.Player, rangeCells)
	if len(targets) == 0 {
		t.cursor = 0
		return engine.MenuCancel, nil
	}
	if t.cursor >= len(targets) {
		t.cursor = 0
	}

	t.draw(s)
	t.drawText(5, 0, "Select Target:", titleStyle)
	for i, p := range targets {
		style := targetStyle
		if i == t.cursor {
			style = cursorStyle
		}
		r, _, _, _ := t.screen.GetContent(p.X, p.Y)
		t.screen.SetContent(p.X, p.Y, r, nil, style)
	}
	t.screen.Show()

	ev, ok := t.nextKey()
	if !ok {
		return engine.MenuCancel, nil
	}

	res, next := moveCursor(ev, t.cursor, len(targets))
	t.cursor = next
	if res != engine.MenuSelected {
		if res == engine.MenuCancel {
			t.cursor = 0
		}
		return res, nil
	}

	target := targets[next]
	t.cursor = 0
	return engine.MenuSelected, &target
}

// moveCursor разбирает нажатие при выборе цели и возвращает новый индекс курсора.
func moveCursor(ev *tcell.EventKey, cursor, n int) (engine.MenuResult, int) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return engine.MenuCancel, cursor
	case tcell.KeyEnter:
		return engine.MenuSelected, cursor
	case tcell.KeyTab, tcell.KeyRight, tcell.KeyDown:
		return engine.MenuNoResponse, (cursor + 1) % n
	case tcell.KeyBacktab, tcell.KeyLeft, tcell.KeyUp:
		return engine.MenuNoResponse, (cursor - 1 + n) % n
	}
	return engine.MenuNoResponse, cursor
}
