package frontend

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// Terminal - терминальный фронтенд: рисует мир в tcell и переводит
// нажатия клавиш в команды и ответы меню.
type Terminal struct {
	screen tcell.Screen
	colors palette
	cursor int
	// stopped - контекст Run отменен, ввода больше не будет.
	stopped atomic.Bool
}

var (
	_ engine.Input = (*Terminal)(nil)
	_ engine.Menus = (*Terminal)(nil)
)

// Open захватывает настоящий терминал.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return New(screen), nil
}

// New оборачивает уже инициализированный экран (в тестах - SimulationScreen).
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Close возвращает терминал в исходное состояние.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run гоняет планировщик до выхода, смерти игрока или отмены ctx.
// Отмена будит PollEvent, и текущий ввод превращается в Quit.
func (t *Terminal) Run(ctx context.Context, s *engine.Scheduler) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.stopped.Store(true)
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for !s.Quit() && !s.GameOver() && ctx.Err() == nil {
		s.Tick()
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "frontend",
		"turn":      s.Turn(),
		"game_over": s.GameOver(),
		"cancelled": ctx.Err() != nil,
	}).Info("Game finished")

	if s.GameOver() && ctx.Err() == nil {
		t.draw(s)
		t.drawText(1, 0, "You are dead. Press any key to exit.", titleStyle)
		t.screen.Show()
		t.nextKey()
	}
}

// PlayerInput рисует кадр и ждет осмысленную клавишу.
func (t *Terminal) PlayerInput(s *engine.Scheduler) enums.RunState {
	t.draw(s)
	t.screen.Show()

	for {
		ev, ok := t.nextKey()
		if !ok {
			return s.HandleCommand(domain.Command{Action: domain.ActionQuit})
		}
		if cmd, ok := translateKey(ev); ok {
			return s.HandleCommand(cmd)
		}
	}
}

// nextKey блокируется до следующего нажатия. false - экран закрыт
// или Run остановлен.
func (t *Terminal) nextKey() (*tcell.EventKey, bool) {
	for {
		if t.stopped.Load() {
			return nil, false
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
