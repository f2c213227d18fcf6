package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/p5d/RustyRougelike/internal/agent"
	"github.com/p5d/RustyRougelike/internal/core/types/enums"
	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/internal/frontend"
	"github.com/p5d/RustyRougelike/internal/network"
	"github.com/p5d/RustyRougelike/internal/server"
	"github.com/p5d/RustyRougelike/internal/version"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal (default command)",
	Long: `Play in the terminal, or let the built-in bot play with --headless.
With --watch the game is streamed to read-only spectators over WebSocket.`,
	RunE: runPlay,
}

func init() {
	addLevelFlags(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("watch", "", "spectator address, e.g. :8080 (empty - disabled)")
	f.Bool("headless", false, "let the bot play instead of the keyboard")
	f.Int("turns", 0, "headless: stop after this many inputs (0 - until death)")
	f.String("script", "", "headless: opening moves in vi keys, e.g. \"llj.g\"")
	f.Duration("delay", 0, "headless: pause between player turns")
	f.Bool("sound", false, "beep on hits")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := levelConfig(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	watch, _ := f.GetString("watch")
	headless, _ := f.GetBool("headless")
	turns, _ := f.GetInt("turns")
	script, _ := f.GetString("script")
	delay, _ := f.GetDuration("delay")
	sound, _ := f.GetBool("sound")

	logger.Log.Info(version.String())
	logger.Log.WithFields(logrus.Fields{
		"component": "main",
		"seed":      cfg.Seed,
		"headless":  headless,
	}).Info("Starting game")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		input engine.Input
		menus engine.Menus
		term  *frontend.Terminal
	)
	if headless {
		opening, err := agent.ParseScript(script)
		if err != nil {
			return err
		}
		bot := agent.NewBot(opening, turns)
		input, menus = bot, bot
	} else {
		// Терминал занят рендером
		if os.Getenv("LOG_FILE") == "" {
			logger.SetOutput(io.Discard)
		}
		term, err = frontend.Open()
		if err != nil {
			return err
		}
		defer term.Close()
		input, menus = term, term
	}

	s, err := engine.NewGame(cfg, input, menus)
	if err != nil {
		return err
	}

	if watch != "" {
		hub := network.NewBroadcaster()
		s.Subscribe(hub)
		srv := server.New(hub, watch)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Log.WithError(err).Error("Spectator server stopped")
			}
		}()
	}

	if sound && !headless {
		snd, err := frontend.NewSound()
		if err != nil {
			logger.Log.WithError(err).Warn("Audio initialization failed, playing without sound")
		} else {
			defer snd.Close()
			s.Subscribe(snd)
		}
	}

	if headless {
		runHeadless(ctx, s, delay)
	} else {
		term.Run(ctx, s)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "main",
		"turn":      s.Turn(),
		"game_over": s.GameOver(),
	}).Info("Done.")
	return nil
}

// runHeadless крутит планировщик, пока бот не выйдет, игрок не умрет
// или не придет сигнал.
func runHeadless(ctx context.Context, s *engine.Scheduler, delay time.Duration) {
	for !s.Quit() && !s.GameOver() {
		if ctx.Err() != nil {
			return
		}
		if s.Tick() != enums.RunStateAwaitingInput || delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
