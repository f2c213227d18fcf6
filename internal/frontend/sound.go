package frontend

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/p5d/RustyRougelike/internal/engine"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

const (
	sampleRate = beep.SampleRate(44100)

	hitFreq   = 880.0 // игрок попал
	hurtFreq  = 220.0 // попали по игроку
	deathFreq = 110.0

	toneDuration  = 60 * time.Millisecond
	deathDuration = 600 * time.Millisecond
)

// Sound - наблюдатель планировщика, который пищит на попаданиях.
type Sound struct {
	play func(...beep.Streamer)
}

var _ engine.Observer = (*Sound)(nil)

// NewSound инициализирует динамик. Ошибка не фатальна: игра идет и без звука.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{play: speaker.Play}, nil
}

// Close останавливает все звуки.
func (s *Sound) Close() {
	speaker.Clear()
}

// OnTurn проигрывает по одному тону на каждое попадание шага.
func (s *Sound) OnTurn(sch *engine.Scheduler, ev engine.TurnEvents) {
	player := sch.World.Player

	var tones []beep.Streamer
	for _, hit := range ev.Hits {
		if hit.Damage == 0 {
			continue
		}
		freq := hitFreq
		if hit.Target == player {
			freq = hurtFreq
		}
		if t := tone(freq, toneDuration); t != nil {
			tones = append(tones, t)
		}
	}
	if ev.PlayerDied {
		if t := tone(deathFreq, deathDuration); t != nil {
			tones = append(tones, t)
		}
	}

	if len(tones) > 0 {
		// Тоны одного шага звучат друг за другом
		s.play(beep.Seq(tones...))
	}
}

// tone - синус заданной частоты с затуханием к концу, без щелчка.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		logger.Log.WithError(err).WithField("freq", freq).Warn("Cannot build tone")
		return nil
	}
	n := sampleRate.N(d)
	return &fadeOut{streamer: beep.Take(n, sine), total: n}
}

// fadeOut линейно гасит громкость от полной до нуля за total сэмплов.
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.3 * (1 - float64(f.pos)/float64(f.total))
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}
