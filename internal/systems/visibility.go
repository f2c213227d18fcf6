package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/p5d/RustyRougelike/internal/domain"
	"github.com/p5d/RustyRougelike/pkg/logger"
)

// RunVisibility пересчитывает поля зрения, помеченные грязными.
//
// Для игрока маска Visible собирается заново целиком, а Revealed
// только дополняется: однажды увиденная клетка остается открытой.
// Монстры общие маски не трогают.
func RunVisibility(w *domain.World) {
	m := w.Map
	recomputed := 0

	for _, e := range domain.Query(w.Viewsheds, w.Positions) {
		vs, _ := w.Viewsheds.Get(e)
		if !vs.Dirty {
			continue
		}
		pos, _ := w.Positions.Get(e)

		vs.VisibleTiles = ComputeFOV(m, pos, vs.Range)
		vs.Dirty = false
		recomputed++

		if !w.Players.Has(e) {
			continue
		}

		m.ClearVisible()
		for _, p := range vs.VisibleTiles {
			idx := m.IndexOf(p)
			m.Visible[idx] = true
			m.Revealed[idx] = true
		}
	}

	if recomputed > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component":  "visibility_system",
			"recomputed": recomputed,
		}).Trace("Viewsheds recomputed")
	}
}
