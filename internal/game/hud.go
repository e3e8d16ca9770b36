package game

import "github.com/rs/zerolog"

// HUD emits the periodic console status line while a run is active.
type HUD struct {
	timer float64
	log   zerolog.Logger
}

func NewHUD(log zerolog.Logger) *HUD {
	return &HUD{log: log}
}

// Update logs the status line once per second of game time.
func (h *HUD) Update(dt float64, session *GameSession, car *Car, police *PoliceSystem) {
	if !session.Started {
		return
	}
	h.timer += dt
	if h.timer <= 1.0 {
		return
	}
	h.timer = 0

	ev := h.log.Info().
		Int("time", int(session.SurvivalTime)).
		Int("highScore", int(session.HighScore)).
		Int("police", len(police.Cars)).
		Int("speed", int(car.Speed))
	if car.IsDrifting {
		ev = ev.Bool("drift", true)
	}
	ev.Msg("status")
}
