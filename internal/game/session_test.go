package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSession_AccumulatesWhileStarted(t *testing.T) {
	s := NewGameSession()

	s.Update(1.0)
	assert.Zero(t, s.SurvivalTime, "no score before the run starts")

	s.Started = true
	for i := 0; i < 10; i++ {
		s.Update(0.5)
	}
	assert.InDelta(t, 5.0, s.SurvivalTime, 1e-9)
	assert.InDelta(t, 5.0, s.HighScore, 1e-9)
}

func TestGameSession_HighScoreSurvivesPenalties(t *testing.T) {
	s := NewGameSession()
	s.Started = true

	s.Update(12)
	require.InDelta(t, 12.0, s.HighScore, 1e-9)

	s.Penalize(PoliceHitPenalty)
	assert.InDelta(t, 7.0, s.SurvivalTime, 1e-9)
	assert.InDelta(t, 12.0, s.HighScore, 1e-9, "high score never drops")

	s.Update(1)
	assert.InDelta(t, 12.0, s.HighScore, 1e-9, "score below the record leaves it alone")
}

func TestGameSession_StartResetsRun(t *testing.T) {
	w := NewWorld(5)
	ps := newTestPolice()
	s := NewGameSession()

	s.Start(w, ps)
	s.Update(9)
	ps.Cars = append(ps.Cars, PoliceCar{X: 1})
	ps.Bullets = append(ps.Bullets, Bullet{Lifetime: 1})

	s.Start(w, ps)

	assert.True(t, s.Started)
	assert.Zero(t, s.SurvivalTime)
	assert.InDelta(t, 9.0, s.HighScore, 1e-9, "record carries across restarts")
	assert.Empty(t, ps.Cars, "restart clears the encounter")
	assert.Empty(t, ps.Bullets)
	assert.Len(t, w.Puddles, PuddleCount, "restart respawns the world")
	assert.Len(t, w.Buildings, BuildingCount)
}
