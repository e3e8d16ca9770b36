package game

// GameSession tracks the run state. SurvivalTime resets on every (re)start;
// HighScore is monotonic and persists across restarts within the process.
type GameSession struct {
	Started      bool
	SurvivalTime float64
	HighScore    float64
}

func NewGameSession() *GameSession {
	return &GameSession{}
}

// Start begins a new run: the score resets and the world and encounter are
// respawned. The high score carries over.
func (s *GameSession) Start(world *World, police *PoliceSystem) {
	s.Started = true
	s.SurvivalTime = 0
	police.Reset()
	world.Respawn()
}

// Update accumulates survival time and keeps the running maximum.
func (s *GameSession) Update(dt float64) {
	if !s.Started {
		return
	}
	s.SurvivalTime += dt
	if s.SurvivalTime > s.HighScore {
		s.HighScore = s.SurvivalTime
	}
}

// Penalize subtracts from the survival score, floored at zero. The high
// score never decreases.
func (s *GameSession) Penalize(seconds float64) {
	s.SurvivalTime -= seconds
	if s.SurvivalTime < 0 {
		s.SurvivalTime = 0
	}
}
