package game

import (
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem owns the looping procedural engine sound. There are no sound
// assets; the rumble is synthesized on the fly.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	engine oto.Player

	target  float64 // volume requested by the simulation, [0,1]
	current float64 // smoothed volume actually applied
}

var globalAudio *AudioSystem

// InitAudio initializes the audio context. Failure is non-fatal for the
// game; callers log and continue silent.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// StartEngineSound begins the looping engine rumble at zero volume.
func StartEngineSound() {
	if globalAudio == nil || globalAudio.engine != nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	player := globalAudio.ctx.NewPlayer(&engineReader{})
	player.SetVolume(0)
	player.Play()
	globalAudio.engine = player
}

// SetEngineTarget sets the desired engine volume for this tick; smoothing
// happens in UpdateEngineVolume.
func SetEngineTarget(v float64) {
	if globalAudio == nil {
		return
	}
	globalAudio.target = clampF(v, 0, 1)
}

// UpdateEngineVolume approaches the target volume exponentially and applies
// it. Called once per frame.
func UpdateEngineVolume(dt float64) {
	a := globalAudio
	if a == nil || a.engine == nil {
		// Retry startup until the context reports ready.
		StartEngineSound()
		return
	}
	a.current += (a.target - a.current) * (1.0 - math.Exp(-EngineVolumeRate*dt))
	a.engine.SetVolume(a.current)
}

// engineReader streams an endless engine rumble: two detuned low saws with a
// slow wobble, softly saturated. Stereo float32 LE.
type engineReader struct {
	phase1 float64
	phase2 float64
	wobble float64
}

func (r *engineReader) Read(p []byte) (int, error) {
	n := len(p) / 8 // frames: 2 channels x 4 bytes
	for i := 0; i < n; i++ {
		r.phase1 += 55.0 / SampleRate
		r.phase2 += 112.0 / SampleRate
		r.wobble += 3.2 / SampleRate

		saw1 := 2.0*(r.phase1-math.Floor(r.phase1)) - 1.0
		saw2 := 2.0*(r.phase2-math.Floor(r.phase2)) - 1.0
		wob := 0.85 + 0.15*math.Sin(2*math.Pi*r.wobble)

		s := (0.6*saw1 + 0.3*saw2) * wob
		s = math.Tanh(s * 1.4) * 0.8

		bits := math.Float32bits(float32(s))
		off := i * 8
		for ch := 0; ch < 2; ch++ {
			o := off + ch*4
			p[o+0] = byte(bits)
			p[o+1] = byte(bits >> 8)
			p[o+2] = byte(bits >> 16)
			p[o+3] = byte(bits >> 24)
		}
	}
	return n * 8, nil
}
