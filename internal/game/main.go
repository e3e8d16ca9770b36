package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	settings, cfgErr := LoadSettings(".")
	log := NewLogger(settings.LogLevel)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("config file ignored")
	}

	window, err := initWindow(settings.WindowWidth, settings.WindowHeight, settings.VSync)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if settings.AudioEnabled {
		if err := InitAudio(); err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		}
	}

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	world := NewWorld(seed)
	car := NewCar(log)
	police := NewPoliceSystem(seed, log)
	session := NewGameSession()
	hud := NewHUD(log)
	cam := &Camera{}
	input := NewInput()

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	log.Info().Msg("=== POLICE CHASE ===")
	log.Info().Msg("ENTER start/restart | W/S accelerate/brake | A/D steer | SPACE drift")
	log.Info().Msg("avoid police cars and bullets")

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		if input.JustPressed(window, glfw.KeyEnter) {
			session.Start(world, police)
			log.Info().Msg("run started")
		}

		// Fixed tick order: input, player physics, chunk streaming,
		// pursuers, projectiles, score.
		if session.Started {
			ctl := ReadControls(window)
			car.Update(dt, ctl, world)
			if ctl.Forward || ctl.Backward {
				SetEngineTarget(EngineVolumeDriving)
			} else {
				SetEngineTarget(EngineVolumeIdle)
			}
		} else {
			SetEngineTarget(0)
		}

		world.EnsureChunks(car.X, car.Z)

		if session.Started {
			police.Update(dt, car, world, session)
		}
		session.Update(dt)
		hud.Update(dt, session, car, police)
		UpdateEngineVolume(dt)

		cam.Follow(car)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(cam, fbW, fbH)
		rend.DrawChunks(world)
		rend.DrawPuddles(world)
		rend.DrawCar(car)
		rend.DrawPolice(police)
		rend.DrawBuildings(world)
		rend.DrawBullets(police)

		window.SwapBuffers()
	}
}
