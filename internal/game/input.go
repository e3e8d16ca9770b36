package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// JustPressed reports a key's rising edge this frame.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ReadControls snapshots the driving keys for this tick.
func ReadControls(window *glfw.Window) Controls {
	return Controls{
		Forward:  window.GetKey(glfw.KeyW) == glfw.Press,
		Backward: window.GetKey(glfw.KeyS) == glfw.Press,
		Left:     window.GetKey(glfw.KeyA) == glfw.Press,
		Right:    window.GetKey(glfw.KeyD) == glfw.Press,
		Drift:    window.GetKey(glfw.KeySpace) == glfw.Press,
	}
}
