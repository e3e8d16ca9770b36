package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Fog.
const (
	FogDensity = 0.02
	FogR       = 0.7
	FogG       = 0.75
	FogB       = 0.8
)

// glOffset converts a byte offset to unsafe.Pointer for GL offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Terrain program.
	terrainProg        uint32
	tUModel            int32
	tUView             int32
	tUProjection       int32
	tUCameraPos        int32
	tUFogColor         int32
	tUFogDensity       int32

	// Entity program (flat color cubes/discs).
	entityProg   uint32
	eUModel      int32
	eUView       int32
	eUProjection int32
	eUColor      int32
	eUCameraPos  int32
	eUFogColor   int32
	eUFogDensity int32
	eUAlpha      int32

	// Shared box mesh (car proportions; scaled for everything else).
	boxVAO, boxVBO, boxEBO uint32
}

func NewRenderer() (*Renderer, error) {
	terrainProg, err := linkProgram(terrainVertSrc, terrainFragSrc)
	if err != nil {
		return nil, fmt.Errorf("terrain program: %w", err)
	}
	entityProg, err := linkProgram(entityVertSrc, entityFragSrc)
	if err != nil {
		gl.DeleteProgram(terrainProg)
		return nil, fmt.Errorf("entity program: %w", err)
	}

	r := &Renderer{terrainProg: terrainProg, entityProg: entityProg}

	gl.UseProgram(terrainProg)
	r.tUModel = gl.GetUniformLocation(terrainProg, gl.Str("model\x00"))
	r.tUView = gl.GetUniformLocation(terrainProg, gl.Str("view\x00"))
	r.tUProjection = gl.GetUniformLocation(terrainProg, gl.Str("projection\x00"))
	r.tUCameraPos = gl.GetUniformLocation(terrainProg, gl.Str("cameraPos\x00"))
	r.tUFogColor = gl.GetUniformLocation(terrainProg, gl.Str("fogColor\x00"))
	r.tUFogDensity = gl.GetUniformLocation(terrainProg, gl.Str("fogDensity\x00"))

	gl.UseProgram(entityProg)
	r.eUModel = gl.GetUniformLocation(entityProg, gl.Str("model\x00"))
	r.eUView = gl.GetUniformLocation(entityProg, gl.Str("view\x00"))
	r.eUProjection = gl.GetUniformLocation(entityProg, gl.Str("projection\x00"))
	r.eUColor = gl.GetUniformLocation(entityProg, gl.Str("entityColor\x00"))
	r.eUCameraPos = gl.GetUniformLocation(entityProg, gl.Str("cameraPos\x00"))
	r.eUFogColor = gl.GetUniformLocation(entityProg, gl.Str("fogColor\x00"))
	r.eUFogDensity = gl.GetUniformLocation(entityProg, gl.Str("fogDensity\x00"))
	r.eUAlpha = gl.GetUniformLocation(entityProg, gl.Str("alpha\x00"))

	r.initBoxMesh()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(FogR, FogG, FogB, 1.0)

	return r, nil
}

// initBoxMesh builds the shared cuboid: 2 wide, 1 tall, 4 long, base at y=0.
func (r *Renderer) initBoxMesh() {
	verts := []float32{
		-1, 0, -2, 1, 0, -2, 1, 1, -2, -1, 1, -2,
		-1, 0, 2, 1, 0, 2, 1, 1, 2, -1, 1, 2,
		-1, 0, -2, -1, 0, 2, -1, 1, 2, -1, 1, -2,
		1, 0, -2, 1, 0, 2, 1, 1, 2, 1, 1, -2,
		-1, 1, -2, 1, 1, -2, 1, 1, 2, -1, 1, 2,
		-1, 0, -2, 1, 0, -2, 1, 0, 2, -1, 0, 2,
	}
	indices := []uint32{
		0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 8, 9, 10, 8, 10, 11,
		12, 13, 14, 12, 14, 15, 16, 17, 18, 16, 18, 19, 20, 21, 22, 20, 22, 23,
	}

	gl.GenVertexArrays(1, &r.boxVAO)
	gl.GenBuffers(1, &r.boxVBO)
	gl.GenBuffers(1, &r.boxEBO)

	gl.BindVertexArray(r.boxVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.boxEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.boxVBO, r.boxEBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if r.boxVAO != 0 {
		gl.DeleteVertexArrays(1, &r.boxVAO)
	}
	for _, id := range []uint32{r.terrainProg, r.entityProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears and sets camera/fog uniforms on both programs.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.View()
	projection := cam.Projection(fbW, fbH)
	camPos := mgl32.Vec3{float32(cam.X), float32(cam.Y), float32(cam.Z)}
	model := mgl32.Ident4()

	gl.UseProgram(r.terrainProg)
	gl.UniformMatrix4fv(r.tUModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.tUView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.tUProjection, 1, false, &projection[0])
	gl.Uniform3fv(r.tUCameraPos, 1, &camPos[0])
	gl.Uniform3f(r.tUFogColor, FogR, FogG, FogB)
	gl.Uniform1f(r.tUFogDensity, FogDensity)

	gl.UseProgram(r.entityProg)
	gl.UniformMatrix4fv(r.eUView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.eUProjection, 1, false, &projection[0])
	gl.Uniform3fv(r.eUCameraPos, 1, &camPos[0])
	gl.Uniform3f(r.eUFogColor, FogR, FogG, FogB)
	gl.Uniform1f(r.eUFogDensity, FogDensity)
	gl.Uniform1f(r.eUAlpha, 1.0)
}

// DrawChunks uploads any pending chunk meshes, releases retired GL handles,
// and draws every resident chunk.
func (r *Renderer) DrawChunks(world *World) {
	for _, retired := range world.Retired {
		gl.DeleteVertexArrays(1, &retired.VAO)
		gl.DeleteBuffers(1, &retired.VBO)
		gl.DeleteBuffers(1, &retired.EBO)
	}
	world.Retired = world.Retired[:0]

	gl.UseProgram(r.terrainProg)
	for _, c := range world.Chunks {
		if c.NeedsUpload {
			r.uploadChunk(c)
		}
		gl.BindVertexArray(c.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(c.Indices)), gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadChunk(c *Chunk) {
	gl.GenVertexArrays(1, &c.VAO)
	gl.GenBuffers(1, &c.VBO)
	gl.GenBuffers(1, &c.EBO)

	gl.BindVertexArray(c.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(c.Vertices)*4, gl.Ptr(c.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(c.Indices)*4, gl.Ptr(c.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, glOffset(3*4))

	c.NeedsUpload = false
}

// drawBox draws the shared box mesh with the given model transform and color.
func (r *Renderer) drawBox(model mgl32.Mat4, cr, cg, cb float32) {
	gl.UniformMatrix4fv(r.eUModel, 1, false, &model[0])
	gl.Uniform3f(r.eUColor, cr, cg, cb)
	gl.BindVertexArray(r.boxVAO)
	gl.DrawElements(gl.TRIANGLES, 36, gl.UNSIGNED_INT, nil)
}

// DrawPuddles draws each puddle as a flattened translucent blue box.
func (r *Renderer) DrawPuddles(world *World) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(r.entityProg)
	gl.Uniform1f(r.eUAlpha, 0.6)

	for _, p := range world.Puddles {
		y := TerrainHeight(p.X, p.Z) + 0.01
		// The shared box spans 2 by 4 units; compensate so the footprint
		// matches the puddle diameter.
		model := mgl32.Translate3D(float32(p.X), float32(y), float32(p.Z)).
			Mul4(mgl32.Scale3D(float32(p.Radius), 0.01, float32(p.Radius/2)))
		r.drawBox(model, 0.3, 0.5, 1.0)
	}

	gl.Uniform1f(r.eUAlpha, 1.0)
	gl.Disable(gl.BLEND)
}

// DrawCar draws the player with drift yaw offset applied on top of heading.
func (r *Renderer) DrawCar(car *Car) {
	gl.UseProgram(r.entityProg)
	model := mgl32.Translate3D(float32(car.X), float32(car.Y), float32(car.Z)).
		Mul4(mgl32.HomogRotate3DY(float32(car.Rotation + car.DriftAngle)))
	r.drawBox(model, 0.9, 0.1, 0.1)
}

func (r *Renderer) DrawPolice(police *PoliceSystem) {
	gl.UseProgram(r.entityProg)
	for i := range police.Cars {
		cop := &police.Cars[i]
		model := mgl32.Translate3D(float32(cop.X), float32(cop.Y), float32(cop.Z)).
			Mul4(mgl32.HomogRotate3DY(float32(cop.Rotation)))
		r.drawBox(model, 0.1, 0.1, 0.9)
	}
}

func (r *Renderer) DrawBuildings(world *World) {
	gl.UseProgram(r.entityProg)
	for _, b := range world.Buildings {
		model := mgl32.Translate3D(float32(b.X), float32(b.Y), float32(b.Z)).
			Mul4(mgl32.Scale3D(float32(b.Width/2), float32(b.Height), float32(b.Depth/4)))
		r.drawBox(model, 0.4, 0.4, 0.4)
	}
}

func (r *Renderer) DrawBullets(police *PoliceSystem) {
	gl.UseProgram(r.entityProg)
	for i := range police.Bullets {
		b := &police.Bullets[i]
		model := mgl32.Translate3D(float32(b.X), float32(b.Y), float32(b.Z)).
			Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
		r.drawBox(model, 1.0, 0.0, 0.0)
	}
}
