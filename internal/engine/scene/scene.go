// Package scene renders the terrain, decorations and sky each frame
// from the current simulation state.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Patryk0329/DayNightSimulation/internal/engine/geometry"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/scene/shaders"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/shader"
	"github.com/Patryk0329/DayNightSimulation/internal/engine/texture"
	"github.com/Patryk0329/DayNightSimulation/internal/logger"
	"github.com/Patryk0329/DayNightSimulation/internal/sim"
)

// Projection constants.
const (
	fovDegrees = 60.0
	nearPlane  = 0.1
	farPlane   = 200.0
)

// Config holds scene configuration.
type Config struct {
	Width           int
	Height          int
	TerrainHalfSize float32
	GrassTexture    string
}

// Scene owns the GL resources and draws one frame from a sim.State.
type Scene struct {
	config Config

	program uint32

	// Uniform locations, resolved once at startup.
	locModel        int32
	locViewProj     int32
	locLightPos     int32
	locLightAmbient int32
	locLightDiffuse int32
	locLightSpec    int32
	locViewPos      int32
	locMatAmbient   int32
	locMatDiffuse   int32
	locMatSpecular  int32
	locShininess    int32
	locUseTexture   int32
	locTexture      int32
	locUnlit        int32
	locAlpha        int32

	cube     *geometry.Mesh
	terrain  *geometry.Mesh
	grassTex uint32
}

// New creates the scene: shader program, primitive meshes and the grass
// texture (or its placeholder). Must be called after the GL context
// exists.
func New(cfg Config) (*Scene, error) {
	s := &Scene{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	program, err := shader.CompileProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}
	s.program = program

	s.locModel = shader.GetUniform(program, "uModel")
	s.locViewProj = shader.GetUniform(program, "uViewProj")
	s.locLightPos = shader.GetUniform(program, "uLightPos")
	s.locLightAmbient = shader.GetUniform(program, "uLightAmbient")
	s.locLightDiffuse = shader.GetUniform(program, "uLightDiffuse")
	s.locLightSpec = shader.GetUniform(program, "uLightSpecular")
	s.locViewPos = shader.GetUniform(program, "uViewPos")
	s.locMatAmbient = shader.GetUniform(program, "uMatAmbient")
	s.locMatDiffuse = shader.GetUniform(program, "uMatDiffuse")
	s.locMatSpecular = shader.GetUniform(program, "uMatSpecular")
	s.locShininess = shader.GetUniform(program, "uShininess")
	s.locUseTexture = shader.GetUniform(program, "uUseTexture")
	s.locTexture = shader.GetUniform(program, "uTexture")
	s.locUnlit = shader.GetUniform(program, "uUnlit")
	s.locAlpha = shader.GetUniform(program, "uAlpha")

	s.cube = geometry.Upload(geometry.CubeVertices())
	// Repeat the grass every 2 world units.
	s.terrain = geometry.Upload(geometry.TerrainVertices(cfg.TerrainHalfSize, cfg.TerrainHalfSize/2))

	s.grassTex = texture.Upload(texture.LoadOrPlaceholder(cfg.GrassTexture))

	return s, nil
}

// Resize updates the viewport after a window resize.
func (s *Scene) Resize(width, height int) {
	s.config.Width = width
	s.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render draws one frame in the fixed order: clear to sky, terrain,
// decorations, clouds, then the depth-independent sky elements.
func (s *Scene) Render(st *sim.State) {
	hour := st.Clock.Hour

	sky := sim.SkyColor(hour)
	gl.ClearColor(sky.X(), sky.Y(), sky.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(s.config.Width) / float32(s.config.Height)
	proj := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
	viewProj := proj.Mul4(st.Camera.ViewMatrix())

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locViewProj, 1, false, &viewProj[0])

	light := sim.ActiveLight(hour)
	gl.Uniform3f(s.locLightPos, light.Position.X(), light.Position.Y(), light.Position.Z())
	gl.Uniform3f(s.locLightAmbient, light.Ambient.X(), light.Ambient.Y(), light.Ambient.Z())
	gl.Uniform3f(s.locLightDiffuse, light.Diffuse.X(), light.Diffuse.Y(), light.Diffuse.Z())
	gl.Uniform3f(s.locLightSpec, light.Specular.X(), light.Specular.Y(), light.Specular.Z())

	camPos := st.Camera.Position
	gl.Uniform3f(s.locViewPos, camPos.X(), camPos.Y(), camPos.Z())

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.drawTerrain()
	s.drawObjects(st.Catalog)
	s.drawClouds(st.Clouds, hour)
	s.drawSkyBodies(st.Stars, hour)
}

// setMaterial uploads one material's channels.
func (s *Scene) setMaterial(m *sim.Material) {
	gl.Uniform3f(s.locMatAmbient, m.Ambient.X(), m.Ambient.Y(), m.Ambient.Z())
	gl.Uniform3f(s.locMatDiffuse, m.Diffuse.X(), m.Diffuse.Y(), m.Diffuse.Z())
	gl.Uniform3f(s.locMatSpecular, m.Specular.X(), m.Specular.Y(), m.Specular.Z())
	gl.Uniform1f(s.locShininess, m.Shininess)
}

// setModel uploads the scale-then-translate model transform.
func (s *Scene) setModel(position, scale mgl32.Vec3) {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	gl.UniformMatrix4fv(s.locModel, 1, false, &model[0])
}

func (s *Scene) setFlags(useTexture, unlit bool, alpha float32) {
	gl.Uniform1i(s.locUseTexture, boolToInt(useTexture))
	gl.Uniform1i(s.locUnlit, boolToInt(unlit))
	gl.Uniform1f(s.locAlpha, alpha)
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.cube != nil {
		s.cube.Destroy()
	}
	if s.terrain != nil {
		s.terrain.Destroy()
	}
	if s.grassTex != 0 {
		gl.DeleteTextures(1, &s.grassTex)
		s.grassTex = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
