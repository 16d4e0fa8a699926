//go:build glfw

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/rook-computer/koi/internal/canvas"
	"github.com/rook-computer/koi/internal/input"
	"github.com/rook-computer/koi/internal/pixel"
	"github.com/rook-computer/koi/internal/state"
)

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_texTransform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = vec4(a_position, 0.0, 1.0);
      v_texcoord = (u_texTransform * vec4(a_texcoord, 0.0, 1.0)).xy;
    }` + "\x00"
	quadFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    uniform vec4 u_tint;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).rgb * u_tint.rgb, 1.0);
    }` + "\x00"
)

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// Canvas row 0 is the top of the screen, so t runs downwards.
var quadVertices = [6]quadVertex{
	{[2]float32{-1, 1}, [2]float32{0, 0}},
	{[2]float32{-1, -1}, [2]float32{0, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, -1}, [2]float32{1, 1}},
	{[2]float32{1, 1}, [2]float32{1, 0}},
	{[2]float32{-1, 1}, [2]float32{0, 0}},
}

type glTexture struct {
	name uint32
	size image.Point
}

// GLRenderer presents frames through an OpenGL ES 2 context in a GLFW window
// and reports the window's input. GLFW must be driven from the main OS thread.
type GLRenderer struct {
	Logger Logger

	window *glfw.Window
	size   image.Point

	program       uint32
	aPosition     int32
	aTexcoord     int32
	uTexTransform int32
	uTex          int32
	uTint         int32

	textures map[TextureID]*glTexture
	next     TextureID
	active   TextureID

	sink *state.Store
}

func NewGLRenderer() *GLRenderer { return &GLRenderer{} }

func (r *GLRenderer) Open(ctx context.Context, cfg WindowConfig) (image.Point, error) {
	log := loggerOrNop(r.Logger)
	if err := glfw.Init(); err != nil {
		return image.Point{}, fmt.Errorf("glfw init: %w", err)
	}

	width, height := cfg.Size.X, cfg.Size.Y
	var monitor *glfw.Monitor
	if cfg.FullScreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			glfw.Terminate()
			return image.Point{}, errors.New("no monitors found")
		}
		mode := monitor.GetVideoMode()
		if mode == nil {
			glfw.Terminate()
			return image.Point{}, errors.New("video mode cannot be determined")
		}
		width, height = mode.Width, mode.Height
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return image.Point{}, fmt.Errorf("create window: %w", err)
	}
	r.window = window
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		r.Close()
		return image.Point{}, fmt.Errorf("gl init: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := r.createProgram(); err != nil {
		r.Close()
		return image.Point{}, err
	}

	fw, fh := window.GetFramebufferSize()
	r.size = image.Pt(fw, fh)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.size = image.Pt(width, height)
		if r.sink != nil {
			r.sink.SetWindowSize(width, height)
		}
	})
	log.Infof("gl", "window open, framebuffer=%dx%d vsync=%t", fw, fh, cfg.VSync)
	return r.size, nil
}

func (r *GLRenderer) createProgram() error {
	vs, err := compileShader(gl.VERTEX_SHADER, quadVertexShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, quadFragmentShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := make([]uint8, length+1)
		gl.GetProgramInfoLog(program, length, nil, &log[0])
		gl.DeleteProgram(program)
		return fmt.Errorf("program link failed: %s", gl.GoStr(&log[0]))
	}
	r.program = program
	r.aPosition = gl.GetAttribLocation(program, gl.Str("a_position\x00"))
	r.aTexcoord = gl.GetAttribLocation(program, gl.Str("a_texcoord\x00"))
	r.uTexTransform = gl.GetUniformLocation(program, gl.Str("u_texTransform\x00"))
	r.uTex = gl.GetUniformLocation(program, gl.Str("u_tex\x00"))
	r.uTint = gl.GetUniformLocation(program, gl.Str("u_tint\x00"))
	return nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	data, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(shader, 1, data, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := make([]uint8, length+1)
		gl.GetShaderInfoLog(shader, length, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %s", gl.GoStr(&log[0]))
	}
	return shader, nil
}

func (r *GLRenderer) Close() error {
	if r.window == nil {
		return nil
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.name)
	}
	r.textures = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.window.Destroy()
	r.window = nil
	glfw.Terminate()
	return nil
}

func (r *GLRenderer) SetTitle(title string) {
	if r.window != nil {
		r.window.SetTitle(title)
	}
}

// SetViewport takes window coordinates with y down; GL counts from the bottom.
func (r *GLRenderer) SetViewport(pos, size image.Point) {
	gl.Viewport(int32(pos.X), int32(r.size.Y-pos.Y-size.Y), int32(size.X), int32(size.Y))
}

func (r *GLRenderer) ClearBackBuffer(c pixel.Color, depth bool) {
	gl.ClearColor(float32(c.R())/255, float32(c.G())/255, float32(c.B())/255, float32(c.A())/255)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (r *GLRenderer) PrepareDrawing() {
	gl.Disable(gl.BLEND)
	gl.UseProgram(r.program)
}

func (r *GLRenderer) UploadTexture(c *canvas.Canvas) (TextureID, error) {
	if c == nil {
		return 0, fmt.Errorf("upload texture: nil canvas")
	}
	var name uint32
	gl.GenTextures(1, &name)
	gl.BindTexture(gl.TEXTURE_2D, name)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	t := &glTexture{name: name}
	upload(t, c)
	if r.textures == nil {
		r.textures = map[TextureID]*glTexture{}
	}
	r.next++
	r.textures[r.next] = t
	r.active = r.next
	return r.next, nil
}

// upload replaces the texture storage when the canvas size changed and
// updates it in place otherwise.
func upload(t *glTexture, c *canvas.Canvas) {
	data := c.Data()
	if len(data) == 0 {
		return
	}
	size := image.Pt(c.Width(), c.Height())
	if size != t.size {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&data[0]))
		t.size = size
		return
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&data[0]))
}

func (r *GLRenderer) UpdateTexture(id TextureID, c *canvas.Canvas) {
	t := r.textures[id]
	if t == nil || c == nil {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, t.name)
	upload(t, c)
}

func (r *GLRenderer) ApplyTexture(id TextureID) {
	if t := r.textures[id]; t != nil {
		r.active = id
		gl.BindTexture(gl.TEXTURE_2D, t.name)
	}
}

func (r *GLRenderer) DrawQuad(offset, scale [2]float32, tint pixel.Color) {
	if r.textures[r.active] == nil {
		return
	}
	texTransform := mgl.Translate3D(offset[0], offset[1], 0).Mul4(mgl.Scale3D(scale[0], scale[1], 1))
	gl.UniformMatrix4fv(r.uTexTransform, 1, false, &texTransform[0])
	gl.Uniform4f(r.uTint, float32(tint.R())/255, float32(tint.G())/255, float32(tint.B())/255, float32(tint.A())/255)
	gl.Uniform1i(r.uTex, 0)

	stride := int32(unsafe.Sizeof(quadVertex{}))
	gl.EnableVertexAttribArray(uint32(r.aPosition))
	gl.VertexAttribPointer(uint32(r.aPosition), 2, gl.FLOAT, false, stride, gl.Ptr(&quadVertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(r.aTexcoord))
	gl.VertexAttribPointer(uint32(r.aTexcoord), 2, gl.FLOAT, false, stride, gl.Ptr(&quadVertices[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)))
	gl.DisableVertexAttribArray(uint32(r.aPosition))
	gl.DisableVertexAttribArray(uint32(r.aTexcoord))
}

func (r *GLRenderer) DisplayFrame() error {
	if r.window == nil {
		return errors.New("window closed")
	}
	r.window.SwapBuffers()
	return nil
}

// Start installs the window callbacks feeding sink.
func (r *GLRenderer) Start(ctx context.Context, sink *state.Store, onClose func()) error {
	if r.window == nil {
		return errors.New("gl input: renderer not open")
	}
	r.sink = sink
	w := r.window
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok || action == glfw.Repeat {
			return
		}
		sink.SetKey(k, action == glfw.Press)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button >= glfw.MouseButton1 && button <= glfw.MouseButton5 {
			sink.SetMouseButton(int(button-glfw.MouseButton1), action == glfw.Press)
		}
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sink.SetMousePos(int(x), int(y))
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		sink.AddWheel(int(yoff * wheelStep))
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		sink.SetKeyFocus(focused)
		if !focused {
			sink.ReleaseAll()
		}
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		sink.SetMouseFocus(entered)
	})
	w.SetCloseCallback(func(_ *glfw.Window) {
		if onClose != nil {
			onClose()
		}
	})
	return nil
}

// PollEvents pumps the GLFW queue; the callbacks write to the store.
func (r *GLRenderer) PollEvents() { glfw.PollEvents() }

func (r *GLRenderer) Stop() error {
	if r.window != nil {
		r.window.SetKeyCallback(nil)
		r.window.SetMouseButtonCallback(nil)
		r.window.SetCursorPosCallback(nil)
		r.window.SetScrollCallback(nil)
		r.window.SetFocusCallback(nil)
		r.window.SetCursorEnterCallback(nil)
		r.window.SetCloseCallback(nil)
	}
	r.sink = nil
	return nil
}

var glfwKeys = func() map[glfw.Key]input.Key {
	m := map[glfw.Key]input.Key{
		glfw.KeyUp:           input.KeyUp,
		glfw.KeyDown:         input.KeyDown,
		glfw.KeyLeft:         input.KeyLeft,
		glfw.KeyRight:        input.KeyRight,
		glfw.KeySpace:        input.KeySpace,
		glfw.KeyTab:          input.KeyTab,
		glfw.KeyLeftShift:    input.KeyShift,
		glfw.KeyRightShift:   input.KeyShift,
		glfw.KeyLeftControl:  input.KeyCtrl,
		glfw.KeyRightControl: input.KeyCtrl,
		glfw.KeyInsert:       input.KeyIns,
		glfw.KeyDelete:       input.KeyDel,
		glfw.KeyHome:         input.KeyHome,
		glfw.KeyEnd:          input.KeyEnd,
		glfw.KeyPageUp:       input.KeyPgUp,
		glfw.KeyPageDown:     input.KeyPgDn,
		glfw.KeyBackspace:    input.KeyBack,
		glfw.KeyEscape:       input.KeyEscape,
		glfw.KeyEnter:        input.KeyReturn,
		glfw.KeyKPEnter:      input.KeyEnter,
		glfw.KeyPause:        input.KeyPause,
		glfw.KeyScrollLock:   input.KeyScroll,
		glfw.KeyKPMultiply:   input.KeyNPMul,
		glfw.KeyKPDivide:     input.KeyNPDiv,
		glfw.KeyKPAdd:        input.KeyNPAdd,
		glfw.KeyKPSubtract:   input.KeyNPSub,
		glfw.KeyKPDecimal:    input.KeyNPDecimal,
		glfw.KeyPeriod:       input.KeyPeriod,
	}
	for i := 0; i < 26; i++ {
		m[glfw.KeyA+glfw.Key(i)] = input.KeyA + input.Key(i)
	}
	for i := 0; i < 10; i++ {
		m[glfw.Key0+glfw.Key(i)] = input.Key0 + input.Key(i)
		m[glfw.KeyKP0+glfw.Key(i)] = input.KeyNP0 + input.Key(i)
	}
	for i := 0; i < 12; i++ {
		m[glfw.KeyF1+glfw.Key(i)] = input.KeyF1 + input.Key(i)
	}
	return m
}()
