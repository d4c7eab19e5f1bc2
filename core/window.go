package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling and the OpenGL context must stay on one OS thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	// Saved windowed geometry for restoring after fullscreen.
	windowedX, windowedY int
	windowedW, windowedH int
	fullscreen           bool
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
	Samples   int // MSAA sample count, 0 disables multisampling
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1400,
		Height:    700,
		Title:     "Parallax Demo",
		Resizable: true,
		VSync:     true,
		Samples:   4,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.Samples, config.Samples)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle:    handle,
		Width:     config.Width,
		Height:    config.Height,
		Title:     config.Title,
		windowedW: config.Width,
		windowedH: config.Height,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// RequestClose marks the window for shutdown; the render loop exits on the
// next iteration.
func (w *Window) RequestClose() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// ToggleFullscreen switches between the primary monitor's video mode and the
// previous windowed geometry.
func (w *Window) ToggleFullscreen() {
	if w.fullscreen {
		w.Handle.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedW, w.windowedH, 0)
		w.fullscreen = false
		return
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	w.windowedX, w.windowedY = w.Handle.GetPos()
	w.windowedW, w.windowedH = w.Handle.GetSize()
	mode := monitor.GetVideoMode()
	w.Handle.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.fullscreen = true
}

func (w *Window) IsFullscreen() bool {
	return w.fullscreen
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// MouseButton identifies which button participates in a press or drag.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// CharCallback receives printable key presses as runes.
type CharCallback func(ch rune)

func (w *Window) SetCharCallback(cb CharCallback) {
	w.Handle.SetCharCallback(func(win *glfw.Window, ch rune) {
		cb(ch)
	})
}

// SpecialKey is a non-printable key forwarded to the application.
type SpecialKey int

const (
	KeyEscape SpecialKey = iota
	KeyTab
	KeyF1
	KeyF2
)

// SpecialKeyCallback receives Escape/Tab/F-key presses that never reach the
// char callback.
type SpecialKeyCallback func(key SpecialKey)

func (w *Window) SetSpecialKeyCallback(cb SpecialKeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			cb(KeyEscape)
		case glfw.KeyTab:
			cb(KeyTab)
		case glfw.KeyF1:
			cb(KeyF1)
		case glfw.KeyF2:
			cb(KeyF2)
		}
	})
}

// MouseButtonCallback reports presses (pressed = true) and releases with the
// cursor position at the time of the event.
type MouseButtonCallback func(button MouseButton, pressed bool, x, y float64)

func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) {
	w.Handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b MouseButton
		switch button {
		case glfw.MouseButtonLeft:
			b = MouseButtonLeft
		case glfw.MouseButtonRight:
			b = MouseButtonRight
		case glfw.MouseButtonMiddle:
			b = MouseButtonMiddle
		default:
			return
		}
		x, y := win.GetCursorPos()
		cb(b, action == glfw.Press, x, y)
	})
}

// CursorPosCallback reports cursor movement in screen coordinates.
type CursorPosCallback func(x, y float64)

func (w *Window) SetCursorPosCallback(cb CursorPosCallback) {
	w.Handle.SetCursorPosCallback(func(win *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
