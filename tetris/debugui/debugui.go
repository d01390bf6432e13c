// Package debugui provides Dear ImGui windows for inspecting a running
// tetris.Engine. Windows only read engine state, except for the explicit
// buttons that submit commands or reset the game.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// Window is one ImGui window drawn from engine state.
type Window interface {
	Render(engine *tetris.Engine)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input this
// frame, so the host can stop forwarding keys to the engine.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Inspector draws a set of windows for one engine. Render must be called
// between the backend's BeginFrame and EndFrame, on the goroutine that calls
// engine.Update.
type Inspector struct {
	engine  *tetris.Engine
	windows []Window
	input   InputState
	visible bool
}

// NewInspector returns an inspector with the board, performance and piece
// statistics windows.
func NewInspector(engine *tetris.Engine) *Inspector {
	return &Inspector{
		engine: engine,
		windows: []Window{
			NewBoardInspector(),
			NewPerformanceStats(120),
			NewPieceStats(),
		},
		visible: true,
	}
}

// Add appends a window.
func (i *Inspector) Add(w Window) {
	i.windows = append(i.windows, w)
}

func (i *Inspector) Visible() bool { return i.visible }

func (i *Inspector) Toggle() { i.visible = !i.visible }

// Input returns the capture state recorded by the last Render.
func (i *Inspector) Input() InputState { return i.input }

// Render refreshes the input capture state and draws every window.
func (i *Inspector) Render() {
	io := imgui.CurrentIO()
	i.input.WantCaptureMouse = io.WantCaptureMouse()
	i.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !i.visible {
		return
	}

	for _, w := range i.windows {
		w.Render(i.engine)
	}
}
