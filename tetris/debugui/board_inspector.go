package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector shows the orchestrator state, the active piece and a text
// rendering of the board, with buttons that feed commands into the engine.
type BoardInspector struct {
	showGrid bool
	lines    []string
	version  uint64
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{showGrid: true}
}

func (bi *BoardInspector) Render(engine *tetris.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 520), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := engine.State()
	if state == tetris.Lost {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.Text(fmt.Sprintf("State: %s", state))
		imgui.PopStyleColor()
	} else {
		imgui.Text(fmt.Sprintf("State: %s", state))
	}

	imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d", engine.LinesCleared()))
	imgui.Text(fmt.Sprintf("Seed: %d", engine.Seed()))
	imgui.Text(fmt.Sprintf("Version: %d", engine.Version()))

	imgui.Separator()

	p := engine.Active()
	imgui.Text(fmt.Sprintf("Active: %s rot %d at (%d, %d)", p.Kind, p.Rotation, p.X, p.Y))
	imgui.Text(fmt.Sprintf("Ghost Y: %d", engine.GhostY()))
	imgui.Text(fmt.Sprintf("Next: %s", engine.NextKind()))
	imgui.Text(fmt.Sprintf("Queued: %d", engine.Pending()))
	imgui.Text(fmt.Sprintf("Gravity: every %d ticks", engine.GravityThreshold()))

	imgui.Separator()

	if imgui.Button("Left") {
		engine.Submit(tetris.MoveLeft)
	}
	imgui.SameLine()
	if imgui.Button("Right") {
		engine.Submit(tetris.MoveRight)
	}
	imgui.SameLine()
	if imgui.Button("Rotate") {
		engine.Submit(tetris.Rotate)
	}
	if imgui.Button("Down") {
		engine.Submit(tetris.MoveDown)
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		engine.Submit(tetris.HardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		engine.Reset()
	}

	imgui.Checkbox("Show grid", &bi.showGrid)
	if bi.showGrid {
		for _, line := range bi.gridLines(engine) {
			imgui.Text(line)
		}
	}

	imgui.End()
}

// gridLines renders the overlay top row first, rebuilding only after the
// engine reports a change.
func (bi *BoardInspector) gridLines(engine *tetris.Engine) []string {
	if bi.lines != nil && bi.version == engine.Version() {
		return bi.lines
	}

	rows := engine.Overlay()
	lines := make([]string, 0, len(rows))
	var sb strings.Builder
	for y := len(rows) - 1; y >= 0; y-- {
		sb.Reset()
		for _, cell := range rows[y] {
			sb.WriteString(cell.String())
		}
		lines = append(lines, sb.String())
	}

	bi.lines = lines
	bi.version = engine.Version()
	return lines
}
