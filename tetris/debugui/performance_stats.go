package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// PerformanceStats plots frame times and shows how long engine batches take.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

// record stores one frame duration in milliseconds and returns the average
// over the history window.
func (ps *PerformanceStats) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(engine *tetris.Engine) {
	avgFrameTime := ps.record(ps.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := engine.Stats()

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Updates: %d", stats.Updates))
	imgui.Text(fmt.Sprintf("Batches: %d", stats.Batches))
	imgui.Text(fmt.Sprintf("Commands: %d processed, %d discarded", stats.CommandsProcessed, stats.CommandsDiscarded))
	imgui.Text(fmt.Sprintf("Gravity drops: %d", stats.GravityDrops))

	if imgui.TreeNodeStr("Batch Timing") {
		imgui.Text(fmt.Sprintf("Last: %s", stats.LastBatch))
		imgui.Text(fmt.Sprintf("Min: %s", stats.MinBatch))
		imgui.Text(fmt.Sprintf("Max: %s", stats.MaxBatch))
		imgui.Text(fmt.Sprintf("Avg: %s", stats.AvgBatch))
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
