package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

var clearNames = [5]string{"None", "Single", "Double", "Triple", "Tetris"}

// PieceStats tabulates locked pieces per kind and line clears by size.
type PieceStats struct{}

func NewPieceStats() *PieceStats {
	return &PieceStats{}
}

// lockShares returns each kind's share of all locked pieces, in percent.
func lockShares(stats tetris.Stats) [tetris.KindCount]float32 {
	var shares [tetris.KindCount]float32
	if stats.PiecesLocked == 0 {
		return shares
	}
	for kind, n := range stats.LocksByKind {
		shares[kind] = float32(n) * 100 / float32(stats.PiecesLocked)
	}
	return shares
}

func (ps *PieceStats) Render(engine *tetris.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := engine.Stats()
	shares := lockShares(stats)

	imgui.Text(fmt.Sprintf("Games: %d", stats.Games))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Lines cleared: %d", stats.LinesCleared))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("LocksTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Locked")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for kind := tetris.KindI; kind < tetris.KindCount; kind++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.LocksByKind[kind]))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f%%", shares[kind]))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Clears") {
		for rows, n := range stats.Clears {
			imgui.BulletText(fmt.Sprintf("%s: %d", clearNames[rows], n))
		}
		imgui.TreePop()
	}

	imgui.End()
}
