package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	Title        = "Blockfall"
)

// Game implements ebiten.Game on top of a tetris engine.
type Game struct {
	engine    *tetris.Engine
	board     *BoardRenderer
	repeater  *Repeater
	autoReset bool

	inspector *debugui.Inspector
	imgui     *debugui_ebiten.ImguiBackend
}

func main() {
	configPath := flag.String("config", "", "path to an engine config YAML file")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 picks one at random)")
	autoReset := flag.Bool("auto-reset", false, "start a new game as soon as one is lost")
	debug := flag.Bool("debug", false, "enable the ImGui debug overlay (toggle with F1)")
	verbose := flag.Bool("verbose", false, "log engine events")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	if *configPath != "" {
		loaded, err := tetris.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[Blockfall] %v", err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	engine, err := tetris.New(cfg)
	if err != nil {
		log.Fatalf("[Blockfall] %v", err)
	}
	defer engine.Close()

	log.Printf("[Blockfall] %dx%d board, seed %d", engine.Width(), engine.Height(), engine.Seed())

	game := &Game{
		engine:    engine,
		board:     NewBoardRenderer(engine),
		repeater:  NewRepeater(DefaultRepeat()),
		autoReset: *autoReset,
	}
	defer game.board.Close()

	if *debug {
		game.imgui = debugui_ebiten.NewImguiBackend(Title, ScreenWidth, ScreenHeight)
		game.inspector = debugui.NewInspector(engine)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("[Blockfall] %v", err)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()

		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.inspector.Toggle()
		}
	}

	if !g.keyboardCaptured() {
		g.handleKeys()
	}

	g.engine.Update()

	if g.autoReset && g.engine.State() == tetris.Lost {
		g.engine.Reset()
	}

	if g.inspector != nil {
		g.inspector.Render()
	}
	return nil
}

func (g *Game) keyboardCaptured() bool {
	return g.inspector != nil && g.inspector.Input().WantCaptureKeyboard
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.autoReset = !g.autoReset
	}

	for _, cmd := range g.repeater.Step(pollKeys()) {
		g.engine.Submit(cmd)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	left := BoardLeft
	if g.inspector != nil && g.inspector.Visible() {
		left = ScreenWidth - PanelWidth - g.engine.Width()*CellSize - 2*BoardLeft
	}
	g.board.Draw(screen, g.engine, left, BoardTop, g.autoReset)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
