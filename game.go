package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portalgun/common"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/ecs/entity"
	"github.com/milk9111/portalgun/ecs/render"
	"github.com/milk9111/portalgun/ecs/system"
	"github.com/milk9111/portalgun/levels"
	"github.com/milk9111/portalgun/prefabs"
)

type Game struct {
	frames int

	levelName string
	debug     bool

	world    *ecs.World
	sim      *system.Simulation
	input    *render.InputSystem
	renderer *render.Renderer

	paused  bool
	pauseUI *ebitenui.UI
	quit    bool

	captureBtn *widget.Button
	previewBtn *widget.Button

	captureMode component.CaptureMode
	previewMode component.PreviewMode
	settings    *settingsStore

	watcher *prefabs.Watcher
}

// GameOptions carries the command line choices. Mode overrides win over the
// saved settings when set.
type GameOptions struct {
	Level   string
	Debug   bool
	Capture string
	Preview string
	Watch   bool
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		levelName: opts.Level,
		debug:     opts.Debug,
		input:     render.NewInputSystem(common.BaseWidth, common.BaseHeight),
		renderer:  render.NewRenderer(),
		settings:  openSettingsStore(),
	}

	if saved := g.settings.Load(); saved != nil {
		g.captureMode, g.previewMode = saved.Modes()
	}
	if opts.Capture != "" {
		m, err := component.ParseCaptureMode(opts.Capture)
		if err != nil {
			return nil, err
		}
		g.captureMode = m
	}
	if opts.Preview != "" {
		m, err := component.ParsePreviewMode(opts.Preview)
		if err != nil {
			return nil, err
		}
		g.previewMode = m
	}

	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadLevel() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	entity.SetModes(world, g.captureMode, g.previewMode)

	g.world = world
	g.sim = system.NewSimulation(world, lvl.GravityOr(system.DefaultGravity), entity.NewProjectileAt, g.input)
	// Create bodies so the first frame can draw and query them.
	g.sim.Physics.Sync(world)
	return nil
}

func (g *Game) restart() {
	if err := g.loadLevel(); err != nil {
		log.Printf("game: restart: %v", err)
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.input.Enabled = !paused
}

// setModes applies modes to every emitter, refreshes the pause menu and
// persists the choice.
func (g *Game) setModes(capture component.CaptureMode, preview component.PreviewMode) {
	if capture == g.captureMode && preview == g.previewMode {
		return
	}
	g.captureMode, g.previewMode = capture, preview
	entity.SetModes(g.world, capture, preview)
	g.refreshPauseLabels()
	g.settings.Save(settingsFor(capture, preview))
}

func (g *Game) refreshPauseLabels() {
	if g.captureBtn != nil {
		if text := g.captureBtn.Text(); text != nil {
			text.Label = captureLabel(g.captureMode)
		}
	}
	if g.previewBtn != nil {
		if text := g.previewBtn.Text(); text != nil {
			text.Label = previewLabel(g.previewMode)
		}
	}
}

// syncModes picks up mode toggles made in game through the emitter input.
func (g *Game) syncModes() {
	e, ok := ecs.First(g.world, component.EmitterComponent.Kind())
	if !ok {
		return
	}
	em, _ := ecs.Get(g.world, e, component.EmitterComponent.Kind())
	g.setModes(em.CaptureMode, em.PreviewMode)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != "emitter.yaml" {
				log.Printf("game: %s changed; restart the level to apply it", name)
				continue
			}
			n, err := entity.ReloadEmitterTuning(g.world)
			if err != nil {
				log.Printf("game: reload emitter tuning: %v", err)
				continue
			}
			log.Printf("game: reloaded tuning for %d emitter(s)", n)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	g.pollWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.sim.Step(1.0 / float64(ebiten.TPS()))
	g.syncModes()
	return nil
}

func (g *Game) close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := render.CameraView(g.world, common.BaseWidth, common.BaseHeight)
	g.renderer.Draw(g.world, screen, view)

	if g.debug {
		render.DrawPhysicsDebug(g.sim.Physics.Space(), screen, view)
		render.DrawEmitterDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), common.BaseWidth-220, 10)
	}

	drawModeLine(screen, g.captureMode, g.previewMode)
	if system.InstructionsVisible(g.world) {
		drawInstructions(screen)
	}
	if system.Won(g.world) {
		drawWin(screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
