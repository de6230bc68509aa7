package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/config"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/entity"
	"github.com/milk9111/balloonbridge/ecs/system"
	"github.com/milk9111/balloonbridge/levels"
	"github.com/milk9111/balloonbridge/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg config.Config

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	collect   *system.CollectSystem
	scene     *system.SceneSystem
	renderer  *system.RenderSystem

	tutorialUI *TutorialUI
	pauseUI    *ebitenui.UI
	paused     bool
	quit       bool

	watcher *prefabs.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		physics:  system.NewPhysicsSystem(),
		collect:  system.NewCollectSystem(),
		scene:    system.NewSceneSystem(cfg.Level),
		renderer: system.NewRenderSystem(cfg.Debug),
	}

	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(cfg.Step()),
		system.NewInputSystem(),
		system.NewZoneIndexSystem(),
		system.NewTutorialSystem(),
		system.NewMoveSystem(),
		system.NewJumpSystem(cfg.Debug),
		system.NewBlowUpSystem(cfg.Debug),
		system.NewSimpleMoveSystem(),
		system.NewBridgeSystem(cfg.Debug),
		g.physics,
		g.collect,
		system.NewCameraSystem(),
		g.scene,
	)

	g.tutorialUI = NewTutorialUI()
	g.pauseUI = NewPauseUI(g)

	if err := g.loadScene(cfg.Level); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// loadScene replaces the world with a freshly built one for name. The old
// world is kept if the level fails to load.
func (g *Game) loadScene(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("game: load scene %q: %w", name, err)
	}

	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, lvl, entity.LoadOptions{AllAbilities: g.cfg.AllAbilities}); err != nil {
		return fmt.Errorf("game: build scene %q: %w", name, err)
	}

	g.world = world
	g.physics.Reset()
	g.collect.Reset()
	g.scene.Current = lvl.Name
	if g.cfg.Debug {
		log.Printf("game: loaded scene %q", lvl.Name)
	}
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()

	g.scheduler.Update(g.world)
	g.tutorialUI.Update(g.world)

	if scene, ok := system.TakeSceneRequest(g.world); ok {
		if err := g.loadScene(scene); err != nil {
			log.Printf("%v", err)
		}
	}
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			if strings.HasPrefix(name, "scripts/") {
				log.Printf("prefabs: %s changed, applies to the next scene load", name)
				continue
			}
			tuning, err := entity.LoadPlayerTuning()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			entity.ApplyPlayerTuning(g.world, tuning)
			log.Printf("prefabs: reloaded %s", name)
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightsteelblue)
	g.renderer.Draw(g.world, screen)
	g.tutorialUI.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.cfg.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawPlayerDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  scene: %s", ebiten.ActualFPS(), g.scene.Current), 8, common.BaseHeight-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
