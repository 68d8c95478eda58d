package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/hollowfall/pixelbrawl/common"
	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
	"github.com/hollowfall/pixelbrawl/ecs/systems"
	"github.com/hollowfall/pixelbrawl/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	enemyEvery = 90 // ticks between enemy spawns
)

type Game struct {
	frames int

	world     *ecs.World
	renderer  *systems.RenderSystem
	responder *systems.ScriptResponder
	watcher   *prefabs.Watcher

	ui     *ebitenui.UI
	paused bool
	quit   bool
}

func NewGame(watch bool) (*Game, error) {
	registerArt()

	cfg, err := collisionConfig()
	if err != nil {
		return nil, err
	}

	scriptSrc, err := prefabs.LoadScript("on_collision.tengo")
	if err != nil {
		return nil, fmt.Errorf("load collision script: %w", err)
	}
	responder, err := systems.NewScriptResponder(scriptSrc)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:     ecs.NewWorld(),
		renderer:  systems.NewRenderSystem(),
		responder: responder,
	}
	g.world.Bus().Subscribe(ecs.EventCollision, responder.Handle)

	g.world.AddSystem(systems.NewControllerSystem(g.spawnBullet))
	g.world.AddSystem(systems.NewMovementSystem())
	g.world.AddSystem(systems.NewSpawnSystem(enemyEvery, g.spawnEnemy))
	g.world.AddSystem(systems.NewTTLSystem())
	g.world.AddSystem(systems.NewCollisionSystem(cfg))

	if _, err := prefabs.BuildFromFile(g.world, "player.yaml"); err != nil {
		return nil, err
	}
	if err := ecsAddPlayerVelocity(g.world); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

// collisionConfig reads the policy file, falling back to the stock policy
// when the file is absent.
func collisionConfig() (systems.Config, error) {
	cfg := systems.DefaultConfig()
	spec, err := prefabs.LoadCollisionSpec()
	if err != nil {
		log.Printf("collision config unavailable, using defaults: %v", err)
		return cfg, nil
	}
	if spec.AlphaThreshold != nil {
		if *spec.AlphaThreshold < 0 || *spec.AlphaThreshold > 255 {
			return cfg, fmt.Errorf("collision config: alpha_threshold %d out of range", *spec.AlphaThreshold)
		}
		cfg.AlphaThreshold = uint8(*spec.AlphaThreshold)
	}
	if spec.DefaultBoxWidth != nil {
		cfg.DefaultBoxWidth = *spec.DefaultBoxWidth
	}
	if spec.DefaultBoxHeight != nil {
		cfg.DefaultBoxHeight = *spec.DefaultBoxHeight
	}
	return cfg, nil
}

// ecsAddPlayerVelocity gives the player entity a velocity component for the
// controller to drive. Kept out of the prefab so content can't strand the
// controller.
func ecsAddPlayerVelocity(w *ecs.World) error {
	var failed error
	ecs.ForEach(w, component.PlayerControlComponent.Kind(), func(e ecs.Entity, _ *component.PlayerControl) {
		if !ecs.Has(w, e, component.VelocityComponent.Kind()) {
			failed = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
		}
	})
	return failed
}

func (g *Game) spawnBullet(w *ecs.World, x, y, vx, vy float64) {
	e, err := prefabs.BuildFromFile(w, "bullet.yaml")
	if err != nil {
		log.Printf("spawn bullet: %v", err)
		return
	}
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.X, tr.Y = x, y
	}
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{VX: vx, VY: vy})

	lifetime := 150
	ecs.ForEach(w, component.PlayerControlComponent.Kind(), func(_ ecs.Entity, pc *component.PlayerControl) {
		if pc.BulletLifetime > 0 {
			lifetime = pc.BulletLifetime
		}
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: lifetime})
}

func (g *Game) spawnEnemy(w *ecs.World) {
	e, err := prefabs.BuildFromFile(w, "enemy.yaml")
	if err != nil {
		log.Printf("spawn enemy: %v", err)
		return
	}
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.X = baseWidth + 40
		tr.Y = 60 + rand.Float64()*(baseHeight-120)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.frames++
	g.drainWatcher()
	g.world.Update()
	g.clampPlayer()
	return nil
}

// clampPlayer keeps the player inside the window after movement.
func (g *Game) clampPlayer() {
	ecs.ForEach2(g.world, component.PlayerControlComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerControl, tr *component.Transform) {
			tr.X = common.Clamp(tr.X, 0, baseWidth)
			tr.Y = common.Clamp(tr.Y, 0, baseHeight)
		})
}

// drainWatcher logs prefab edits; Load prefers the on-disk copy, so the
// next spawn of that prefab picks the change up.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("prefab changed: %s", name)
		case err := <-g.watcher.Errors:
			log.Printf("prefab watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.renderer.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d    FPS: %.2f", g.responder.Score(), ebiten.ActualFPS()))

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
