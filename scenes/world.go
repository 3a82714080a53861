// Package scenes assembles a playable scene from a level and drives it from
// the game loop.
package scenes

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"

	"github.com/automoto/tilescene/assets"
	"github.com/automoto/tilescene/character"
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/scene"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/automoto/tilescene/shared/leveldata"
	"github.com/automoto/tilescene/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = iota

var errNoHeroSpawn = errors.New("no hero spawn point defined in level")

// World owns one scene and the systems that run it. The game loop drives
// it through Update and Draw; nothing here schedules itself.
type World struct {
	ecs   *ecs.ECS
	scene *scene.Scene
}

// NewWorld builds a world from the TMX level at levelPath, or from the
// built-in demo room when levelPath is empty.
func NewWorld(levelPath string) (*World, error) {
	level, err := loadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())
	w, h := level.Data.PixelSize()
	sc := scene.New(e.World, w, h)

	n := sc.AddObjects(level.Tiles)
	log.Info("Scene populated", "level", level.Data.Path, "static", n, "size", []int{w, h})

	if level.Background != nil {
		sc.SetBackground(level.Background)
	}
	if level.Foreground != nil {
		sc.SetForeground(level.Foreground)
	}

	if err := spawnActors(sc, level.Data); err != nil {
		return nil, err
	}

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause(sc))

	// Scene tick, skipped while paused
	e.AddSystem(systems.WithGameplayChecks(sc, systems.UpdateActors(sc)))
	e.AddSystem(systems.WithGameplayChecks(sc, systems.UpdateHero(sc)))

	// Add renderers
	e.AddRenderer(layerDefault, systems.DrawScene(sc))
	e.AddRenderer(layerDefault, systems.DrawDebug(sc))
	e.AddRenderer(layerDefault, systems.DrawHUD(sc))
	e.AddRenderer(layerDefault, systems.DrawPause(sc))

	sc.Start()
	return &World{ecs: e, scene: sc}, nil
}

func loadLevel(levelPath string) (*assets.Level, error) {
	if levelPath == "" {
		ts := cfg.C.TileSize
		return assets.Demo(cfg.C.Width/ts, cfg.C.Height/ts, ts), nil
	}

	loader := assets.NewLevelLoader(os.DirFS(filepath.Dir(levelPath)))
	return loader.Load(filepath.Base(levelPath))
}

func spawnActors(sc *scene.Scene, level *leveldata.Level) error {
	spawn, ok := level.Spawn(leveldata.SpawnHero)
	if !ok {
		return errNoHeroSpawn
	}
	hero := character.NewHero(character.NewHeroSprite(nil), spawn.X, spawn.Y)
	if err := sc.AddHero(hero); err != nil {
		return err
	}

	for _, p := range level.SpawnsOf(leveldata.SpawnPatrol) {
		dist := p.Distance
		if dist == 0 {
			dist = cfg.Patrol.Distance
		}
		from := gamemath.Pt(p.X, p.Y)
		to := gamemath.Pt(p.X+dist, p.Y)
		if p.Vertical {
			to = gamemath.Pt(p.X, p.Y+dist)
		}

		size := cfg.Patrol.Size
		sprite := character.NewSprite(nil, size, size)
		if err := sc.AddObject(character.NewPatroller(sprite, from, to, cfg.Patrol.Duration), scene.Dynamic); err != nil {
			return err
		}
	}
	return nil
}

// Scene returns the world's scene.
func (w *World) Scene() *scene.Scene {
	return w.scene
}

func (w *World) Update() {
	w.ecs.Update()
}

func (w *World) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	w.ecs.Draw(screen)
}
