// Package assets turns level data into drawable scene content: tile sprites
// cut from tileset images and pre-rendered background/foreground layers.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/tilescene/character"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Level is a loaded level ready for scene population.
type Level struct {
	Data       *leveldata.Level
	Tiles      map[string]interactive.Renderable
	Background *Layer
	Foreground *Layer
}

// Layer is a pre-rendered full-level image.
type Layer struct {
	img *ebiten.Image
}

func (l *Layer) Render() image.Image {
	return l.img
}

func (l *Layer) Width() int {
	return l.img.Bounds().Dx()
}

func (l *Layer) Height() int {
	return l.img.Bounds().Dy()
}

type LevelLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewLevelLoader creates a loader reading levels and tileset images from
// fsys.
func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load parses a TMX level, cuts tile sprites from its tilesets and bakes
// its background and foreground layers.
func (l *LevelLoader) Load(levelPath string) (*Level, error) {
	data, err := leveldata.Load(l.fsys, levelPath)
	if err != nil {
		return nil, err
	}

	tiles, err := l.sprites(data)
	if err != nil {
		return nil, err
	}

	level := &Level{Data: data, Tiles: tiles}
	if err := l.bakeLayers(levelPath, level); err != nil {
		return nil, err
	}

	log.Info("Loaded level", "path", levelPath, "tiles", len(tiles), "spawns", len(data.Spawns))
	return level, nil
}

// Demo wraps leveldata.Demo. Its tiles have no images and draw as flat
// blocks.
func Demo(cols, rows, tileSize int) *Level {
	data := leveldata.Demo(cols, rows, tileSize)
	tiles := make(map[string]interactive.Renderable, len(data.Tiles))
	for key, t := range data.Tiles {
		tiles[key] = tileSprite(t, nil, float64(tileSize), float64(tileSize))
	}
	return &Level{Data: data, Tiles: tiles}
}

func (l *LevelLoader) sprites(data *leveldata.Level) (map[string]interactive.Renderable, error) {
	tw, th := float64(data.TileWidth), float64(data.TileHeight)

	tiles := make(map[string]interactive.Renderable, len(data.Tiles))
	for key, t := range data.Tiles {
		var img image.Image
		if t.Source != "" && !t.Virtual {
			sheet, err := l.image(t.Source)
			if err != nil {
				return nil, err
			}
			img = sheet.SubImage(t.Rect)
		}
		tiles[key] = tileSprite(t, img, tw, th)
	}
	return tiles, nil
}

func tileSprite(t leveldata.Tile, img image.Image, w, h float64) *character.Sprite {
	if t.Virtual {
		return character.NewVirtualSprite(w, h)
	}
	return character.NewSprite(img, w, h, t.HitBoxes...)
}

func (l *LevelLoader) image(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *LevelLoader) bakeLayers(levelPath string, level *Level) error {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		var target **Layer
		switch layer.Name {
		case leveldata.BackgroundLayer:
			target = &level.Background
		case leveldata.ForegroundLayer:
			target = &level.Foreground
		default:
			continue
		}

		if err := renderer.RenderLayer(i); err != nil {
			log.Warn("Failed to render layer", "layer", layer.Name, "err", err)
			continue
		}
		*target = &Layer{img: ebiten.NewImageFromImage(renderer.Result)}
		renderer.Clear()
	}
	return nil
}
