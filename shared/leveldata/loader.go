package leveldata

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ErrMissingSource is returned when no level file is given.
var ErrMissingSource = errors.New("level source is required")

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	if tmxPath == "" {
		return nil, ErrMissingSource
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Path:       tmxPath,
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Tiles:      make(map[string]Tile),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				lt := layer.Tiles[y*levelMap.Width+x]
				if lt.IsNil() {
					continue
				}
				t := parseTile(lt)
				t.Coord = gamemath.Pt(float64(x), float64(y))
				level.Tiles[t.Coord.Key()] = t
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // older TMX files use type=
			}
			if kind == "" {
				kind = o.Name
			}
			level.Spawns = append(level.Spawns, SpawnPoint{
				Kind:     kind,
				X:        o.X,
				Y:        o.Y,
				Distance: o.Properties.GetFloat("distance"),
				Vertical: o.Properties.GetBool("vertical"),
			})
		}
	}

	// Top-to-bottom, left-to-right for stable spawn order
	slices.SortStableFunc(level.Spawns, func(a, b SpawnPoint) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})

	return level, nil
}

func parseTile(lt *tiled.LayerTile) Tile {
	var t Tile
	ts := lt.Tileset
	if ts == nil {
		return t
	}

	if ts.Image != nil {
		t.Source = ts.GetFileFullPath(ts.Image.Source)
		t.Rect = ts.GetTileRect(lt.ID)
	}

	tilesetTile, err := ts.GetTilesetTile(lt.ID)
	if err != nil {
		return t
	}

	t.Virtual = tilesetTile.Properties.GetBool("virtual")
	for _, og := range tilesetTile.ObjectGroups {
		for _, o := range og.Objects {
			t.HitBoxes = append(t.HitBoxes, gamemath.NewHitBox(o.X, o.Y, o.X+o.Width, o.Y+o.Height))
		}
	}
	return t
}

// Spawn returns the first spawn of the given kind.
func (l *Level) Spawn(kind string) (SpawnPoint, bool) {
	i := slices.IndexFunc(l.Spawns, func(s SpawnPoint) bool { return s.Kind == kind })
	if i < 0 {
		return SpawnPoint{}, false
	}
	return l.Spawns[i], true
}

// SpawnsOf returns every spawn of the given kind.
func (l *Level) SpawnsOf(kind string) []SpawnPoint {
	var out []SpawnPoint
	for _, s := range l.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
