// Package scene owns a 2D scene's static geometry, dynamic actors and hero,
// and answers the collision queries movers make each frame.
//
// Members live as donburi entries; the scene reads them but never moves
// them. Queries are brute force over every static object (movement clamp)
// or every dynamic actor (contact damage).
package scene

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"reflect"
	"slices"

	"github.com/automoto/tilescene/archetypes"
	"github.com/automoto/tilescene/components"
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/automoto/tilescene/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Kind is the permanent classification of a scene member.
type Kind int

const (
	Static Kind = iota
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layer is a pre-rendered background or foreground surface.
type Layer interface {
	Render() image.Image
	Width() int
	Height() int
}

type Scene struct {
	world  donburi.World
	space  *resolv.Space
	hero   *donburi.Entry
	paused bool

	width, height int
	tileSize      float64

	background Layer
	foreground Layer
}

// New creates a paused scene of the given canvas size backed by world.
func New(world donburi.World, width, height int) *Scene {
	ts := cfg.C.TileSize
	return &Scene{
		world:    world,
		space:    resolv.NewSpace(width, height, ts, ts),
		paused:   true,
		width:    width,
		height:   height,
		tileSize: float64(ts),
	}
}

func (s *Scene) World() donburi.World {
	return s.world
}

func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

func (s *Scene) SetBackground(background Layer) {
	s.background = background
}

func (s *Scene) SetForeground(foreground Layer) {
	s.foreground = foreground
}

func (s *Scene) Background() Layer {
	return s.background
}

func (s *Scene) Foreground() Layer {
	return s.foreground
}

// AddHero sets the scene's hero, replacing any previous one.
func (s *Scene) AddHero(hero any) error {
	c, ok := hero.(interactive.Character)
	if !ok || isNil(c) {
		return fmt.Errorf("%w: got %T", ErrInvalidHero, hero)
	}

	if s.hero != nil && s.hero.Valid() {
		s.world.Remove(s.hero.Entity())
	}

	entry := archetypes.Hero.Spawn(s.world)
	components.Actor.SetValue(entry, components.ActorData{Actor: c})
	s.hero = entry
	return nil
}

// Hero returns the current hero, or nil.
func (s *Scene) Hero() interactive.Character {
	if s.hero == nil || !s.hero.Valid() {
		return nil
	}
	return components.Actor.Get(s.hero).Actor.(interactive.Character)
}

// AddObject adds obj as a static or dynamic member. Static members must be
// *interactive.Object, dynamic ones interactive.Actor. An unknown kind is
// treated as static.
func (s *Scene) AddObject(obj any, kind Kind) error {
	switch kind {
	case Dynamic:
		actor, ok := obj.(interactive.Actor)
		if !ok {
			return fmt.Errorf("%w: %T as %s", ErrInvalidObject, obj, kind)
		}
		return s.AddDynamic(actor)
	case Static:
	default:
		log.Warn("Unknown object kind, adding as static", "kind", kind)
	}

	o, ok := obj.(*interactive.Object)
	if !ok || o == nil {
		return fmt.Errorf("%w: %T as %s", ErrInvalidObject, obj, Static)
	}
	s.AddStatic(o)
	return nil
}

// AddStatic adds immobile collision geometry.
func (s *Scene) AddStatic(o *interactive.Object) {
	entry := archetypes.Static.Spawn(s.world)

	// One index cell per occupied tile, inset so it registers in that
	// tile's resolv cell only.
	tiles := o.CoordTiles()
	cells := make([]*resolv.Object, 0, len(tiles))
	for _, t := range tiles {
		c := resolv.NewObject(t.X*s.tileSize+1, t.Y*s.tileSize+1, s.tileSize-2, s.tileSize-2, tags.ResolvStatic)
		c.Data = entry
		cells = append(cells, c)
	}
	if len(cells) > 0 {
		s.space.Add(cells...)
	}

	components.Object.SetValue(entry, components.ObjectData{Object: o, Cells: cells})
}

// AddDynamic adds a damage source. The actor keeps ownership of its position.
// Actors are later found by identity, so nil and non-comparable values
// (structs holding slices or maps, rather than pointers) are rejected.
func (s *Scene) AddDynamic(a interactive.Actor) error {
	if isNil(a) || !reflect.TypeOf(a).Comparable() {
		return fmt.Errorf("%w: %T as %s", ErrInvalidObject, a, Dynamic)
	}

	entry := archetypes.Dynamic.Spawn(s.world)
	components.Actor.SetValue(entry, components.ActorData{Actor: a})
	return nil
}

// AddObjects builds static objects from a "row|col" keyed tile map. Virtual
// placeholders and malformed keys are skipped. It returns how many objects
// were added.
func (s *Scene) AddObjects(tiles map[string]interactive.Renderable) int {
	type placed struct {
		coord gamemath.Point
		r     interactive.Renderable
	}

	entries := make([]placed, 0, len(tiles))
	for key, r := range tiles {
		if r == nil || interactive.IsVirtual(r) {
			continue
		}
		coord, err := gamemath.ParseTileKey(key)
		if err != nil {
			log.Warn("Skipping tile", "key", key, "err", err)
			continue
		}
		entries = append(entries, placed{coord: coord, r: r})
	}

	// Row-major so entity order does not depend on map iteration.
	slices.SortFunc(entries, func(a, b placed) int {
		return cmp.Or(cmp.Compare(a.coord.Y, b.coord.Y), cmp.Compare(a.coord.X, b.coord.X))
	})

	for _, e := range entries {
		pos := e.coord.Scale(s.tileSize)
		s.AddStatic(interactive.NewObject(e.r,
			interactive.WithPosition(pos.X, pos.Y),
			interactive.WithCoordTiles(s.footprint(e.coord, e.r)...),
		))
	}

	return len(entries)
}

// footprint lists the grid tiles a renderable placed at coord covers.
func (s *Scene) footprint(coord gamemath.Point, r interactive.Renderable) []gamemath.Point {
	cols := max(1, int(math.Ceil(r.Width()/s.tileSize)))
	rows := max(1, int(math.Ceil(r.Height()/s.tileSize)))

	tiles := make([]gamemath.Point, 0, cols*rows)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			tiles = append(tiles, gamemath.Pt(coord.X+float64(dx), coord.Y+float64(dy)))
		}
	}
	return tiles
}

// RemoveObject destroys a static object or dynamic actor. It reports
// whether obj was a member.
func (s *Scene) RemoveObject(obj any) bool {
	var target *donburi.Entry

	switch o := obj.(type) {
	case *interactive.Object:
		tags.Static.Each(s.world, func(e *donburi.Entry) {
			if target == nil && components.Object.Get(e).Object == o {
				target = e
			}
		})
		if target != nil {
			if cells := components.Object.Get(target).Cells; len(cells) > 0 {
				s.space.Remove(cells...)
			}
		}
	case interactive.Actor:
		tags.Dynamic.Each(s.world, func(e *donburi.Entry) {
			if target == nil && sameActor(components.Actor.Get(e).Actor, o) {
				target = e
			}
		})
	}

	if target == nil {
		return false
	}
	s.world.Remove(target.Entity())
	return true
}

// Statics returns the static objects. Order is unspecified once objects
// have been removed.
func (s *Scene) Statics() []*interactive.Object {
	var out []*interactive.Object
	tags.Static.Each(s.world, func(e *donburi.Entry) {
		out = append(out, components.Object.Get(e).Object)
	})
	return out
}

// Dynamics returns the dynamic actors.
func (s *Scene) Dynamics() []interactive.Actor {
	var out []interactive.Actor
	tags.Dynamic.Each(s.world, func(e *donburi.Entry) {
		out = append(out, components.Actor.Get(e).Actor)
	})
	return out
}

// ObjectsAtTile returns the static objects occupying a grid tile.
func (s *Scene) ObjectsAtTile(tile gamemath.Point) []*interactive.Object {
	cell := s.space.Cell(int(tile.X), int(tile.Y))
	if cell == nil {
		return nil
	}

	var out []*interactive.Object
	for _, c := range cell.Objects {
		entry, ok := c.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !c.HasTags(tags.ResolvStatic) {
			continue
		}
		o := components.Object.Get(entry).Object
		if o.CheckTile(tile) && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Scene) Start() {
	s.paused = false
}

func (s *Scene) Pause() {
	s.paused = true
}

func (s *Scene) Paused() bool {
	return s.paused
}

// isNil reports whether v is nil or a typed nil pointer, map, slice, func
// or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameActor compares by identity without panicking on non-comparable types.
func sameActor(a, b interactive.Actor) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
