package archetypes

import (
	"slices"

	"github.com/automoto/tilescene/components"
	"github.com/automoto/tilescene/tags"
	"github.com/yohamta/donburi"
)

var (
	Static = newArchetype(
		tags.Static,
		components.Object,
	)
	Dynamic = newArchetype(
		tags.Dynamic,
		components.Actor,
	)
	Hero = newArchetype(
		tags.Hero,
		components.Actor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
