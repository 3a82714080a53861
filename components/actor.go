package components

import (
	"github.com/automoto/tilescene/interactive"
	"github.com/yohamta/donburi"
)

// ActorData holds a dynamic scene member or the hero. The scene only reads
// it; the actor's own controller moves it.
type ActorData struct {
	interactive.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
