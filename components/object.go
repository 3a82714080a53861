package components

import (
	"github.com/automoto/tilescene/interactive"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a static scene member to its entry in the tile index.
type ObjectData struct {
	*interactive.Object
	Cells []*resolv.Object // one per occupied tile, registered in the scene's resolv.Space
}

var Object = donburi.NewComponentType[ObjectData]()
