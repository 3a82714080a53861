package tags

import "github.com/yohamta/donburi"

var (
	Static  = donburi.NewTag().SetName("Static")
	Dynamic = donburi.NewTag().SetName("Dynamic")
	Hero    = donburi.NewTag().SetName("Hero")
)

// Resolv tags for the tile-occupancy index
const (
	ResolvStatic = "static"
)
