package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; renderers draw in the order they are added.
const Default ecs.LayerID = 0
