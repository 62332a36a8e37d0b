package components

import "github.com/automoto/doomerang-arena/shared/gamemath"

// Vector represents a 2D vector.
type Vector = gamemath.Vector
