package world

// Tile is a terrain id. Zero is empty; every other id is solid.
type Tile uint16

// Built-in tile ids
const (
	Empty Tile = 0
	Dirt  Tile = 1
	Stone Tile = 2
	Grass Tile = 4
)

// Solid reports whether t blocks movement and attenuates light harder
func Solid(t Tile) bool {
	return t != Empty
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
