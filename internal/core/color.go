package core

// Color represents a foreground color for a screen cell.
// The terminal layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette for the map view.
const (
	ColorDefault Color = iota
	ColorDeepSea
	ColorShallow
	ColorSand
	ColorGrass
	ColorForest
	ColorRock
	ColorSnow
	ColorPad
	ColorBasePad
	ColorBuilding
	ColorTree
	ColorCrate
	ColorRefugee
	ColorHeli
	ColorRope
	ColorCyclone
	ColorPlane
	ColorHUD
	ColorAlert
	ColorDim
)
