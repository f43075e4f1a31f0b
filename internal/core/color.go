package core

// Color represents a foreground color for a screen cell.
// The terminal frontend maps these to ANSI 256-color codes.
type Color uint8

// Palette for the swamp scene.
const (
	ColorDefault  Color = iota
	ColorCapy           // tan fur
	ColorCapyDark       // dark brown outline and legs
	ColorTree           // dark cypress green
	ColorTreeEdge       // highlight on tree edges
	ColorHeart          // deep pink
	ColorWater          // murky water ripples
	ColorMist           // light mist
	ColorGround         // swamp floor
	ColorText           // HUD text
	ColorGold           // record banners
	ColorDim            // secondary HUD text
)
