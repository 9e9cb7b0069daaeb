package render

import (
	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/terrain"
)

// Scene colors
var (
	RgbSky      = RGB{10, 14, 40}
	RgbHorizon  = RGB{60, 80, 140}
	RgbStar     = RGB{200, 200, 220}
	RgbLowland  = RGB{40, 110, 50}
	RgbHighland = RGB{140, 120, 90}
	RgbPeak     = RGB{230, 230, 235}

	RgbTree     = RGB{20, 150, 40}
	RgbRock     = RGB{130, 130, 130}
	RgbAircraft = RGB{255, 165, 0}
	RgbWhite    = RGB{255, 255, 255}
)

// Obstacle colors per kind
var obstacleColors = [component.ShapeKindCount]RGB{
	component.ShapeRing:     {255, 80, 80},
	component.ShapeWall:     {100, 150, 255},
	component.ShapePoly:     {255, 255, 0},
	component.ShapeCombined: {200, 100, 255},
}

// UI colors, converted once from the RGB palette
var (
	RgbHUD       = RGBToTcell(RgbWhite)
	RgbHUDDim    = RGBToTcell(RGB{180, 180, 180})
	RgbGameOver  = RGBToTcell(obstacleColors[component.ShapeRing])
	RgbHighScore = RGBToTcell(RGB{255, 215, 0})
	RgbPanelBg   = RGBToTcell(RGB{20, 20, 30})
)

// TerrainColor grades ground color by normalized height
// A flat mesh (min == max) is drawn as lowland
func TerrainColor(h, minH, maxH float64) RGB {
	if maxH <= minH {
		return RgbLowland
	}
	t := (h - minH) / (maxH - minH)
	if t < 0.6 {
		return Lerp(RgbLowland, RgbHighland, t/0.6)
	}
	return Lerp(RgbHighland, RgbPeak, (t-0.6)/0.4)
}

// ObstacleColor returns the base color for an obstacle kind
func ObstacleColor(k component.ShapeKind) RGB {
	if int(k) >= len(obstacleColors) {
		return RgbWhite
	}
	return obstacleColors[k]
}

// DecorationColor returns the base color for a decoration kind
func DecorationColor(k terrain.DecorationKind) RGB {
	if k == terrain.DecorationTree {
		return RgbTree
	}
	return RgbRock
}

// Fog fades c toward the horizon color with depth, fully fogged at far
func Fog(c RGB, depth, far float64) RGB {
	if far <= 0 {
		return c
	}
	return Blend(c, RgbHorizon, depth/far)
}
