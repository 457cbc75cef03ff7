package core

import "math"

// Layer decides draw order when two renderable entities occupy the same
// cell. Higher layers draw on top.
type Layer int32

const (
	LayerBase                Layer = 0
	LayerFurthestBackground  Layer = math.MinInt32
	LayerFurthestForeground  Layer = math.MaxInt32
)

// Above returns a layer that draws on top of l, clamped at the foremost
// layer.
func (l Layer) Above() Layer {
	if l == LayerFurthestForeground {
		return l
	}
	return l + 1
}

// Below returns a layer that draws beneath l, clamped at the furthest
// background.
func (l Layer) Below() Layer {
	if l == LayerFurthestBackground {
		return l
	}
	return l - 1
}

func (l Layer) IsAbove(other Layer) bool { return l > other }
func (l Layer) IsBelow(other Layer) bool { return l < other }
func (l Layer) IsWith(other Layer) bool  { return l == other }
