package component

import "github.com/lixenwraith/tachyon/core"

// EngineStats is the singleton frame-rate bookkeeping entity maintained by
// the analysis generator. FPS is the rolling average of full seconds in
// the polling window.
type EngineStats struct {
	FPS          int64
	FrameTimer   *core.Timer
	FrameCounter int64
	FrameCounts  []int64
}
