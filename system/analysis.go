package system

import (
	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
)

// fpsWindowSeconds is how many full seconds the FPS average looks back.
const fpsWindowSeconds = 10

// AnalysisGenerator maintains the EngineStats singleton: a frame counter
// bucketed per second, averaged over a rolling window. Games read it with
// a Has[EngineStats] query; the stats overlay in cmd/demo does exactly
// that.
type AnalysisGenerator struct{}

func NewAnalysisGenerator() *AnalysisGenerator {
	return &AnalysisGenerator{}
}

func (g *AnalysisGenerator) Generate() []engine.PhasedSystem {
	stats := engine.Has[component.EngineStats](engine.NewQuery())

	return []engine.PhasedSystem{
		{
			Phase: engine.PhaseInit,
			System: engine.NewSystem(nil,
				func(_ []engine.ResultList, args *engine.Args) {
					timer := core.NewTimer()
					timer.Start()
					args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
						&component.EngineStats{FrameTimer: timer},
					}})
				}).Named("analysis-init"),
		},
		{
			Phase: engine.PhaseBeforeUpdate,
			System: engine.NewSystemWithPriority(core.PriorityHighest,
				[]*engine.Query{stats}, tallyFrame).Named("analysis-tally"),
		},
	}
}

func tallyFrame(results []engine.ResultList, _ *engine.Args) {
	if len(results[0]) == 0 {
		return // init commands not applied yet
	}
	stats := engine.Get[component.EngineStats](results[0].Single())
	stats.FrameCounter++

	if stats.FrameTimer.ElapsedSeconds() < 1 {
		return
	}
	stats.FrameTimer.Restart()
	stats.FrameCounts = append(stats.FrameCounts, stats.FrameCounter)
	stats.FrameCounter = 0
	if len(stats.FrameCounts) > fpsWindowSeconds {
		stats.FrameCounts = stats.FrameCounts[len(stats.FrameCounts)-fpsWindowSeconds:]
	}

	var total int64
	for _, n := range stats.FrameCounts {
		total += n
	}
	stats.FPS = total / int64(len(stats.FrameCounts))
}
