// Package audio is a small tone synthesizer service built on beep. The
// host injects a Player into the scheduler's service bag; systems fetch
// it with FromArgs and cue tones from their operators.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tachyon/engine"
)

// ServiceKey is the bag key the host injects the Player under.
const ServiceKey = "audio"

const sampleRate = beep.SampleRate(48000)

// FromArgs fetches the injected Player. Panics when the host never
// injected one; systems that treat audio as optional should use
// engine.ServiceOpt instead.
func FromArgs(args *engine.Args) *Player {
	return engine.Service[*Player](args, ServiceKey)
}

// Player mixes generated tones into one speaker stream. Safe to cue from
// systems every frame; cues on an uninitialized or muted player are
// silently dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize claims the speaker. Failure leaves the player in its
// dropping state, so a machine without audio still runs the game.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close; clearing
// the mixer is as far as beep lets us tear down.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// PlayTone cues a sine tone at the given frequency for the given duration.
func (p *Player) PlayTone(freq float64, duration time.Duration) {
	p.cue(beep.Take(sampleRate.N(duration), newToneGenerator(sampleRate, freq)))
}

// PlaySweep cues a tone gliding from one frequency to another.
func (p *Player) PlaySweep(from, to float64, duration time.Duration) {
	p.cue(beep.Take(sampleRate.N(duration), newSweepGenerator(sampleRate, from, to, duration)))
}

func (p *Player) cue(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns true when sound is now on.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return !p.muted
}

func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// toneGenerator produces a fixed-frequency sine with a short attack so
// cues never click.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/0.02, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// sweepGenerator glides linearly between two frequencies over its span.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
	phase    float64
}

func newSweepGenerator(sr beep.SampleRate, from, to float64, duration time.Duration) *sweepGenerator {
	return &sweepGenerator{
		sr:   sr,
		from: from,
		to:   to,
		span: sr.N(duration),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
