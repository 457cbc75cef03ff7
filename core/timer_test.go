package core

import (
	"testing"
	"time"
)

func TestTimerStoppedReportsZero(t *testing.T) {
	timer := NewTimer()
	time.Sleep(2 * time.Millisecond)
	if got := timer.Elapsed(); got != 0 {
		t.Errorf("stopped timer reported %v", got)
	}
}

func TestTimerMeasuresWhileRunning(t *testing.T) {
	timer := NewTimer()
	timer.Restart()
	time.Sleep(5 * time.Millisecond)
	if got := timer.ElapsedMillis(); got < 5 {
		t.Errorf("expected at least 5ms, got %dms", got)
	}
	timer.Stop()
	if got := timer.Elapsed(); got != 0 {
		t.Errorf("timer reported %v after Stop", got)
	}
}

func TestTimerRestartZeroes(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	time.Sleep(5 * time.Millisecond)
	timer.Restart()
	if got := timer.ElapsedMillis(); got > 3 {
		t.Errorf("restart did not zero elapsed time: %dms", got)
	}
	if !timer.IsRunning() {
		t.Error("timer should keep running after Restart")
	}
}

func TestRgbBlend(t *testing.T) {
	base := Rgb{R: 0, G: 0, B: 0}
	if got := base.Blend(RgbWhite, 0); got != base {
		t.Errorf("alpha 0 should keep dst, got %+v", got)
	}
	if got := base.Blend(RgbWhite, 1); got != RgbWhite {
		t.Errorf("alpha 1 should take src, got %+v", got)
	}
	mid := base.Blend(RgbWhite, 0.5)
	if mid.R < 126 || mid.R > 128 {
		t.Errorf("expected midpoint near 127, got %+v", mid)
	}
}

func TestRgbLerpEndpoints(t *testing.T) {
	if got := RgbRed.Lerp(RgbBlue, 0); got != RgbRed {
		t.Errorf("t=0 should return receiver, got %+v", got)
	}
	if got := RgbRed.Lerp(RgbBlue, 1); got != RgbBlue {
		t.Errorf("t=1 should return target, got %+v", got)
	}
}

func TestRgbScale(t *testing.T) {
	c := Rgb{R: 100, G: 200, B: 50}
	if got := c.Scale(0); got != RgbBlack {
		t.Errorf("scale 0 should black out, got %+v", got)
	}
	if got := c.Scale(1); got != c {
		t.Errorf("scale 1 should be identity, got %+v", got)
	}
	half := c.Scale(0.5)
	if half.R != 50 || half.G != 100 || half.B != 25 {
		t.Errorf("scale 0.5 = %+v", half)
	}
}
