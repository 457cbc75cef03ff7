package core

import "time"

// Timer measures elapsed wall time with explicit start/stop control.
// A stopped timer reports zero elapsed time.
type Timer struct {
	startTime time.Time
	isRunning bool
}

func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Start begins measurement. Has no effect on a timer that is already
// running; the original start instant is kept.
func (t *Timer) Start() {
	t.isRunning = true
}

// Stop halts measurement. Elapsed methods report zero until restarted.
func (t *Timer) Stop() {
	t.isRunning = false
}

// Restart zeroes the elapsed time and leaves the timer running.
func (t *Timer) Restart() {
	t.startTime = time.Now()
	t.isRunning = true
}

func (t *Timer) IsRunning() bool { return t.isRunning }

// Elapsed returns the time since the last restart, or zero when stopped.
func (t *Timer) Elapsed() time.Duration {
	if !t.isRunning {
		return 0
	}
	return time.Since(t.startTime)
}

func (t *Timer) ElapsedMillis() int64 {
	return t.Elapsed().Milliseconds()
}

func (t *Timer) ElapsedSeconds() int64 {
	return int64(t.Elapsed().Seconds())
}
