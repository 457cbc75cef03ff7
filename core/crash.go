package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

var (
	crashMu     sync.Mutex
	resetHooks  []func()
	crashLogger = zap.NewNop()
)

// OnCrashReset registers a hook that restores external state (typically the
// terminal) before a crash report is printed. Hooks run in registration
// order.
func OnCrashReset(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	resetHooks = append(resetHooks, fn)
}

// SetCrashLogger routes crash reports through the given logger in addition
// to stderr. The terminal usually owns stdout, so the logger should write
// elsewhere.
func SetCrashLogger(log *zap.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	if log != nil {
		crashLogger = log
	}
}

// HandleCrash is the unified panic handler: it restores the terminal to a
// sane state, records the panic, and exits. Call with the result of
// recover().
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hooks := make([]func(), len(resetHooks))
	copy(hooks, resetHooks)
	log := crashLogger
	crashMu.Unlock()

	for _, hook := range hooks {
		hook()
	}

	stack := debug.Stack()
	log.Error("crash detected", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = log.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery. Use instead of the
// 'go' keyword so a crash in a background goroutine still cleans up the
// terminal.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
