// Package haptic emulates the vibration motor as timed on/off pulses.
package haptic

import (
	"context"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	On     time.Duration
	Off    time.Duration
	Pulses int
}

// DefaultConfig matches a single firmware buzz.
func DefaultConfig() Config {
	return Config{
		On:     200 * time.Millisecond,
		Off:    100 * time.Millisecond,
		Pulses: 1,
	}
}

// Engine drives setActive through pulse sequences. A new buzz cancels
// the one in progress.
type Engine struct {
	mu        sync.Mutex
	config    Config
	setActive func(bool)
	cancel    context.CancelFunc
}

// New creates a pulse engine.
func New(config Config, setActive func(bool)) *Engine {
	if config.Pulses <= 0 {
		config.Pulses = 1
	}
	return &Engine{
		config:    config,
		setActive: setActive,
	}
}

// Buzz starts a pulse sequence.
func (engine *Engine) Buzz() {
	engine.start(context.Background(), func(runCtx context.Context) {
		for i := 0; i < engine.config.Pulses; i++ {
			engine.setActive(true)
			if !sleepWithContext(runCtx, engine.config.On) {
				return
			}
			engine.setActive(false)
			if i < engine.config.Pulses-1 && !sleepWithContext(runCtx, engine.config.Off) {
				return
			}
		}
	})
}

// Stop cancels any pulse sequence and leaves the motor off.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
		engine.setActive(false)
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
