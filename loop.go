package canopy

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultTargetFPS is the frame rate used when LoopConfig.TargetFPS is zero.
const DefaultTargetFPS = 60

// ErrStopped is returned by Loop.Run after Stop has been called.
var ErrStopped = errors.New("canopy: loop stopped")

// FrameFunc is the per-frame callback, invoked once per frame after update
// and draw. dt and total are in seconds. A returned error is logged and the
// loop keeps running.
type FrameFunc func(dt, total float64) error

// FrameSource paces the loop. Next blocks until the next frame should be
// considered and returns a monotonically increasing timestamp.
type FrameSource interface {
	Next(ctx context.Context) (time.Duration, error)
}

// LoopConfig configures NewLoop.
type LoopConfig struct {
	// TargetFPS throttles the loop. Negative disables throttling so every
	// timestamp runs a frame; zero means DefaultTargetFPS.
	TargetFPS float64
}

func (c LoopConfig) interval() time.Duration {
	switch {
	case c.TargetFPS < 0:
		return 0
	case c.TargetFPS == 0:
		return time.Second / DefaultTargetFPS
	default:
		return time.Duration(float64(time.Second) / c.TargetFPS)
	}
}

// Loop drives a scene frame by frame: update, draw, callback, then clearing
// the input's just-pressed state. All timing state belongs to the loop and is
// reset by Start.
type Loop struct {
	scene    *Scene
	fn       FrameFunc
	interval time.Duration
	logger   *zap.Logger

	started   bool
	lastTime  time.Duration // timestamp of the last frame that ran
	lastFrame time.Duration // throttle reference, aligned to the interval
	total     float64
	frames    uint64

	stopped atomic.Bool
}

// NewLoop creates a frame driver for scene. fn may be nil.
func NewLoop(scene *Scene, fn FrameFunc, cfg LoopConfig) *Loop {
	return &Loop{
		scene:    scene,
		fn:       fn,
		interval: cfg.interval(),
		logger:   scene.logger,
	}
}

// Start resets the timing state with now as the reference time.
func (l *Loop) Start(now time.Duration) {
	l.started = true
	l.lastTime = now
	l.lastFrame = 0
	l.total = 0
	l.frames = 0
}

// Step considers a frame at timestamp now and runs it if more than one frame
// interval has elapsed since the last one. Instead of running several frames
// to catch up, the throttle reference is realigned to now minus the overshoot.
// surface may be nil to skip drawing. Step reports whether a frame ran.
func (l *Loop) Step(now time.Duration, surface Surface) bool {
	if !l.started {
		l.Start(now)
	}
	elapsed := now - l.lastFrame
	if elapsed <= l.interval && l.interval > 0 {
		return false
	}

	dt := (now - l.lastTime).Seconds()
	l.lastTime = now
	l.total += dt
	if l.interval > 0 {
		l.lastFrame = now - elapsed%l.interval
	} else {
		l.lastFrame = now
	}
	l.frames++

	l.runFrame(dt, surface)
	return true
}

// runFrame runs one frame. A panic anywhere in the frame or an error from the
// callback is logged and the frame ends; the loop itself carries on.
func (l *Loop) runFrame(dt float64, surface Surface) {
	defer l.scene.input.PostUpdate()
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("frame panicked",
				zap.Uint64("frame", l.frames),
				zap.Float64("dt", dt),
				zap.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()

	l.scene.Update(dt)
	if surface != nil {
		l.scene.Draw(surface)
		if p, ok := surface.(Presenter); ok {
			p.Present()
		}
	}
	if l.fn != nil {
		if err := l.fn(dt, l.total); err != nil {
			l.logger.Error("frame callback failed",
				zap.Uint64("frame", l.frames),
				zap.Float64("dt", dt),
				zap.Error(err),
			)
		}
	}
}

// Run schedules frames from src until ctx is cancelled, src fails, or Stop is
// called. Cancellation is checked once per scheduled frame.
func (l *Loop) Run(ctx context.Context, src FrameSource, surface Surface) error {
	first, err := src.Next(ctx)
	if err != nil {
		return err
	}
	l.Start(first)

	for {
		if l.stopped.Load() {
			return ErrStopped
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		now, err := src.Next(ctx)
		if err != nil {
			return err
		}
		l.Step(now, surface)
	}
}

// Stop makes Run return before its next frame. A stopped loop stays stopped.
// Safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Total returns the accumulated frame time in seconds.
func (l *Loop) Total() float64 {
	return l.total
}

// Frames returns the number of frames run since Start.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// TickerSource is a FrameSource backed by a time.Ticker. Timestamps are
// measured from the moment the source is created.
type TickerSource struct {
	ticker *time.Ticker
	start  time.Time
}

// NewTickerSource ticks roughly every interval.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval), start: time.Now()}
}

// Next waits for the next tick.
func (t *TickerSource) Next(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-t.ticker.C:
		return time.Since(t.start), nil
	}
}

// Close stops the ticker.
func (t *TickerSource) Close() {
	t.ticker.Stop()
}
