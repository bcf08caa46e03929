package casement

import (
	"time"

	"github.com/casement-gl/casement/internal/sdl"
)

// FrameDriver performs one frame of work in imperative mode: scene update,
// draw submission, and presentation. frame is the zero-based frame counter.
// Returning an error stops the loop; shutdown still runs.
type FrameDriver func(frame uint64) error

// Scheduler drives rendering in declarative mode: the loop only pumps
// events and hands the controller to the scene layer once per iteration.
// The scene layer's own post-render hook performs presentation and may call
// RequestStop on the controller.
type Scheduler interface {
	Frame(loop *Loop) error
}

// Loop is the event-pump/render loop controller. It replaces a shared
// mutable running flag: anything that needs to end the loop, whether the
// quit event, a failed present, or an externally registered hook, goes
// through RequestStop, and the loop queries the state once per iteration.
//
// The loop is single-threaded: the event buffer is reused across poll calls
// and must not be touched while a native call writes it.
type Loop struct {
	drv     nativeDriver
	running bool
	frames  uint64
	yield   time.Duration
	event   sdl.Event
}

func newLoop(drv nativeDriver) *Loop {
	return &Loop{drv: drv, running: true, yield: time.Millisecond}
}

// RequestStop asks the loop to exit after the current iteration.
func (l *Loop) RequestStop() { l.running = false }

// Running reports whether the loop will run another iteration.
func (l *Loop) Running() bool { return l.running }

// Frames returns the number of completed frame ticks.
func (l *Loop) Frames() uint64 { return l.frames }

// run pumps events and invokes tick once per iteration until stopped. Each
// iteration fully drains the queued events, performs at most one tick, then
// yields briefly so an idle loop does not peg a core while still polling
// promptly. A tick error is logged, stops the loop, and is returned so the
// process can exit non-zero after shutdown.
func (l *Loop) run(tick func() error) error {
	logger().Info("entering main loop")
	for l.running {
		l.drainEvents()
		if !l.running {
			break
		}
		if err := tick(); err != nil {
			logger().Error("frame failed, stopping loop", "frame", l.frames, "err", err)
			l.RequestStop()
			return err
		}
		l.frames++
		time.Sleep(l.yield)
	}
	logger().Info("main loop stopped", "frames", l.frames)
	return nil
}

// drainEvents empties the native event queue. A quit discriminant stops the
// loop; all events queued before it in the same drain pass are still seen.
func (l *Loop) drainEvents() {
	for l.drv.PollEvent(&l.event) {
		if l.event.Type() == sdl.EventQuit {
			logger().Info("quit event received")
			l.RequestStop()
			break
		}
	}
}
