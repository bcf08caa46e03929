// Package casement opens a native desktop window through a dynamically
// loaded SDL2 library and binds a WebGPU presentation surface to it. It
// covers the lifecycle from library load to ordered shutdown: window
// creation, window-manager handle decoding, surface configuration, and the
// event-pump/render loop. Rendering itself belongs to the caller, either as
// a per-frame driver function or a scheduler that owns presentation.
package casement

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/casement-gl/casement/internal/sdl"
)

// Config configures the application window.
type Config struct {
	// Title is the native window title.
	Title string
	// Width and Height are the target surface dimensions in pixels.
	Width  int
	Height int
	// LibPath overrides SDL2 library resolution. Empty means resolve
	// normally (CASEMENT_SDL2_PATH, then platform probing).
	LibPath string
}

// DefaultConfig returns sensible defaults for a new window.
func DefaultConfig() Config {
	return Config{Title: "casement", Width: 800, Height: 600}
}

// App owns the bridge between one native window and its WebGPU
// presentation surface: the loaded library, the window and its auxiliary
// view, the GPU context, and the loop controller. Create with New, drive
// with Run or RunScheduled; shutdown is unconditional and runs exactly once
// whichever way the loop exits.
type App struct {
	cfg     Config
	drv     nativeDriver
	win     nativeWindow
	handles surfaceHandles
	surface *wgpu.Surface
	gpu     *gpuContext
	ctx     *PresentationContext
	loop    *Loop

	closeOnce sync.Once
}

// New performs the whole startup pipeline: load library, init video,
// create window, derive and configure the presentation surface, negotiate
// adapter and device. Every failure is fatal; resources created before the
// failing step are torn down before returning.
func New(cfg Config) (*App, error) {
	// SDL's video subsystem and Metal both require the main thread.
	runtime.LockOSThread()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.Title == "" {
		cfg.Title = DefaultConfig().Title
	}

	lib, err := sdl.Load(cfg.LibPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibraryLoad, err)
	}
	if err := lib.InitVideo(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibraryLoad, err)
	}
	logger().Info("windowing library loaded",
		"path", lib.Path(), "version", lib.Version().String())

	return newApp(cfg, lib, runtime.GOOS)
}

// newApp continues startup on an already-initialized driver. Split from New
// so the window/surface/loop pipeline is testable with a stub driver.
func newApp(cfg Config, drv nativeDriver, goos string) (*App, error) {
	a := &App{cfg: cfg, drv: drv}

	win, err := createWindow(drv, goos, cfg.Title, int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		drv.Quit()
		return nil, err
	}
	a.win = win

	instance := wgpu.CreateInstance(nil)
	surface, handles, err := createSurface(instance, drv, goos, win)
	if err != nil {
		instance.Release()
		a.Close()
		return nil, err
	}
	a.surface = surface
	a.handles = handles

	gpu, err := newGPUContext(instance, surface)
	if err != nil {
		instance.Release()
		a.Close()
		return nil, err
	}
	a.gpu = gpu

	ctx, err := configureContext(drv, win, surface, gpu, int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.ctx = ctx
	a.loop = newLoop(drv)
	return a, nil
}

// Run drives the loop in imperative mode: drive renders and presents each
// frame. It returns nil on a clean quit and the frame error when the loop
// stopped on a failed frame; shutdown has completed either way.
func (a *App) Run(drive FrameDriver) error {
	defer a.Close()
	return a.loop.run(func() error { return drive(a.loop.frames) })
}

// RunScheduled drives the loop in declarative mode: the loop pumps events
// and defers rendering and presentation to the scheduler's scene layer.
func (a *App) RunScheduled(s Scheduler) error {
	defer a.Close()
	return a.loop.run(func() error { return s.Frame(a.loop) })
}

// Close tears external resources down in order: Metal view, window, then
// library quit. Idempotent; every exit path of Run funnels here, as do
// startup failures after window creation.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.gpu != nil {
			a.gpu.release()
		}
		if a.win.view != 0 {
			a.drv.MetalDestroyView(a.win.view)
		}
		if a.win.handle != 0 {
			a.drv.DestroyWindow(a.win.handle)
		}
		a.drv.Quit()
		logger().Info("shutdown complete")
	})
}

// Context returns the configured presentation context.
func (a *App) Context() *PresentationContext { return a.ctx }

// Device returns the GPU device for the rendering backend.
func (a *App) Device() *wgpu.Device { return a.gpu.device }

// Queue returns the GPU submission queue.
func (a *App) Queue() *wgpu.Queue { return a.gpu.queue }

// Loop returns the loop controller, for hooks that need RequestStop.
func (a *App) Loop() *Loop { return a.loop }

// System returns the windowing subsystem the surface is bound to.
func (a *App) System() Subsystem { return a.handles.System }
