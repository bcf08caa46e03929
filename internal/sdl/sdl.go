// Package sdl provides Go bindings to the SDL2 windowing library via purego.
// Only the slice of SDL2 that the casement bridge needs is bound: video init,
// window lifetime, the event queue, the window-manager info query, and the
// Metal view helpers used on macOS. No CGo is involved, so the binding
// cross-compiles and the library is resolved at process start.
package sdl

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Subsystem init flags (SDL_INIT_*).
const (
	InitVideo uint32 = 0x00000020
)

// Window creation flags (SDL_WINDOW_*).
const (
	WindowShown     uint32 = 0x00000004
	WindowResizable uint32 = 0x00000020
)

// Window position sentinels. SDL interprets these magic values instead of
// treating them as coordinates.
const (
	WindowPosUndefined int32 = 0x1FFF0000
	WindowPosCentered  int32 = 0x2FFF0000
)

// Window is an opaque, non-owning reference to a native SDL window. It must
// only be handed back to the library that produced it.
type Window uintptr

// MetalView is an opaque reference to an SDL-created Metal view (macOS only).
type MetalView uintptr

// Version is the library version reported by SDL_GetVersion.
type Version struct {
	Major, Minor, Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Lib is a loaded SDL2 library with its entry points registered. All methods
// must be called from the thread that called Load; SDL's video subsystem is
// not thread-safe.
type Lib struct {
	handle uintptr
	path   string

	init             func(flags uint32) int32
	quit             func()
	createWindow     func(title string, x, y, w, h int32, flags uint32) uintptr
	destroyWindow    func(window uintptr)
	setWindowSize    func(window uintptr, w, h int32)
	getVersion       func(out uintptr)
	getWindowWMInfo  func(window, info uintptr) int32
	pollEvent        func(out uintptr) int32
	getError         func() uintptr
	metalCreateView  func(window uintptr) uintptr
	metalGetLayer    func(view uintptr) uintptr
	metalDestroyView func(view uintptr)
}

// Load resolves and opens the SDL2 dynamic library and registers every
// required entry point. pathOverride, when non-empty, bypasses resolution
// entirely. A missing library or missing required symbol is an error; the
// caller is expected to treat it as fatal.
func Load(pathOverride string) (*Lib, error) {
	path := resolveLibraryPath(pathOverride)

	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("sdl: load %q: %w", path, err)
	}

	l := &Lib{handle: handle, path: path}
	if err := l.register(); err != nil {
		return nil, fmt.Errorf("sdl: %q: %w", path, err)
	}
	return l, nil
}

// register binds all required entry points. purego panics on a missing
// symbol, which we convert into an error so startup can abort cleanly.
func (l *Lib) register() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("missing required symbol: %v", r)
		}
	}()

	purego.RegisterLibFunc(&l.init, l.handle, "SDL_Init")
	purego.RegisterLibFunc(&l.quit, l.handle, "SDL_Quit")
	purego.RegisterLibFunc(&l.createWindow, l.handle, "SDL_CreateWindow")
	purego.RegisterLibFunc(&l.destroyWindow, l.handle, "SDL_DestroyWindow")
	purego.RegisterLibFunc(&l.setWindowSize, l.handle, "SDL_SetWindowSize")
	purego.RegisterLibFunc(&l.getVersion, l.handle, "SDL_GetVersion")
	purego.RegisterLibFunc(&l.getWindowWMInfo, l.handle, "SDL_GetWindowWMInfo")
	purego.RegisterLibFunc(&l.pollEvent, l.handle, "SDL_PollEvent")
	purego.RegisterLibFunc(&l.getError, l.handle, "SDL_GetError")

	// The Metal helpers only exist in darwin builds of SDL2.
	if runtime.GOOS == "darwin" {
		purego.RegisterLibFunc(&l.metalCreateView, l.handle, "SDL_Metal_CreateView")
		purego.RegisterLibFunc(&l.metalGetLayer, l.handle, "SDL_Metal_GetLayer")
		purego.RegisterLibFunc(&l.metalDestroyView, l.handle, "SDL_Metal_DestroyView")
	}
	return nil
}

// Path returns the path the library was actually loaded from.
func (l *Lib) Path() string { return l.path }

// InitVideo initializes SDL's video subsystem.
func (l *Lib) InitVideo() error {
	if rc := l.init(InitVideo); rc != 0 {
		return fmt.Errorf("sdl: SDL_Init: %s", l.lastError())
	}
	return nil
}

// Quit shuts the library down. Must be the last call into the library.
func (l *Lib) Quit() { l.quit() }

// CreateWindow creates a native window. A null handle from SDL is an error.
func (l *Lib) CreateWindow(title string, x, y, w, h int32, flags uint32) (Window, error) {
	handle := l.createWindow(title, x, y, w, h, flags)
	if handle == 0 {
		return 0, fmt.Errorf("sdl: SDL_CreateWindow: %s", l.lastError())
	}
	return Window(handle), nil
}

// DestroyWindow releases a window created by CreateWindow.
func (l *Lib) DestroyWindow(w Window) { l.destroyWindow(uintptr(w)) }

// SetWindowSize resizes the window's client area.
func (l *Lib) SetWindowSize(w Window, width, height int32) {
	l.setWindowSize(uintptr(w), width, height)
}

// Version reports the runtime version of the loaded library.
func (l *Lib) Version() Version {
	var buf [3]byte
	l.getVersion(uintptr(unsafe.Pointer(&buf[0])))
	return Version{Major: buf[0], Minor: buf[1], Patch: buf[2]}
}

// WindowManagerInfo queries the window-manager info record for a window.
// The record is seeded with the library's reported version first; SDL
// refuses the query (or fills garbage) otherwise.
func (l *Lib) WindowManagerInfo(w Window) (*WMInfo, error) {
	info := NewWMInfo(l.Version())
	ok := l.getWindowWMInfo(uintptr(w), uintptr(unsafe.Pointer(&info.buf[0])))
	if ok != 1 {
		return nil, fmt.Errorf("sdl: SDL_GetWindowWMInfo: %s", l.lastError())
	}
	return info, nil
}

// PollEvent dequeues one pending event into e. It reports false when the
// queue is empty. The event buffer is reused by callers across iterations;
// it must not be shared between threads.
func (l *Lib) PollEvent(e *Event) bool {
	return l.pollEvent(uintptr(unsafe.Pointer(&e.buf[0]))) == 1
}

// MetalCreateView attaches a Metal-backed view to the window (macOS only).
// Returns 0 when unavailable; the surface factory decides whether that is
// fatal.
func (l *Lib) MetalCreateView(w Window) MetalView {
	if l.metalCreateView == nil {
		return 0
	}
	return MetalView(l.metalCreateView(uintptr(w)))
}

// MetalGetLayer returns the CAMetalLayer backing a Metal view.
func (l *Lib) MetalGetLayer(v MetalView) uintptr {
	if l.metalGetLayer == nil {
		return 0
	}
	return l.metalGetLayer(uintptr(v))
}

// MetalDestroyView releases a view created by MetalCreateView.
func (l *Lib) MetalDestroyView(v MetalView) {
	if l.metalDestroyView != nil {
		l.metalDestroyView(uintptr(v))
	}
}

func (l *Lib) lastError() string {
	return goString(l.getError())
}

// goString converts a NUL-terminated C string pointer to a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > 1<<16 {
			break
		}
	}
	if length == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(out)
}
