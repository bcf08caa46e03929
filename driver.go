package casement

import "github.com/casement-gl/casement/internal/sdl"

// nativeDriver is the slice of the SDL binding the bridge touches. *sdl.Lib
// implements it; tests substitute a scripted stub so windowing, surface
// derivation, the loop, and shutdown can be exercised without the native
// library present.
type nativeDriver interface {
	Version() sdl.Version
	CreateWindow(title string, x, y, w, h int32, flags uint32) (sdl.Window, error)
	DestroyWindow(sdl.Window)
	SetWindowSize(w sdl.Window, width, height int32)
	WindowManagerInfo(sdl.Window) (*sdl.WMInfo, error)
	PollEvent(*sdl.Event) bool
	MetalCreateView(sdl.Window) sdl.MetalView
	MetalGetLayer(sdl.MetalView) uintptr
	MetalDestroyView(sdl.MetalView)
	Quit()
}

var _ nativeDriver = (*sdl.Lib)(nil)
