package casement

import (
	"errors"

	"github.com/casement-gl/casement/internal/sdl"
)

// stubDriver is a scripted nativeDriver. Each call is recorded so tests
// can assert ordering and invocation counts; queued events are handed out
// one per PollEvent call.
type stubDriver struct {
	info    *sdl.WMInfo
	infoErr error

	events []uint32 // event discriminants handed out in order

	createErr  error
	metalView  sdl.MetalView
	metalLayer uintptr

	calls         []string
	destroyCount  int
	quitCount     int
	viewDestroyed int
}

func newStubDriver() *stubDriver {
	return &stubDriver{}
}

func (d *stubDriver) record(name string) { d.calls = append(d.calls, name) }

func (d *stubDriver) Version() sdl.Version {
	return sdl.Version{Major: 2, Minor: 30, Patch: 0}
}

func (d *stubDriver) CreateWindow(title string, x, y, w, h int32, flags uint32) (sdl.Window, error) {
	d.record("CreateWindow")
	if d.createErr != nil {
		return 0, d.createErr
	}
	return sdl.Window(0x1000), nil
}

func (d *stubDriver) DestroyWindow(w sdl.Window) {
	d.record("DestroyWindow")
	d.destroyCount++
}

func (d *stubDriver) SetWindowSize(w sdl.Window, width, height int32) {
	d.record("SetWindowSize")
}

func (d *stubDriver) WindowManagerInfo(w sdl.Window) (*sdl.WMInfo, error) {
	d.record("WindowManagerInfo")
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	if d.info == nil {
		return nil, errors.New("no wm info scripted")
	}
	return d.info, nil
}

func (d *stubDriver) PollEvent(ev *sdl.Event) bool {
	if len(d.events) == 0 {
		return false
	}
	ev.SetType(d.events[0])
	d.events = d.events[1:]
	return true
}

func (d *stubDriver) MetalCreateView(w sdl.Window) sdl.MetalView {
	d.record("MetalCreateView")
	return d.metalView
}

func (d *stubDriver) MetalGetLayer(v sdl.MetalView) uintptr {
	d.record("MetalGetLayer")
	return d.metalLayer
}

func (d *stubDriver) MetalDestroyView(v sdl.MetalView) {
	d.record("MetalDestroyView")
	d.viewDestroyed++
}

func (d *stubDriver) Quit() {
	d.record("Quit")
	d.quitCount++
}

// scriptedInfo builds a wm-info record with the given discriminant and
// union handles written at the documented offsets.
func scriptedInfo(subsystem uint32, first, second uint64) *sdl.WMInfo {
	info := sdl.NewWMInfo(sdl.Version{Major: 2, Minor: 30})
	info.SetSubsystem(subsystem)
	info.SetHandle(8, first)
	switch subsystem {
	case sdl.SubsystemWindows:
		info.SetHandle(8+sdl.PtrSize+8, second)
	case sdl.SubsystemX11, sdl.SubsystemWayland:
		info.SetHandle(8+sdl.PtrSize, second)
	}
	return info
}
