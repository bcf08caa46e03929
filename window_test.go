package casement

import (
	"errors"
	"testing"

	"github.com/casement-gl/casement/internal/sdl"
)

func TestSurfaceHandlesForValid(t *testing.T) {
	cases := []struct {
		name      string
		goos      string
		tag       uint32
		first     uint64
		second    uint64
		system    Subsystem
		checkFn   func(h surfaceHandles) (uintptr, uintptr)
		wantFirst uintptr
		wantSec   uintptr
	}{
		{
			name: "cocoa on darwin", goos: "darwin", tag: sdl.SubsystemCocoa,
			first: 0xA1, system: SubsystemCocoa,
			checkFn:   func(h surfaceHandles) (uintptr, uintptr) { return h.view, 0 },
			wantFirst: 0xA1,
		},
		{
			name: "win32 on windows", goos: "windows", tag: sdl.SubsystemWindows,
			first: 0xB1, second: 0xB2, system: SubsystemWin32,
			checkFn:   func(h surfaceHandles) (uintptr, uintptr) { return h.hwnd, h.hinstance },
			wantFirst: 0xB1, wantSec: 0xB2,
		},
		{
			name: "x11 on linux", goos: "linux", tag: sdl.SubsystemX11,
			first: 0xC1, second: 0xC2, system: SubsystemX11,
			checkFn:   func(h surfaceHandles) (uintptr, uintptr) { return h.display, h.window },
			wantFirst: 0xC1, wantSec: 0xC2,
		},
		{
			name: "wayland on linux", goos: "linux", tag: sdl.SubsystemWayland,
			first: 0xD1, second: 0xD2, system: SubsystemWayland,
			checkFn:   func(h surfaceHandles) (uintptr, uintptr) { return h.display, h.window },
			wantFirst: 0xD1, wantSec: 0xD2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := scriptedInfo(tc.tag, tc.first, tc.second)
			h, err := surfaceHandlesFor(tc.goos, info)
			if err != nil {
				t.Fatalf("surfaceHandlesFor: %v", err)
			}
			if h.System != tc.system {
				t.Fatalf("system = %q, want %q", h.System, tc.system)
			}
			first, second := tc.checkFn(h)
			if first != tc.wantFirst || second != tc.wantSec {
				t.Fatalf("handles = %#x, %#x; want %#x, %#x",
					first, second, tc.wantFirst, tc.wantSec)
			}
		})
	}
}

func TestSurfaceHandlesForMismatch(t *testing.T) {
	cases := []struct {
		name string
		goos string
		tag  uint32
	}{
		{"cocoa on linux", "linux", sdl.SubsystemCocoa},
		{"cocoa on windows", "windows", sdl.SubsystemCocoa},
		{"win32 on darwin", "darwin", sdl.SubsystemWindows},
		{"win32 on linux", "linux", sdl.SubsystemWindows},
		{"x11 on darwin", "darwin", sdl.SubsystemX11},
		{"x11 on windows", "windows", sdl.SubsystemX11},
		{"wayland on darwin", "darwin", sdl.SubsystemWayland},
		{"wayland on windows", "windows", sdl.SubsystemWayland},
		{"unknown on linux", "linux", sdl.SubsystemUnknown},
		{"unmapped discriminant", "linux", 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := scriptedInfo(tc.tag, 0x10, 0x20)
			if _, err := surfaceHandlesFor(tc.goos, info); !errors.Is(err, ErrSubsystem) {
				t.Fatalf("err = %v, want ErrSubsystem", err)
			}
		})
	}
}

func TestDescriptorSelectsUnionMember(t *testing.T) {
	t.Run("cocoa uses metal layer", func(t *testing.T) {
		h := surfaceHandles{System: SubsystemCocoa, view: 0xA1}
		desc, err := h.descriptor(0xFEED)
		if err != nil {
			t.Fatalf("descriptor: %v", err)
		}
		if desc.MetalLayer == nil {
			t.Fatal("MetalLayer not set")
		}
		if desc.WindowsHWND != nil || desc.XlibWindow != nil || desc.WaylandSurface != nil {
			t.Fatal("unexpected union members set")
		}
	})

	t.Run("cocoa without layer fails", func(t *testing.T) {
		h := surfaceHandles{System: SubsystemCocoa, view: 0xA1}
		if _, err := h.descriptor(0); !errors.Is(err, ErrSurfaceQuery) {
			t.Fatalf("err = %v, want ErrSurfaceQuery", err)
		}
	})

	t.Run("win32", func(t *testing.T) {
		h := surfaceHandles{System: SubsystemWin32, hwnd: 0xB1, hinstance: 0xB2}
		desc, err := h.descriptor(0)
		if err != nil {
			t.Fatalf("descriptor: %v", err)
		}
		if desc.WindowsHWND == nil {
			t.Fatal("WindowsHWND not set")
		}
		if uintptr(desc.WindowsHWND.Hwnd) != 0xB1 || uintptr(desc.WindowsHWND.Hinstance) != 0xB2 {
			t.Fatalf("hwnd/hinstance = %#x/%#x",
				uintptr(desc.WindowsHWND.Hwnd), uintptr(desc.WindowsHWND.Hinstance))
		}
	})

	t.Run("x11", func(t *testing.T) {
		// XIDs occupy the full 32-bit range.
		h := surfaceHandles{System: SubsystemX11, display: 0xC1, window: 0xFFFFFFF0}
		desc, err := h.descriptor(0)
		if err != nil {
			t.Fatalf("descriptor: %v", err)
		}
		if desc.XlibWindow == nil {
			t.Fatal("XlibWindow not set")
		}
		if uintptr(desc.XlibWindow.Display) != 0xC1 || desc.XlibWindow.Window != 0xFFFFFFF0 {
			t.Fatalf("display/window = %#x/%#x",
				uintptr(desc.XlibWindow.Display), desc.XlibWindow.Window)
		}
	})

	t.Run("wayland", func(t *testing.T) {
		h := surfaceHandles{System: SubsystemWayland, display: 0xD1, window: 0xD2}
		desc, err := h.descriptor(0)
		if err != nil {
			t.Fatalf("descriptor: %v", err)
		}
		if desc.WaylandSurface == nil {
			t.Fatal("WaylandSurface not set")
		}
		if uintptr(desc.WaylandSurface.Display) != 0xD1 || uintptr(desc.WaylandSurface.Surface) != 0xD2 {
			t.Fatalf("display/surface = %#x/%#x",
				uintptr(desc.WaylandSurface.Display), uintptr(desc.WaylandSurface.Surface))
		}
	})
}

func TestSurfaceSpecEndToEnd(t *testing.T) {
	t.Run("cocoa", func(t *testing.T) {
		drv := newStubDriver()
		drv.info = scriptedInfo(sdl.SubsystemCocoa, 0xA1, 0)
		drv.metalView = sdl.MetalView(0x2000)
		drv.metalLayer = 0xFEED

		win, err := createWindow(drv, "darwin", "t", 640, 480)
		if err != nil {
			t.Fatalf("createWindow: %v", err)
		}
		if win.view == 0 {
			t.Fatal("metal view not requested on darwin")
		}
		handles, desc, err := surfaceSpec(drv, "darwin", win)
		if err != nil {
			t.Fatalf("surfaceSpec: %v", err)
		}
		if handles.System != SubsystemCocoa {
			t.Fatalf("system = %q", handles.System)
		}
		if desc.MetalLayer == nil || uintptr(desc.MetalLayer.Layer) != 0xFEED {
			t.Fatal("descriptor does not carry the metal layer")
		}
	})

	t.Run("x11", func(t *testing.T) {
		drv := newStubDriver()
		drv.info = scriptedInfo(sdl.SubsystemX11, 0xC1, 0xC2)

		win, err := createWindow(drv, "linux", "t", 640, 480)
		if err != nil {
			t.Fatalf("createWindow: %v", err)
		}
		if win.view != 0 {
			t.Fatal("metal view requested off darwin")
		}
		handles, desc, err := surfaceSpec(drv, "linux", win)
		if err != nil {
			t.Fatalf("surfaceSpec: %v", err)
		}
		if handles.System != SubsystemX11 {
			t.Fatalf("system = %q", handles.System)
		}
		if desc.XlibWindow == nil {
			t.Fatal("XlibWindow not set")
		}
	})

	t.Run("wayland", func(t *testing.T) {
		drv := newStubDriver()
		drv.info = scriptedInfo(sdl.SubsystemWayland, 0xD1, 0xD2)

		win, err := createWindow(drv, "linux", "t", 640, 480)
		if err != nil {
			t.Fatalf("createWindow: %v", err)
		}
		handles, desc, err := surfaceSpec(drv, "linux", win)
		if err != nil {
			t.Fatalf("surfaceSpec: %v", err)
		}
		if handles.System != SubsystemWayland {
			t.Fatalf("system = %q", handles.System)
		}
		if desc.WaylandSurface == nil {
			t.Fatal("WaylandSurface not set")
		}
	})

	t.Run("query failure", func(t *testing.T) {
		drv := newStubDriver()
		drv.infoErr = errors.New("query refused")
		win := nativeWindow{handle: 0x1000}
		if _, _, err := surfaceSpec(drv, "linux", win); !errors.Is(err, ErrSurfaceQuery) {
			t.Fatalf("err = %v, want ErrSurfaceQuery", err)
		}
	})
}

func TestCreateWindowFailure(t *testing.T) {
	drv := newStubDriver()
	drv.createErr = errors.New("no video device")
	if _, err := createWindow(drv, "linux", "t", 640, 480); !errors.Is(err, ErrWindowCreate) {
		t.Fatalf("err = %v, want ErrWindowCreate", err)
	}
}
