package casement

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/casement-gl/casement/internal/sdl"
)

const windowFlags = sdl.WindowShown | sdl.WindowResizable

// nativeWindow bundles the SDL window handle with the auxiliary Metal view
// created alongside it on darwin. Both are owned by the App for the whole
// run; shutdown destroys them exactly once.
type nativeWindow struct {
	handle sdl.Window
	view   sdl.MetalView
}

// createWindow creates the native window at a centered position with the
// requested size. On darwin it also requests the Metal view needed later
// for surface creation; a null view is not fatal here (stub drivers may
// omit it) but surface creation on darwin requires it.
func createWindow(drv nativeDriver, goos, title string, width, height int32) (nativeWindow, error) {
	handle, err := drv.CreateWindow(title,
		sdl.WindowPosCentered, sdl.WindowPosCentered,
		width, height, windowFlags)
	if err != nil {
		return nativeWindow{}, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	win := nativeWindow{handle: handle}
	if goos == "darwin" {
		win.view = drv.MetalCreateView(handle)
	}
	logger().Info("window created", "title", title, "width", width, "height", height)
	return win, nil
}

// surfaceHandles is the decoded, validated set of native handles for one
// windowing subsystem.
type surfaceHandles struct {
	System Subsystem

	view            uintptr // cocoa: NSView from the wm-info union
	hwnd, hinstance uintptr // win32
	display, window uintptr // x11 display/window, wayland display/surface
}

// surfaceHandlesFor validates the runtime discriminant against the compiled
// target and extracts the union fields. A discriminant outside the target's
// valid set fails with ErrSubsystem; there is no fallback.
func surfaceHandlesFor(goos string, info *sdl.WMInfo) (surfaceHandles, error) {
	tag := info.Subsystem()
	fail := func() (surfaceHandles, error) {
		return surfaceHandles{}, fmt.Errorf("%w: %s discriminant on %s",
			ErrSubsystem, sdl.SubsystemName(tag), goos)
	}

	first, second, known := info.Handles()
	if !known {
		return fail()
	}

	var sys Subsystem
	switch tag {
	case sdl.SubsystemCocoa:
		sys = SubsystemCocoa
	case sdl.SubsystemWindows:
		sys = SubsystemWin32
	case sdl.SubsystemX11:
		sys = SubsystemX11
	case sdl.SubsystemWayland:
		sys = SubsystemWayland
	default:
		return fail()
	}
	if !subsystemValidFor(goos, sys) {
		return fail()
	}

	h := surfaceHandles{System: sys}
	switch sys {
	case SubsystemCocoa:
		h.view = uintptr(first)
	case SubsystemWin32:
		h.hwnd = uintptr(first)
		h.hinstance = uintptr(second)
	case SubsystemX11, SubsystemWayland:
		h.display = uintptr(first)
		h.window = uintptr(second)
	}
	return h, nil
}

func subsystemValidFor(goos string, sys Subsystem) bool {
	for _, s := range validSubsystems[goos] {
		if s == sys {
			return true
		}
	}
	return false
}

// descriptor maps the handle set to a WebGPU surface descriptor. On cocoa
// the surface binds the CAMetalLayer, which is obtained from the SDL Metal
// view rather than the wm-info union.
func (h surfaceHandles) descriptor(metalLayer uintptr) (*wgpu.SurfaceDescriptor, error) {
	switch h.System {
	case SubsystemCocoa:
		if metalLayer == 0 {
			return nil, fmt.Errorf("%w: no metal layer for cocoa window", ErrSurfaceQuery)
		}
		return &wgpu.SurfaceDescriptor{
			MetalLayer: &wgpu.SurfaceDescriptorFromMetalLayer{
				Layer: unsafe.Pointer(metalLayer),
			},
		}, nil
	case SubsystemWin32:
		return &wgpu.SurfaceDescriptor{
			WindowsHWND: &wgpu.SurfaceDescriptorFromWindowsHWND{
				Hwnd:      unsafe.Pointer(h.hwnd),
				Hinstance: unsafe.Pointer(h.hinstance),
			},
		}, nil
	case SubsystemX11:
		return &wgpu.SurfaceDescriptor{
			XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
				Display: unsafe.Pointer(h.display),
				// X11 XIDs are 32-bit; the narrowing is lossless.
				Window: uint32(h.window),
			},
		}, nil
	case SubsystemWayland:
		return &wgpu.SurfaceDescriptor{
			WaylandSurface: &wgpu.SurfaceDescriptorFromWaylandSurface{
				Display: unsafe.Pointer(h.display),
				Surface: unsafe.Pointer(h.window),
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSubsystem, h.System)
}

// surfaceSpec queries and decodes the wm-info record for a window and
// builds the surface descriptor. Pure of the GPU: the caller hands the
// descriptor to an instance. The record is version-seeded by the binding
// before the query.
func surfaceSpec(drv nativeDriver, goos string, win nativeWindow) (surfaceHandles, *wgpu.SurfaceDescriptor, error) {
	info, err := drv.WindowManagerInfo(win.handle)
	if err != nil {
		return surfaceHandles{}, nil, fmt.Errorf("%w: %v", ErrSurfaceQuery, err)
	}

	handles, err := surfaceHandlesFor(goos, info)
	if err != nil {
		return surfaceHandles{}, nil, err
	}

	var layer uintptr
	if handles.System == SubsystemCocoa {
		if win.view == 0 {
			return surfaceHandles{}, nil, fmt.Errorf("%w: metal view was not created", ErrSurfaceQuery)
		}
		layer = drv.MetalGetLayer(win.view)
	}

	desc, err := handles.descriptor(layer)
	if err != nil {
		return surfaceHandles{}, nil, err
	}
	return handles, desc, nil
}

// createSurface derives the presentation surface for a window. The surface
// is not yet sized or configured for drawing.
func createSurface(instance *wgpu.Instance, drv nativeDriver, goos string, win nativeWindow) (*wgpu.Surface, surfaceHandles, error) {
	handles, desc, err := surfaceSpec(drv, goos, win)
	if err != nil {
		return nil, surfaceHandles{}, err
	}
	surface := instance.CreateSurface(desc)
	logger().Info("presentation surface created", "system", handles.System)
	return surface, handles, nil
}
