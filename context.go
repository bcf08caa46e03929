package casement

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// PresentationContext is the configured drawing side of the surface: pixel
// format, alpha mode, and usage flags are fixed once before the loop starts
// and assumed immutable for its duration. Re-configuration after a mid-run
// resize is out of scope.
type PresentationContext struct {
	surface *wgpu.Surface
	format  wgpu.TextureFormat
	width   uint32
	height  uint32
}

// configureContext sizes the window to the target dimensions and
// configures the surface: the platform's preferred format, opaque alpha
// compositing, vsync presentation, and a usage set allowing both render
// attachment and copy-source access (the latter for frame readback).
func configureContext(drv nativeDriver, win nativeWindow, surface *wgpu.Surface, gpu *gpuContext, width, height int32) (*PresentationContext, error) {
	drv.SetWindowSize(win.handle, width, height)

	caps := surface.GetCapabilities(gpu.adapter)
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("%w: surface reports no texture formats", ErrNoAdapter)
	}
	// The first reported format is the platform-preferred one.
	format := caps.Formats[0]

	surface.Configure(gpu.adapter, gpu.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
	})

	logger().Info("surface configured",
		"format", format, "width", width, "height", height)
	return &PresentationContext{
		surface: surface,
		format:  format,
		width:   uint32(width),
		height:  uint32(height),
	}, nil
}

// Format returns the configured surface format.
func (c *PresentationContext) Format() wgpu.TextureFormat { return c.format }

// Size returns the configured surface dimensions.
func (c *PresentationContext) Size() (width, height uint32) { return c.width, c.height }

// Acquire returns the next drawable texture and a view onto it. The caller
// releases both after presenting. A failed acquire wraps ErrPresent: it
// typically means the window or surface was invalidated externally, and is
// treated as fatal to the loop, not retried.
func (c *PresentationContext) Acquire() (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := c.surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: acquire: %v", ErrPresent, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("%w: view: %v", ErrPresent, err)
	}
	return tex, view, nil
}

// Present presents the most recently acquired drawable.
func (c *PresentationContext) Present() {
	c.surface.Present()
}
