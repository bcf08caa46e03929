package casement

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// gpuContext holds the negotiated GPU objects. Adapter and device requests
// are asynchronous handshakes inside wgpu; both are awaited here and an
// absent adapter or device is fatal at startup.
type gpuContext struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

func newGPUContext(instance *wgpu.Instance, surface *wgpu.Surface) (*gpuContext, error) {
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}
	if adapter == nil {
		return nil, ErrNoAdapter
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	logger().Info("GPU device acquired")
	return &gpuContext{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
	}, nil
}

func (g *gpuContext) release() {
	if g.device != nil {
		g.device.Release()
	}
	if g.adapter != nil {
		g.adapter.Release()
	}
	if g.instance != nil {
		g.instance.Release()
	}
}
