package array

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/born-ml/ndarray/internal/device"
)

// storage is a device-resident byte buffer. Every Array aliasing it holds the
// same *storage; the buffer lives as long as the longest-surviving holder.
type storage struct {
	data   []byte
	device device.Device
}

// allocator produces storage for one backend. It is chosen once, when an
// Array is constructed, and never re-evaluated for that Array.
type allocator interface {
	// adopt takes ownership of src, which holds at least size bytes.
	adopt(src []byte, size int) (*storage, error)
	// alloc returns zeroed storage of size bytes.
	alloc(size int) (*storage, error)
}

// allocatorFor selects the backend for dev.
func allocatorFor(dev device.Device) allocator {
	if dev.IsHost() {
		return hostAllocator{dev: dev}
	}
	return managedAllocator{dev: dev}
}

// hostAllocator adopts caller buffers without copying.
type hostAllocator struct {
	dev device.Device
}

func (h hostAllocator) adopt(src []byte, _ int) (*storage, error) {
	return &storage{data: src, device: h.dev}, nil
}

func (h hostAllocator) alloc(size int) (*storage, error) {
	return &storage{data: make([]byte, size), device: h.dev}, nil
}

// managedAllocator places data in managed GPU memory that host code can read
// and write directly.
type managedAllocator struct {
	dev device.Device
}

func (m managedAllocator) adopt(src []byte, size int) (*storage, error) {
	s, err := m.alloc(size)
	if err != nil {
		return nil, err
	}
	copy(s.data, src[:size])
	return s, nil
}

func (m managedAllocator) alloc(size int) (*storage, error) {
	buf, release, err := device.AllocManaged(m.dev, size)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrDeviceAlloc, m.dev, err)
	}
	s := &storage{data: buf, device: m.dev}
	runtime.AddCleanup(s, func(release func() error) {
		if err := release(); err != nil {
			slog.Error("releasing managed buffer", "error", err)
		}
	}, release)
	return s, nil
}
