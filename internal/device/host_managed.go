package device

import (
	"errors"
	"sync"
	"unsafe"
)

// HostManaged emulates managed memory with ordinary host allocations.
// It lets the CUDA code path run on machines without a GPU.
type HostManaged struct {
	mu      sync.Mutex
	live    map[unsafe.Pointer]int
	indices []int
}

// NewHostManaged returns an empty host-backed managed allocator.
func NewHostManaged() *HostManaged {
	return &HostManaged{live: make(map[unsafe.Pointer]int)}
}

// Name implements ManagedAllocator.
func (h *HostManaged) Name() string { return "host-managed" }

// AllocManaged implements ManagedAllocator.
func (h *HostManaged) AllocManaged(index, size int) ([]byte, error) {
	buf := make([]byte, size)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.indices = append(h.indices, index)
	if size > 0 {
		h.live[unsafe.Pointer(&buf[0])] = size
	}
	return buf, nil
}

// Free implements ManagedAllocator. Freeing an unknown buffer is an error.
func (h *HostManaged) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p := unsafe.Pointer(&buf[0])
	if _, ok := h.live[p]; !ok {
		return errors.New("free of unknown or already freed buffer")
	}
	delete(h.live, p)
	return nil
}

// Live returns the number of outstanding allocations and their total size.
func (h *HostManaged) Live() (count, bytes int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range h.live {
		count++
		bytes += n
	}
	return count, bytes
}

// DeviceIndices returns the device index of every allocation, in order.
func (h *HostManaged) DeviceIndices() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.indices...)
}
