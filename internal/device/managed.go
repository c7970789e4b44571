package device

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrCUDAUnavailable is returned by the managed allocator of builds without CUDA.
var ErrCUDAUnavailable = errors.New("CUDA support not available (build with -tags cuda on a machine with the CUDA runtime)")

// ManagedAllocator is the low-level primitive behind managed GPU buffers.
//
// Memory returned by AllocManaged must be readable and writable from the host
// as well as from device code without explicit transfer calls. index selects
// the device the allocation is associated with.
type ManagedAllocator interface {
	AllocManaged(index, size int) ([]byte, error)
	Free(buf []byte) error
	Name() string
}

var (
	managedMu sync.RWMutex
	managed   ManagedAllocator = newCUDAAllocator()
)

// SetManagedAllocator replaces the managed-memory primitive and returns a
// function restoring the previous one.
func SetManagedAllocator(a ManagedAllocator) func() {
	managedMu.Lock()
	prev := managed
	managed = a
	managedMu.Unlock()
	return func() {
		managedMu.Lock()
		managed = prev
		managedMu.Unlock()
	}
}

// Managed returns the registered managed-memory primitive.
func Managed() ManagedAllocator {
	managedMu.RLock()
	defer managedMu.RUnlock()
	return managed
}

// AllocManaged allocates size bytes of managed memory for dev through the
// registered primitive and returns the buffer together with its release function.
// The release function is safe to call more than once; only the first call frees.
func AllocManaged(dev Device, size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("managed alloc: negative size %d", size)
	}
	a := Managed()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	buf, err := a.AllocManaged(dev.Index, size)
	if err != nil {
		managedAllocFailures.Inc()
		return nil, nil, fmt.Errorf("%s: alloc %d bytes on %s: %w", a.Name(), size, dev, err)
	}
	if len(buf) < size {
		managedAllocFailures.Inc()
		_ = a.Free(buf)
		return nil, nil, fmt.Errorf("%s: alloc %d bytes: got %d", a.Name(), size, len(buf))
	}
	managedAllocs.Inc()
	managedAllocBytes.Add(float64(size))
	slog.Debug("managed alloc", "allocator", a.Name(), "device", dev, "bytes", size)

	var once sync.Once
	release := func() error {
		var ferr error
		once.Do(func() {
			managedFrees.Inc()
			slog.Debug("managed free", "allocator", a.Name(), "bytes", size)
			if err := a.Free(buf); err != nil {
				ferr = fmt.Errorf("%s: free: %w", a.Name(), err)
			}
		})
		return ferr
	}
	return buf[:size], release, nil
}
