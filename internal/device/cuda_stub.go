//go:build !cuda

package device

type cudaAllocator struct{}

func newCUDAAllocator() ManagedAllocator {
	return cudaAllocator{}
}

func (cudaAllocator) Name() string { return "cuda (unavailable)" }

func (cudaAllocator) AllocManaged(int, int) ([]byte, error) { return nil, ErrCUDAUnavailable }

func (cudaAllocator) Free([]byte) error { return ErrCUDAUnavailable }
