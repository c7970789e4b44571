//go:build cuda

package device

/*
#cgo LDFLAGS: -lcudart
#include <cuda_runtime.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type cudaAllocator struct{}

func newCUDAAllocator() ManagedAllocator {
	return cudaAllocator{}
}

func (cudaAllocator) Name() string { return "cuda" }

// AllocManaged selects the device with cudaSetDevice, then calls
// cudaMallocManaged with global attachment.
func (cudaAllocator) AllocManaged(index, size int) ([]byte, error) {
	if err := checkCUDA("cudaSetDevice", C.cudaSetDevice(C.int(index))); err != nil {
		return nil, err
	}
	var ptr unsafe.Pointer
	rc := C.cudaMallocManaged(&ptr, C.size_t(size), C.uint(C.cudaMemAttachGlobal))
	if err := checkCUDA("cudaMallocManaged", rc); err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

func (cudaAllocator) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return checkCUDA("cudaFree", C.cudaFree(unsafe.Pointer(&buf[0])))
}

func checkCUDA(call string, rc C.cudaError_t) error {
	if rc == C.cudaSuccess {
		return nil
	}
	return fmt.Errorf("%s: %s (code %d)", call, C.GoString(C.cudaGetErrorString(rc)), int(rc))
}
