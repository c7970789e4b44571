// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "github.com/born-ml/ndarray/internal/device"

// Device identifies a compute device.
type Device = device.Device

// DeviceKind is the backend family of a device.
type DeviceKind = device.Kind

// Device kinds.
const (
	CPU  DeviceKind = device.CPU
	CUDA DeviceKind = device.CUDA
)

// ManagedAllocator is the primitive that allocates managed GPU memory.
type ManagedAllocator = device.ManagedAllocator

// ErrCUDAUnavailable is returned when arrays are placed on a CUDA device in a
// build without CUDA support.
var ErrCUDAUnavailable = device.ErrCUDAUnavailable

// CurrentDevice returns the device new arrays are allocated on.
func CurrentDevice() Device {
	return device.Current()
}

// SetDevice makes d the current device.
func SetDevice(d Device) {
	device.SetCurrent(d)
}

// UseDevice switches to d and returns a function restoring the previous device.
func UseDevice(d Device) func() {
	return device.Use(d)
}

// SetManagedAllocator replaces the managed-memory primitive and returns a
// function restoring the previous one.
func SetManagedAllocator(a ManagedAllocator) func() {
	return device.SetManagedAllocator(a)
}

// HostManaged emulates managed memory with host allocations.
type HostManaged = device.HostManaged

// NewHostManaged returns a managed allocator backed by host memory.
func NewHostManaged() *HostManaged {
	return device.NewHostManaged()
}
