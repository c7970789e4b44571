// Package device identifies compute devices and tracks the current one.
package device

import (
	"fmt"
	"log/slog"
	"sync"
)

// Kind is the backend family of a device.
type Kind int

// Supported device kinds.
const (
	CPU Kind = iota
	CUDA
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// Device identifies a single device, e.g. cuda:0.
type Device struct {
	Kind  Kind
	Index int
}

// Default is the host device used when nothing else was selected.
var Default = Device{Kind: CPU}

// Equal reports whether d and other name the same device.
func (d Device) Equal(other Device) bool {
	return d.Kind == other.Kind && d.Index == other.Index
}

// IsHost reports whether the device reads and writes plain host memory.
func (d Device) IsHost() bool {
	return d.Kind == CPU
}

// String returns the device name in "kind:index" form.
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}

var (
	currentMu sync.RWMutex
	current   = Default
)

// Current returns the device new arrays are allocated on.
func Current() Device {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent makes d the current device.
func SetCurrent(d Device) {
	currentMu.Lock()
	prev := current
	current = d
	currentMu.Unlock()

	if !prev.Equal(d) {
		slog.Debug("current device changed", "from", prev, "to", d)
	}
}

// Use switches to d and returns a function restoring the previous device.
//
// Example:
//
//	defer device.Use(device.Device{Kind: device.CUDA})()
func Use(d Device) func() {
	prev := Current()
	SetCurrent(d)
	return func() {
		SetCurrent(prev)
	}
}
