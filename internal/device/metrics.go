package device

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	managedAllocs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_managed_alloc_total",
		Help: "Number of managed device buffers allocated",
	})

	managedAllocBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_managed_alloc_bytes_total",
		Help: "Bytes of managed device memory allocated",
	})

	managedFrees = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_managed_free_total",
		Help: "Number of managed device buffers released",
	})

	managedAllocFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_managed_alloc_failures_total",
		Help: "Number of failed managed device allocations",
	})
)
