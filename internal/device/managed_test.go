package device

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAllocator struct{}

func (failingAllocator) Name() string                          { return "failing" }
func (failingAllocator) AllocManaged(int, int) ([]byte, error) { return nil, errors.New("out of memory") }
func (failingAllocator) Free([]byte) error                     { return nil }

var cuda0 = Device{Kind: CUDA}

func TestAllocManagedReleasesOnce(t *testing.T) {
	host := NewHostManaged()
	defer SetManagedAllocator(host)()

	allocsBefore := testutil.ToFloat64(managedAllocs)
	freesBefore := testutil.ToFloat64(managedFrees)

	buf, release, err := AllocManaged(cuda0, 16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)

	count, bytes := host.Live()
	assert.Equal(t, 1, count)
	assert.Equal(t, 16, bytes)

	require.NoError(t, release())
	require.NoError(t, release())

	count, _ = host.Live()
	assert.Equal(t, 0, count)
	assert.Equal(t, allocsBefore+1, testutil.ToFloat64(managedAllocs))
	assert.Equal(t, freesBefore+1, testutil.ToFloat64(managedFrees))
}

func TestAllocManagedZeroSize(t *testing.T) {
	host := NewHostManaged()
	defer SetManagedAllocator(host)()

	buf, release, err := AllocManaged(cuda0, 0)
	require.NoError(t, err)
	assert.Empty(t, buf)
	assert.NoError(t, release())

	count, _ := host.Live()
	assert.Equal(t, 0, count)
}

func TestAllocManagedFailure(t *testing.T) {
	defer SetManagedAllocator(failingAllocator{})()

	before := testutil.ToFloat64(managedAllocFailures)
	_, _, err := AllocManaged(cuda0, 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
	assert.Equal(t, before+1, testutil.ToFloat64(managedAllocFailures))
}

func TestAllocManagedNegativeSize(t *testing.T) {
	_, _, err := AllocManaged(cuda0, -1)
	assert.Error(t, err)
}

func TestHostManagedDoubleFree(t *testing.T) {
	host := NewHostManaged()
	buf, err := host.AllocManaged(0, 4)
	require.NoError(t, err)
	require.NoError(t, host.Free(buf))
	assert.Error(t, host.Free(buf))
}

func TestAllocManagedPassesDeviceIndex(t *testing.T) {
	host := NewHostManaged()
	defer SetManagedAllocator(host)()

	for _, d := range []Device{{Kind: CUDA, Index: 1}, cuda0, {Kind: CUDA, Index: 3}} {
		_, release, err := AllocManaged(d, 4)
		require.NoError(t, err)
		require.NoError(t, release())
	}
	assert.Equal(t, []int{1, 0, 3}, host.DeviceIndices())
}
