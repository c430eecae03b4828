package libfdisk_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/gofdisk/internal/libfdisk"
)

func TestContextLifecycle(t *testing.T) {
	cxt := libfdisk.NewContext()
	require.NotNil(t, cxt)
	cxt.Unref()

	require.Panics(t, func() { cxt.Unref() })
}

func TestPartitionLifecycle(t *testing.T) {
	pa := libfdisk.NewPartition()
	require.NotNil(t, pa)

	require.Zero(t, pa.SetSize(2048))
	require.Equal(t, uint64(2048), pa.Size())

	pa.Unref()
	require.Panics(t, func() { pa.Unref() })
}

func TestParttypeLifecycle(t *testing.T) {
	pt := libfdisk.NewParttype()
	require.NotNil(t, pt)

	require.Zero(t, pt.SetCode(0x83))
	require.Zero(t, pt.SetName("Linux"))
	require.Equal(t, uint(0x83), pt.Code())
	require.Equal(t, "Linux", pt.Name())

	pt.Unref()
	require.Panics(t, func() { pt.Unref() })
}

func TestStrerror(t *testing.T) {
	require.Empty(t, libfdisk.Strerror(0))
	require.NotEmpty(t, libfdisk.Strerror(-int(syscall.ENOSPC)))
}

func TestAssignMissingDevice(t *testing.T) {
	cxt := libfdisk.NewContext()
	require.NotNil(t, cxt)
	defer cxt.Unref()

	rc := cxt.AssignDevice("/definitely/not/a/device", true)
	require.Equal(t, -int(syscall.ENOENT), rc)
}
