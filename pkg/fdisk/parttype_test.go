package fdisk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/gofdisk/pkg/fdisk"
)

func TestPartTypeBuilder(t *testing.T) {
	t.Run("guid only", func(t *testing.T) {
		pt, err := fdisk.NewPartType().GUID(fdisk.GUIDLinuxData).Build()
		require.NoError(t, err)

		guid, ok := pt.GUID()
		require.True(t, ok)
		require.Equal(t, fdisk.GUIDLinuxData, guid)

		_, ok = pt.Code()
		require.False(t, ok)
	})

	t.Run("code only", func(t *testing.T) {
		pt, err := fdisk.NewPartType().Code(fdisk.CodeLinux).Build()
		require.NoError(t, err)

		code, ok := pt.Code()
		require.True(t, ok)
		require.Equal(t, fdisk.CodeLinux, code)

		_, ok = pt.GUID()
		require.False(t, ok)
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := fdisk.NewPartType().Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("both set", func(t *testing.T) {
		_, err := fdisk.NewPartType().
			GUID(fdisk.GUIDLinuxData).
			Code(fdisk.CodeLinux).
			Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("invalid guid", func(t *testing.T) {
		_, err := fdisk.NewPartType().GUID("not-a-guid").Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("guid normalized to lower case", func(t *testing.T) {
		pt, err := fdisk.NewPartType().
			GUID("0FC63DAF-8483-4772-8E79-3D69D8477DE4").
			Build()
		require.NoError(t, err)

		guid, _ := pt.GUID()
		require.Equal(t, fdisk.GUIDLinuxData, guid)
	})

	t.Run("name is optional", func(t *testing.T) {
		pt, err := fdisk.NewPartType().Code(fdisk.CodeLinuxSwap).Name("swap").Build()
		require.NoError(t, err)
		require.Equal(t, "swap", pt.Name())
	})
}

func requireKind(t *testing.T, err error, kind fdisk.ErrorKind) {
	t.Helper()

	var e *fdisk.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind, e.Kind, "unexpected error kind: %v", err)
}
