package fdisk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/gofdisk/pkg/fdisk"
)

func TestPartitionBuilder(t *testing.T) {
	ptype, err := fdisk.NewPartType().GUID(fdisk.GUIDLinuxData).Build()
	require.NoError(t, err)

	t.Run("full configuration", func(t *testing.T) {
		p, err := fdisk.NewPartitionTemplate().
			Type(ptype).
			Name("rootfs").
			Number(3).
			StartingSector(2048).
			SizeInSectors(4096).
			UUID("D07FDE8E-1E32-4B58-9D04-E163E9BACC1F").
			Build()
		require.NoError(t, err)

		require.Equal(t, ptype, p.Type())
		require.Equal(t, "rootfs", p.Name())
		require.Equal(t, "d07fde8e-1e32-4b58-9d04-e163e9bacc1f", p.UUID())

		number, ok := p.Number()
		require.True(t, ok)
		require.Equal(t, uint(3), number)

		start, ok := p.Start()
		require.True(t, ok)
		require.Equal(t, uint64(2048), start)

		require.Equal(t, uint64(4096), p.SizeInSectors())
	})

	t.Run("defaults left to the engine", func(t *testing.T) {
		p, err := fdisk.NewPartitionTemplate().
			Type(ptype).
			SizeInSectors(2048).
			Build()
		require.NoError(t, err)

		_, ok := p.Number()
		require.False(t, ok)
		_, ok = p.Start()
		require.False(t, ok)
		require.Empty(t, p.Name())
	})

	t.Run("type is required", func(t *testing.T) {
		_, err := fdisk.NewPartitionTemplate().SizeInSectors(2048).Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("size is required", func(t *testing.T) {
		_, err := fdisk.NewPartitionTemplate().Type(ptype).Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := fdisk.NewPartitionTemplate().Type(ptype).SizeInSectors(0).Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := fdisk.NewPartitionTemplate().Type(ptype).SizeInSectors(-1).Build()
		requireKind(t, err, fdisk.ErrConfig)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		_, err := fdisk.NewPartitionTemplate().
			Type(ptype).
			SizeInSectors(2048).
			UUID("xyz").
			Build()
		requireKind(t, err, fdisk.ErrConfig)
	})
}

func TestPartitionListKeepsOrder(t *testing.T) {
	ptype, err := fdisk.NewPartType().Code(fdisk.CodeLinux).Build()
	require.NoError(t, err)

	var list fdisk.PartitionList
	for _, size := range []int64{2048, 4096, 8192} {
		p, err := fdisk.NewPartitionTemplate().Type(ptype).SizeInSectors(size).Build()
		require.NoError(t, err)
		list = append(list, p)
	}

	require.Len(t, list, 3)
	for i, size := range []uint64{2048, 4096, 8192} {
		require.Equal(t, size, list[i].SizeInSectors())
	}
}
