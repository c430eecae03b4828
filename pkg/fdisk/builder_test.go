package fdisk_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/gofdisk/pkg/fdisk"
)

// newImage creates a sparse disk-image file of the given size. libfdisk
// treats regular files like devices, which keeps these tests independent
// of real hardware.
func newImage(t *testing.T, size int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "disk.img")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
	return path
}

func TestSessionBuilder_EmptyPath(t *testing.T) {
	_, err := fdisk.NewSession().Build()
	requireKind(t, err, fdisk.ErrConfig)

	_, err = fdisk.NewSession().Device("").ReadWrite().Build()
	requireKind(t, err, fdisk.ErrConfig)
}

func TestSessionBuilder_MissingDevice(t *testing.T) {
	_, err := fdisk.NewSession().
		Device(filepath.Join(t.TempDir(), "no-such-device")).
		ReadWrite().
		Build()
	requireKind(t, err, fdisk.ErrDevice)
	require.ErrorIs(t, err, syscall.ENOENT)
}

func TestSessionBuilder_Defaults(t *testing.T) {
	img := newImage(t, 8<<20)

	sess, err := fdisk.NewSession().Device(img).Build()
	require.NoError(t, err)
	defer sess.Close()

	require.True(t, sess.IsReadOnly())
	require.False(t, sess.HasWipe())
	require.True(t, sess.IsImageFile())
	require.Equal(t, img, sess.DevicePath())
}

func TestSessionBuilder_ReadWrite(t *testing.T) {
	img := newImage(t, 8<<20)

	sess, err := fdisk.NewSession().Device(img).ReadWrite().Build()
	require.NoError(t, err)
	defer sess.Close()

	require.False(t, sess.IsReadOnly())
	require.Positive(t, sess.SectorSize())
	require.Positive(t, sess.SizeInSectors())
}

func TestSessionBuilder_WipeArmedAtAttach(t *testing.T) {
	img := newImage(t, 8<<20)

	sess, err := fdisk.NewSession().Device(img).ReadWrite().WipeMetadata().Build()
	require.NoError(t, err)
	defer sess.Close()

	require.True(t, sess.HasWipe())
	// The wipe precedes any table creation, so nothing may be reported as
	// present on the device at this point.
	require.False(t, sess.HasCollisions())
	require.False(t, sess.HasPartitionTable())
}

// plantExt2Signature writes an ext2 superblock magic into an image file:
// magic 0xEF53 sits at byte 0x38 of the superblock, which starts 1 KiB in.
// The all-zero feature fields around it pass the filesystem prober's
// checks, so the image scans as an ext2 volume.
func plantExt2Signature(t *testing.T, img string) {
	t.Helper()

	f, err := os.OpenFile(img, os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteAt([]byte{0x53, 0xEF}, 1024+0x38)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestSessionBuilder_WipeCondemnsFilesystemSignature(t *testing.T) {
	img := newImage(t, 8<<20)
	plantExt2Signature(t, img)

	// Without wipe the signature is detected and reported.
	probe, err := fdisk.NewSession().Device(img).Build()
	require.NoError(t, err)
	require.True(t, probe.HasCollisions())
	require.Equal(t, "ext2", probe.CollisionName())
	require.NoError(t, probe.Close())

	// A wipe-enabled session stops reporting it the moment Build returns,
	// before any table-create call.
	sess, err := fdisk.NewSession().Device(img).ReadWrite().WipeMetadata().Build()
	require.NoError(t, err)
	defer sess.Close()

	require.True(t, sess.HasWipe())
	require.False(t, sess.HasCollisions())
	require.Empty(t, sess.CollisionName())

	// Writing a fresh table destroys the signature on disk for good: a
	// later session with no wipe of its own sees a clean device.
	require.NoError(t, sess.CreateTable(fdisk.GPT))
	require.NoError(t, sess.Write())
	require.NoError(t, sess.Close())

	reread, err := fdisk.NewSession().Device(img).Build()
	require.NoError(t, err)
	defer reread.Close()

	require.False(t, reread.HasCollisions())
	require.Equal(t, "gpt", reread.Label())
}
