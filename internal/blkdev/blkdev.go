// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package blkdev provides read-only stat helpers for block devices and
// disk-image files.
package blkdev

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DefaultSectorSize is assumed for regular files, where no logical sector
// size can be queried.
const DefaultSectorSize = 512

// Info describes a device or image file as seen before any partitioning
// session is opened on it.
type Info struct {
	Path       string
	IsBlock    bool  // true for block devices, false for regular files
	Size       int64 // total size in bytes
	SectorSize int64 // logical sector size in bytes
}

// Stat opens path read-only and queries its size and sector size. Block
// devices are probed with the BLKGETSIZE64 and BLKSSZGET ioctls; regular
// files fall back to their file size and DefaultSectorSize.
func Stat(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	info := &Info{
		Path:       path,
		IsBlock:    st.Mode&unix.S_IFMT == unix.S_IFBLK,
		SectorSize: DefaultSectorSize,
	}

	if !info.IsBlock {
		info.Size = st.Size
		return info, nil
	}

	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return nil, fmt.Errorf("ioctl BLKGETSIZE64 on %s: %w", path, err)
	}
	info.Size = int64(size)

	sectorSize, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKSSZGET)
	if err != nil {
		return nil, fmt.Errorf("ioctl BLKSSZGET on %s: %w", path, err)
	}
	info.SectorSize = int64(sectorSize)

	return info, nil
}
