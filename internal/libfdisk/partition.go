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
package libfdisk

import "unsafe"

//#include <stdlib.h>
//#include <libfdisk/libfdisk.h>
//#cgo pkg-config: fdisk
import "C"

// Partition wraps one fdisk_partition, used both as a template passed to
// Context.AddPartition and as a read-back record inside a Table.
type Partition struct {
	ptr *C.struct_fdisk_partition
}

// NewPartition allocates an empty partition template. Returns nil if the
// engine reports an allocation failure.
func NewPartition() *Partition {
	pa := C.fdisk_new_partition()
	if pa == nil {
		return nil
	}
	return &Partition{ptr: pa}
}

func (p *Partition) Unref() {
	if p.ptr == nil {
		panic("libfdisk: partition already unreferenced")
	}
	C.fdisk_unref_partition(p.ptr)
	p.ptr = nil
}

func (p *Partition) SetName(name string) int {
	cs := C.CString(name)
	rc := C.fdisk_partition_set_name(p.ptr, cs)
	C.free(unsafe.Pointer(cs))
	return int(rc)
}

func (p *Partition) Name() string {
	return goString(C.fdisk_partition_get_name(p.ptr))
}

func (p *Partition) SetUUID(uuid string) int {
	cs := C.CString(uuid)
	rc := C.fdisk_partition_set_uuid(p.ptr, cs)
	C.free(unsafe.Pointer(cs))
	return int(rc)
}

func (p *Partition) SetStart(sector uint64) int {
	return int(C.fdisk_partition_set_start(p.ptr, C.fdisk_sector_t(sector)))
}

func (p *Partition) Start() uint64 {
	return uint64(C.fdisk_partition_get_start(p.ptr))
}

func (p *Partition) SetSize(sectors uint64) int {
	return int(C.fdisk_partition_set_size(p.ptr, C.fdisk_sector_t(sectors)))
}

func (p *Partition) Size() uint64 {
	return uint64(C.fdisk_partition_get_size(p.ptr))
}

func (p *Partition) SetPartno(partno uint) int {
	return int(C.fdisk_partition_set_partno(p.ptr, C.size_t(partno)))
}

func (p *Partition) Partno() uint {
	return uint(C.fdisk_partition_get_partno(p.ptr))
}

// PartnoFollowDefault lets the engine pick the first free partition number.
func (p *Partition) PartnoFollowDefault(enable bool) int {
	return int(C.fdisk_partition_partno_follow_default(p.ptr, cBool(enable)))
}

// StartFollowDefault lets the engine pick the first free starting sector.
func (p *Partition) StartFollowDefault(enable bool) int {
	return int(C.fdisk_partition_start_follow_default(p.ptr, cBool(enable)))
}

// EndFollowDefault lets the engine extend the partition to the last free
// sector instead of honoring an explicit size.
func (p *Partition) EndFollowDefault(enable bool) int {
	return int(C.fdisk_partition_end_follow_default(p.ptr, cBool(enable)))
}

func (p *Partition) SetType(t *Parttype) int {
	return int(C.fdisk_partition_set_type(p.ptr, t.ptr))
}

// Type returns the partition's type, or nil when unset. The returned
// parttype is owned by the partition.
func (p *Partition) Type() *Parttype {
	t := C.fdisk_partition_get_type(p.ptr)
	if t == nil {
		return nil
	}
	return &Parttype{ptr: t}
}
