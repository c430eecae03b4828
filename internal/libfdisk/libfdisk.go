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

// Package libfdisk exposes the raw util-linux libfdisk surface one-to-one.
//
// Every function here is a thin shim over the corresponding C call: integer
// status codes are returned as-is (negative errno on failure), pointers are
// wrapped but never reference-counted on the Go side beyond what the caller
// requests. No call ordering, lifetime, or concurrency guarantee is provided
// at this level; that is the job of pkg/fdisk.
package libfdisk

import "unsafe"

//#include <stdlib.h>
//#include <string.h>
//#include <libfdisk/libfdisk.h>
//#cgo pkg-config: fdisk
import "C"

// Context wraps one opaque fdisk_context handle.
type Context struct {
	ptr *C.struct_fdisk_context
}

// NewContext allocates a new libfdisk context. Returns nil if the engine
// reports an allocation failure.
func NewContext() *Context {
	cxt := C.fdisk_new_context()
	if cxt == nil {
		return nil
	}
	return &Context{ptr: cxt}
}

// Unref drops the context reference, closing the assigned device (if any)
// without syncing unwritten changes.
func (c *Context) Unref() {
	if c.ptr == nil {
		panic("libfdisk: context already unreferenced")
	}
	C.fdisk_unref_context(c.ptr)
	c.ptr = nil
}

// AssignDevice opens the device at path and scans it for partition tables,
// filesystems and topology metadata.
func (c *Context) AssignDevice(path string, readonly bool) int {
	p := C.CString(path)
	rc := C.fdisk_assign_device(c.ptr, p, cBool(readonly))
	C.free(unsafe.Pointer(p))
	return int(rc)
}

// DeassignDevice closes the assigned device. With nosync set, buffered
// changes are not flushed to the operating system.
func (c *Context) DeassignDevice(nosync bool) int {
	return int(C.fdisk_deassign_device(c.ptr, cBool(nosync)))
}

// ReassignDevice closes and reopens the assigned device, dropping all
// in-memory modifications.
func (c *Context) ReassignDevice() int {
	return int(C.fdisk_reassign_device(c.ptr))
}

func (c *Context) IsReadonly() bool {
	return C.fdisk_is_readonly(c.ptr) != 0
}

// IsRegfile reports whether the assigned device is a regular file
// (a disk image) rather than a block device.
func (c *Context) IsRegfile() bool {
	return C.fdisk_is_regfile(c.ptr) != 0
}

func (c *Context) EnableWipe(enable bool) int {
	return int(C.fdisk_enable_wipe(c.ptr, cBool(enable)))
}

func (c *Context) HasWipe() bool {
	return C.fdisk_has_wipe(c.ptr) != 0
}

// Collision returns the name of a filesystem or RAID signature detected on
// the assigned device, or an empty string.
func (c *Context) Collision() string {
	return goString(C.fdisk_get_collision(c.ptr))
}

// IsPTCollision reports whether the detected collision is itself a
// partition table.
func (c *Context) IsPTCollision() bool {
	return C.fdisk_is_ptcollision(c.ptr) != 0
}

// DisableDialogs turns off the interactive ask/answer machinery, making
// operations fail instead of prompting.
func (c *Context) DisableDialogs(disable bool) int {
	return int(C.fdisk_disable_dialogs(c.ptr, cBool(disable)))
}

// CreateDisklabel initializes a new, empty in-memory partition table of the
// named type ("gpt", "dos", "bsd", "sgi", "sun"), replacing any previous one.
func (c *Context) CreateDisklabel(name string) int {
	p := C.CString(name)
	rc := C.fdisk_create_disklabel(c.ptr, p)
	C.free(unsafe.Pointer(p))
	return int(rc)
}

func (c *Context) HasLabel() bool {
	return C.fdisk_has_label(c.ptr) != 0
}

// Label returns the label driver with the given name, or the currently
// active one when name is empty. The returned label is owned by the context.
func (c *Context) Label(name string) *Label {
	var lb *C.struct_fdisk_label
	if name == "" {
		lb = C.fdisk_get_label(c.ptr, nil)
	} else {
		p := C.CString(name)
		lb = C.fdisk_get_label(c.ptr, p)
		C.free(unsafe.Pointer(p))
	}
	if lb == nil {
		return nil
	}
	return &Label{ptr: lb}
}

// WriteDisklabel commits the in-memory partition table to the device.
func (c *Context) WriteDisklabel() int {
	return int(C.fdisk_write_disklabel(c.ptr))
}

// AddPartition adds a partition built from the template pa and returns the
// engine-assigned partition number.
func (c *Context) AddPartition(pa *Partition) (uint, int) {
	var partno C.size_t
	rc := C.fdisk_add_partition(c.ptr, pa.ptr, &partno)
	return uint(partno), int(rc)
}

func (c *Context) DeletePartition(partno uint) int {
	return int(C.fdisk_delete_partition(c.ptr, C.size_t(partno)))
}

func (c *Context) DeleteAllPartitions() int {
	return int(C.fdisk_delete_all_partitions(c.ptr))
}

// Partitions fills a new table with the partitions of the in-memory label.
// The caller owns the returned table and must call Unref on it.
func (c *Context) Partitions() (*Table, int) {
	var tb *C.struct_fdisk_table
	rc := C.fdisk_get_partitions(c.ptr, &tb)
	if rc != 0 {
		return nil, int(rc)
	}
	return &Table{ptr: tb}, 0
}

func (c *Context) Devname() string {
	return goString(C.fdisk_get_devname(c.ptr))
}

func (c *Context) NSectors() uint64 {
	return uint64(C.fdisk_get_nsectors(c.ptr))
}

func (c *Context) SectorSize() uint64 {
	return uint64(C.fdisk_get_sector_size(c.ptr))
}

// Strerror returns the engine's message for a negative status code.
func Strerror(rc int) string {
	if rc >= 0 {
		return ""
	}
	return goString(C.strerror(C.int(-rc)))
}

// InitDebug enables libfdisk debug output. With mask zero the level is read
// from the LIBFDISK_DEBUG environment variable; 0xffff enables everything.
// The first call wins, later calls are ignored by the engine.
func InitDebug(mask int) {
	C.fdisk_init_debug(C.int(mask))
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
