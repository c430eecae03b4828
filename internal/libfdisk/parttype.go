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

// Label wraps one fdisk_label, the driver for a partition table type.
// Labels are owned by their context and are never freed here.
type Label struct {
	ptr *C.struct_fdisk_label
}

func (l *Label) Name() string {
	return goString(C.fdisk_label_get_name(l.ptr))
}

// HasCodeParttypes reports whether the label addresses partition types by
// numeric code (DOS, BSD, SGI, SUN) rather than by string identifier.
func (l *Label) HasCodeParttypes() bool {
	return C.fdisk_label_has_code_parttypes(l.ptr) != 0
}

// ParttypeFromCode looks up a partition type by its numeric identifier.
// Returns nil when the label does not use code-based types or the code is
// unknown to it.
func (l *Label) ParttypeFromCode(code uint) *Parttype {
	t := C.fdisk_label_get_parttype_from_code(l.ptr, C.uint(code))
	if t == nil {
		return nil
	}
	return &Parttype{ptr: t}
}

// ParttypeFromString looks up a partition type by its string identifier
// (a type GUID for GPT labels). Returns nil when the label does not use
// string-based types or the identifier is unknown to it.
func (l *Label) ParttypeFromString(id string) *Parttype {
	cs := C.CString(id)
	t := C.fdisk_label_get_parttype_from_string(l.ptr, cs)
	C.free(unsafe.Pointer(cs))
	if t == nil {
		return nil
	}
	return &Parttype{ptr: t}
}

// Parttype wraps one fdisk_parttype. Types returned by label lookups are
// label-owned static data and must not be unreferenced; types created with
// NewParttype are owned by the caller and released with Unref.
type Parttype struct {
	ptr *C.struct_fdisk_parttype
}

// NewParttype allocates an empty partition type. The identifier setters
// below only work on allocated types; label-owned ones are immutable.
func NewParttype() *Parttype {
	t := C.fdisk_new_parttype()
	if t == nil {
		return nil
	}
	return &Parttype{ptr: t}
}

// Unref releases an allocated parttype. Panics when the parttype has
// already been released.
func (t *Parttype) Unref() {
	if t.ptr == nil {
		panic("parttype released twice")
	}
	C.fdisk_unref_parttype(t.ptr)
	t.ptr = nil
}

// SetTypestr sets the string identifier (a type GUID for GPT).
func (t *Parttype) SetTypestr(id string) int {
	cs := C.CString(id)
	rc := C.fdisk_parttype_set_typestr(t.ptr, cs)
	C.free(unsafe.Pointer(cs))
	return int(rc)
}

// SetCode sets the numeric identifier.
func (t *Parttype) SetCode(code int) int {
	return int(C.fdisk_parttype_set_code(t.ptr, C.int(code)))
}

// SetName sets the human-readable type name.
func (t *Parttype) SetName(name string) int {
	cs := C.CString(name)
	rc := C.fdisk_parttype_set_name(t.ptr, cs)
	C.free(unsafe.Pointer(cs))
	return int(rc)
}

// String returns the string identifier of a string-typed parttype, or an
// empty string for code-typed ones.
func (t *Parttype) String() string {
	return goString(C.fdisk_parttype_get_string(t.ptr))
}

// Code returns the numeric identifier of a code-typed parttype, zero for
// string-typed ones.
func (t *Parttype) Code() uint {
	return uint(C.fdisk_parttype_get_code(t.ptr))
}

// Name returns the human-readable type name, e.g. "Linux filesystem".
func (t *Parttype) Name() string {
	return goString(C.fdisk_parttype_get_name(t.ptr))
}
