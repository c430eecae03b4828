package libfdisk

//#include <libfdisk/libfdisk.h>
//#cgo pkg-config: fdisk
import "C"

// Table wraps one fdisk_table, a snapshot list of partitions.
type Table struct {
	ptr *C.struct_fdisk_table
}

func (t *Table) Unref() {
	if t.ptr == nil {
		panic("libfdisk: table already unreferenced")
	}
	C.fdisk_unref_table(t.ptr)
	t.ptr = nil
}

func (t *Table) Len() int {
	return int(C.fdisk_table_get_nents(t.ptr))
}

// Get returns the n-th partition of the table, or nil when out of range.
// The returned partition is owned by the table.
func (t *Table) Get(n int) *Partition {
	pa := C.fdisk_table_get_partition(t.ptr, C.size_t(n))
	if pa == nil {
		return nil
	}
	return &Partition{ptr: pa}
}
