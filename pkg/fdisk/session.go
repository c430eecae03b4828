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
package fdisk

import (
	"github.com/ostafen/gofdisk/internal/libfdisk"
)

// Session is an attached partition-table edit session over one device.
// It owns exactly one native context handle for its whole lifetime.
//
// All edits happen in memory inside the engine; nothing reaches the disk
// until Write is called. Closing (or abandoning) a session that never
// called Write discards its in-memory table.
//
// A Session is not safe for concurrent use from multiple goroutines
// without external synchronization. Independent Sessions over different
// devices are fully independent.
type Session struct {
	guard      *contextGuard
	devicePath string
	readWrite  bool
	wipe       bool
}

// Close releases the native handle, closing the device without syncing
// unwritten changes. Safe to call more than once; only the first call
// releases anything.
func (s *Session) Close() error {
	if s.guard.released {
		return nil
	}
	debugf("Session.Close: releasing context for %s", s.devicePath)
	s.guard.release()
	return nil
}

func (s *Session) closed() bool {
	return s.guard.released
}

// CreateTable discards any in-memory table held by the engine and
// initializes a fresh, empty one of the given kind. Calling it again simply
// replaces the previous in-memory table; partitions added to the first do
// not survive.
func (s *Session) CreateTable(kind TableKind) error {
	const op = "Session.CreateTable"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	if !kind.valid() {
		return opErr(ErrTable, op, "unsupported table kind %d", int(kind))
	}
	if !s.readWrite {
		return opErr(ErrTable, op, "session is read-only")
	}

	debugf("%s: creating %s table on %s", op, kind, s.devicePath)
	if rc := s.guard.cxt.CreateDisklabel(kind.String()); rc < 0 {
		return nativeErr(ErrTable, op, rc)
	}
	return nil
}

// AddPartition validates p against the active table kind and current free
// space inside the engine, appends it to the in-memory table, and returns
// the engine-assigned partition number.
func (s *Session) AddPartition(p Partition) (uint, error) {
	return s.addPartition("Session.AddPartition", p)
}

func (s *Session) addPartition(op string, p Partition) (uint, error) {
	if s.closed() {
		return 0, opErr(ErrDevice, op, "session is closed")
	}
	if !s.guard.cxt.HasLabel() {
		return 0, opErr(ErrTable, op, "no partition table, create one first")
	}
	if p.Type().isZero() {
		return 0, configErr(op, "partition was not built, its type is unset")
	}

	lb := s.guard.cxt.Label("")
	if lb == nil {
		return 0, opErr(ErrTable, op, "no active label")
	}

	// Resolve the partition type against the active label. The mismatch
	// check keys on the label's addressing mode only: a GUID fits any
	// GUID-addressed table and a code any code-addressed one, whether or
	// not the label's static catalog lists the identifier. Catalog misses
	// and types carrying a custom name get an allocated parttype of their
	// own, since label-owned entries are immutable.
	codeBased := lb.HasCodeParttypes()

	var ptype *libfdisk.Parttype
	if guid, ok := p.Type().GUID(); ok {
		if codeBased {
			return 0, opErr(ErrTypeMismatch, op,
				"type GUID %s is not valid for a %s table", guid, lb.Name())
		}
		ptype = lb.ParttypeFromString(guid)
	} else if code, ok := p.Type().Code(); ok {
		if !codeBased {
			return 0, opErr(ErrTypeMismatch, op,
				"type code 0x%02x is not valid for a %s table", code, lb.Name())
		}
		ptype = lb.ParttypeFromCode(code)
	}

	if ptype == nil || p.Type().Name() != "" {
		own := libfdisk.NewParttype()
		if own == nil {
			return 0, opErr(ErrDevice, op, "cannot allocate partition type")
		}
		defer own.Unref()

		if guid, ok := p.Type().GUID(); ok {
			if rc := own.SetTypestr(guid); rc < 0 {
				return 0, nativeErr(ErrTable, op, rc)
			}
		} else if code, ok := p.Type().Code(); ok {
			if rc := own.SetCode(int(code)); rc < 0 {
				return 0, nativeErr(ErrTable, op, rc)
			}
		}
		if name := p.Type().Name(); name != "" {
			if rc := own.SetName(name); rc < 0 {
				return 0, nativeErr(ErrTable, op, rc)
			}
		}
		ptype = own
	}

	pa := libfdisk.NewPartition()
	if pa == nil {
		return 0, opErr(ErrDevice, op, "cannot allocate partition template")
	}
	defer pa.Unref()

	if rc := pa.SetType(ptype); rc < 0 {
		return 0, nativeErr(ErrTable, op, rc)
	}
	if p.Name() != "" {
		if rc := pa.SetName(p.Name()); rc < 0 {
			return 0, nativeErr(ErrTable, op, rc)
		}
	}
	if p.UUID() != "" {
		if rc := pa.SetUUID(p.UUID()); rc < 0 {
			return 0, nativeErr(ErrTable, op, rc)
		}
	}

	if number, ok := p.Number(); ok {
		if rc := pa.SetPartno(number); rc < 0 {
			return 0, nativeErr(ErrTable, op, rc)
		}
	} else if rc := pa.PartnoFollowDefault(true); rc < 0 {
		return 0, nativeErr(ErrTable, op, rc)
	}

	if start, ok := p.Start(); ok {
		if rc := pa.SetStart(start); rc < 0 {
			return 0, nativeErr(ErrTable, op, rc)
		}
	} else if rc := pa.StartFollowDefault(true); rc < 0 {
		return 0, nativeErr(ErrTable, op, rc)
	}

	if rc := pa.EndFollowDefault(false); rc < 0 {
		return 0, nativeErr(ErrTable, op, rc)
	}
	if rc := pa.SetSize(p.SizeInSectors()); rc < 0 {
		return 0, nativeErr(ErrTable, op, rc)
	}

	partno, rc := s.guard.cxt.AddPartition(pa)
	if rc < 0 {
		return 0, nativeErr(classifyAddStatus(rc), op, rc)
	}

	debugf("%s: added partition %d (%s, %d sectors)", op, partno, p.Type(), p.SizeInSectors())
	return partno, nil
}

// AppendPartitions adds each element of list in order, stopping at the
// first failure. Partitions added before the failure stay in the in-memory
// table; there is no batch rollback. The returned error reports which
// element failed.
func (s *Session) AppendPartitions(list PartitionList) error {
	const op = "Session.AppendPartitions"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	for i, p := range list {
		if _, err := s.addPartition(op, p); err != nil {
			e := err.(*Error)
			e.Msg = sprintf("partition %d of %d: %s", i+1, len(list), e.Msg)
			return e
		}
	}
	return nil
}

// DeletePartition removes the partition with the given number from the
// in-memory table.
func (s *Session) DeletePartition(partno uint) error {
	const op = "Session.DeletePartition"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	if rc := s.guard.cxt.DeletePartition(partno); rc < 0 {
		return nativeErr(ErrTable, op, rc)
	}
	return nil
}

// DeleteAllPartitions empties the in-memory table.
func (s *Session) DeleteAllPartitions() error {
	const op = "Session.DeleteAllPartitions"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	if rc := s.guard.cxt.DeleteAllPartitions(); rc < 0 {
		return nativeErr(ErrTable, op, rc)
	}
	return nil
}

// Write commits the in-memory table to the device. This is the only
// operation with a durable side effect and it is never called implicitly.
// On failure the in-memory table is left unchanged and may be retried or
// abandoned.
func (s *Session) Write() error {
	const op = "Session.Write"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	if !s.readWrite {
		return opErr(ErrIO, op, "session is read-only")
	}

	debugf("%s: writing partition table to %s", op, s.devicePath)
	if rc := s.guard.cxt.WriteDisklabel(); rc < 0 {
		return nativeErr(ErrIO, op, rc)
	}
	return nil
}

// DiscardChanges drops all in-memory modifications and re-reads the
// on-disk table, keeping the session attached.
func (s *Session) DiscardChanges() error {
	const op = "Session.DiscardChanges"

	if s.closed() {
		return opErr(ErrDevice, op, "session is closed")
	}
	if rc := s.guard.cxt.ReassignDevice(); rc < 0 {
		return nativeErr(ErrDevice, op, rc)
	}
	return nil
}

// PartitionInfo is one row of an explicit read-back of the in-memory table.
type PartitionInfo struct {
	Number        uint
	Start         uint64
	SizeInSectors uint64
	Name          string
	// Type is the raw type identifier: a GUID for GUID-addressed tables,
	// a hexadecimal code otherwise.
	Type string
	// TypeName is the engine's human-readable type name, when known.
	TypeName string
}

// List reads the in-memory table back from the engine. The session keeps no
// client-side mirror of partitions; this is the only way to observe them.
func (s *Session) List() ([]PartitionInfo, error) {
	const op = "Session.List"

	if s.closed() {
		return nil, opErr(ErrDevice, op, "session is closed")
	}

	tb, rc := s.guard.cxt.Partitions()
	if rc < 0 {
		return nil, nativeErr(ErrTable, op, rc)
	}
	defer tb.Unref()

	infos := make([]PartitionInfo, 0, tb.Len())
	for i := 0; i < tb.Len(); i++ {
		pa := tb.Get(i)
		if pa == nil {
			continue
		}
		info := PartitionInfo{
			Number:        pa.Partno(),
			Start:         pa.Start(),
			SizeInSectors: pa.Size(),
			Name:          pa.Name(),
		}
		if t := pa.Type(); t != nil {
			info.TypeName = t.Name()
			if id := t.String(); id != "" {
				info.Type = id
			} else {
				info.Type = sprintf("0x%02x", t.Code())
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// DevicePath returns the path the session was built with.
func (s *Session) DevicePath() string { return s.devicePath }

// IsReadOnly reports whether the session was attached without ReadWrite.
func (s *Session) IsReadOnly() bool { return !s.readWrite }

// HasWipe reports whether metadata wiping was enabled at build time.
func (s *Session) HasWipe() bool {
	if s.closed() {
		return s.wipe
	}
	return s.guard.cxt.HasWipe()
}

// HasPartitionTable reports whether the engine currently holds a table for
// the device, either read from disk at attach time or created since.
func (s *Session) HasPartitionTable() bool {
	return !s.closed() && s.guard.cxt.HasLabel()
}

// Label returns the name of the active table kind ("gpt", "dos", ...) or an
// empty string when no table is present.
func (s *Session) Label() string {
	if s.closed() || !s.guard.cxt.HasLabel() {
		return ""
	}
	lb := s.guard.cxt.Label("")
	if lb == nil {
		return ""
	}
	return lb.Name()
}

// SectorSize returns the device's logical sector size in bytes.
func (s *Session) SectorSize() uint64 {
	if s.closed() {
		return 0
	}
	return s.guard.cxt.SectorSize()
}

// SizeInSectors returns the device size in logical sectors.
func (s *Session) SizeInSectors() uint64 {
	if s.closed() {
		return 0
	}
	return s.guard.cxt.NSectors()
}

// IsImageFile reports whether the assigned device is a regular file.
func (s *Session) IsImageFile() bool {
	return !s.closed() && s.guard.cxt.IsRegfile()
}

// HasCollisions reports whether a filesystem or RAID signature detected on
// the device at attach time is still standing. On a wipe-enabled session
// every detected signature is condemned from the moment of attachment, so
// none is ever reported.
func (s *Session) HasCollisions() bool {
	return !s.closed() && !s.wipe && s.guard.cxt.Collision() != ""
}

// CollisionName returns the name of the detected signature, if any.
func (s *Session) CollisionName() string {
	if s.closed() || s.wipe {
		return ""
	}
	return s.guard.cxt.Collision()
}
