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
	"strings"

	"github.com/google/uuid"
)

// Partition is an immutable template describing one partition to add to a
// table. Fields that are left unset (start, number) are chosen by the
// engine at add time. Name length and encoding constraints depend on the
// active table kind and are enforced by the engine, not here.
type Partition struct {
	ptype     PartType
	name      string
	uuid      string
	number    uint
	hasNumber bool
	start     uint64
	hasStart  bool
	size      uint64
}

// Type returns the partition's type identifier.
func (p Partition) Type() PartType { return p.ptype }

// Name returns the optional partition name.
func (p Partition) Name() string { return p.name }

// UUID returns the optional per-partition UUID (GPT only).
func (p Partition) UUID() string { return p.uuid }

// Number returns the requested partition number and whether one was set.
func (p Partition) Number() (uint, bool) { return p.number, p.hasNumber }

// Start returns the requested starting sector and whether one was set.
// When unset, the engine picks the first suitable free sector.
func (p Partition) Start() (uint64, bool) { return p.start, p.hasStart }

// SizeInSectors returns the partition size. Always strictly positive.
func (p Partition) SizeInSectors() uint64 { return p.size }

// PartitionList is an ordered batch of partitions, mutable until handed to
// Session.AppendPartitions. No client-side overlap or uniqueness checking
// is performed; the engine is authoritative.
type PartitionList []Partition

// PartitionBuilder configures and validates a Partition.
type PartitionBuilder struct {
	ptype     PartType
	typeSet   bool
	name      string
	uuid      string
	number    uint
	hasNumber bool
	start     uint64
	hasStart  bool
	size      int64
	sizeSet   bool
}

// NewPartitionTemplate returns an empty Partition builder.
func NewPartitionTemplate() *PartitionBuilder {
	return &PartitionBuilder{}
}

// Type sets the partition's type. Required.
func (b *PartitionBuilder) Type(t PartType) *PartitionBuilder {
	b.ptype = t
	b.typeSet = true
	return b
}

// Name sets the partition's human-readable name.
func (b *PartitionBuilder) Name(name string) *PartitionBuilder {
	b.name = name
	return b
}

// UUID sets the per-partition UUID.
func (b *PartitionBuilder) UUID(id string) *PartitionBuilder {
	b.uuid = id
	return b
}

// Number requests a specific partition number. By default the engine picks
// the first free one.
func (b *PartitionBuilder) Number(n uint) *PartitionBuilder {
	b.number = n
	b.hasNumber = true
	return b
}

// StartingSector sets the partition's first sector. By default the engine
// picks the first suitable free sector.
func (b *PartitionBuilder) StartingSector(sector uint64) *PartitionBuilder {
	b.start = sector
	b.hasStart = true
	return b
}

// SizeInSectors sets the partition's size. Required, must be positive.
func (b *PartitionBuilder) SizeInSectors(sectors int64) *PartitionBuilder {
	b.size = sectors
	b.sizeSet = true
	return b
}

// Build validates the configuration and produces an immutable Partition.
// A type and a strictly positive size are required. Validation that depends
// on engine state (table kind match, free space, geometry) is deferred to
// the add operation.
func (b *PartitionBuilder) Build() (Partition, error) {
	const op = "PartitionBuilder.Build"

	if !b.typeSet || b.ptype.isZero() {
		return Partition{}, configErr(op, "partition type is required")
	}
	if !b.sizeSet {
		return Partition{}, configErr(op, "size in sectors is required")
	}
	if b.size <= 0 {
		return Partition{}, configErr(op, "size in sectors must be positive, got %d", b.size)
	}

	p := Partition{
		ptype:     b.ptype,
		name:      b.name,
		number:    b.number,
		hasNumber: b.hasNumber,
		start:     b.start,
		hasStart:  b.hasStart,
		size:      uint64(b.size),
	}
	if b.uuid != "" {
		u, err := uuid.Parse(b.uuid)
		if err != nil {
			return Partition{}, configErr(op, "invalid partition UUID %q: %v", b.uuid, err)
		}
		p.uuid = strings.ToLower(u.String())
	}
	return p, nil
}
