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

import "strings"

// TableKind identifies a partition table format family.
type TableKind int

const (
	// GPT is the GUID partition table format.
	GPT TableKind = iota + 1
	// DOS is the classic MBR partition table format.
	DOS
	// BSD disklabels.
	BSD
	// SGI volume headers.
	SGI
	// SUN disk labels.
	SUN
)

// String returns the label name the engine uses for the kind.
func (k TableKind) String() string {
	switch k {
	case GPT:
		return "gpt"
	case DOS:
		return "dos"
	case BSD:
		return "bsd"
	case SGI:
		return "sgi"
	case SUN:
		return "sun"
	default:
		return "unknown"
	}
}

func (k TableKind) valid() bool {
	return k >= GPT && k <= SUN
}

// ParseTableKind converts a label name into a TableKind. "mbr" is accepted
// as an alias for "dos".
func ParseTableKind(s string) (TableKind, bool) {
	switch strings.ToLower(s) {
	case "gpt":
		return GPT, true
	case "dos", "mbr":
		return DOS, true
	case "bsd":
		return BSD, true
	case "sgi":
		return SGI, true
	case "sun":
		return SUN, true
	}
	return 0, false
}
