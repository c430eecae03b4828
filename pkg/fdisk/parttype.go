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
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Frequently used GPT partition type GUIDs.
const (
	GUIDEFISystem        = "c12a7328-f81f-11d2-ba4b-00a0c93ec93b"
	GUIDBIOSBoot         = "21686148-6449-6e6f-744e-656564454649"
	GUIDWindowsBasicData = "ebd0a0a2-b9e5-4433-87c0-68b6b72699c7"
	GUIDLinuxData        = "0fc63daf-8483-4772-8e79-3d69d8477de4"
	GUIDLinuxSwap        = "0657fd6d-a4ab-43c4-84e5-0933c84b4f4f"
	GUIDLinuxLVM         = "e6d6d379-f507-44c2-a23c-238f2a3df928"
	GUIDLinuxRaid        = "a19d880f-05fc-4d3b-a006-743f0f84911e"
	GUIDLinuxHome        = "933ac7e1-2eb4-4f13-b844-0e14e2aef915"
	GUIDLinuxRootX86_64  = "4f68bce3-e8cd-4db1-96e7-fbcaf984b709"
)

// Frequently used MBR partition type codes.
const (
	CodeEmpty     uint = 0x00
	CodeFAT16     uint = 0x06
	CodeNTFS      uint = 0x07
	CodeFAT32LBA  uint = 0x0c
	CodeExtended  uint = 0x05
	CodeLinuxSwap uint = 0x82
	CodeLinux     uint = 0x83
	CodeLinuxLVM  uint = 0x8e
	CodeLinuxRaid uint = 0xfd
	CodeEFI       uint = 0xee
)

// PartType identifies a partition's type. It holds exactly one of a type
// GUID (for GUID-addressed tables such as GPT) or a numeric code (for
// legacy tables such as MBR). Which representation the active table accepts
// is only known to the engine, so the match is checked when the type is
// used in an add operation, not here.
type PartType struct {
	guid    string
	code    uint
	hasGUID bool
	hasCode bool
	name    string
}

// GUID returns the type GUID and whether the GUID representation is set.
func (t PartType) GUID() (string, bool) {
	return t.guid, t.hasGUID
}

// Code returns the numeric type identifier and whether the code
// representation is set.
func (t PartType) Code() (uint, bool) {
	return t.code, t.hasCode
}

// Name returns the optional human-readable type name.
func (t PartType) Name() string {
	return t.name
}

func (t PartType) String() string {
	if t.hasGUID {
		return t.guid
	}
	if t.hasCode {
		return fmt.Sprintf("0x%02x", t.code)
	}
	return "<unset>"
}

// isZero reports whether the value was never built (the zero PartType).
func (t PartType) isZero() bool {
	return !t.hasGUID && !t.hasCode
}

// PartTypeBuilder configures and validates a PartType. Setters may be
// chained in any order; Build performs the validation.
type PartTypeBuilder struct {
	guid    string
	code    uint
	hasGUID bool
	hasCode bool
	name    string
}

// NewPartType returns an empty PartType builder.
func NewPartType() *PartTypeBuilder {
	return &PartTypeBuilder{}
}

// GUID sets the type identifier for GUID-addressed tables (GPT).
func (b *PartTypeBuilder) GUID(guid string) *PartTypeBuilder {
	b.guid = guid
	b.hasGUID = true
	return b
}

// Code sets the numeric type identifier for legacy tables (MBR, SGI, SUN).
func (b *PartTypeBuilder) Code(code uint) *PartTypeBuilder {
	b.code = code
	b.hasCode = true
	return b
}

// Name sets an optional human-readable name for the type. When set, the
// name is attached to the native type object handed to the engine.
func (b *PartTypeBuilder) Name(name string) *PartTypeBuilder {
	b.name = name
	return b
}

// Build validates the configuration and produces an immutable PartType.
// Exactly one of GUID or Code must have been set; GUIDs must parse as
// RFC 4122 identifiers and are normalized to lower case.
func (b *PartTypeBuilder) Build() (PartType, error) {
	const op = "PartTypeBuilder.Build"

	switch {
	case b.hasGUID && b.hasCode:
		return PartType{}, configErr(op, "GUID and Code are mutually exclusive")
	case !b.hasGUID && !b.hasCode:
		return PartType{}, configErr(op, "one of GUID or Code is required")
	}

	t := PartType{code: b.code, hasCode: b.hasCode, name: b.name}
	if b.hasGUID {
		u, err := uuid.Parse(b.guid)
		if err != nil {
			return PartType{}, configErr(op, "invalid type GUID %q: %v", b.guid, err)
		}
		t.guid = strings.ToLower(u.String())
		t.hasGUID = true
	}
	return t, nil
}
