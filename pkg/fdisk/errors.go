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
	"syscall"

	"github.com/ostafen/gofdisk/internal/libfdisk"
)

// ErrorKind classifies every failure surfaced by this package.
type ErrorKind int

const (
	// ErrDevice covers open, assign and wipe failures.
	ErrDevice ErrorKind = iota + 1
	// ErrTable covers unsupported or missing partition tables.
	ErrTable
	// ErrCapacity covers insufficient free space and size constraint
	// violations reported by the engine.
	ErrCapacity
	// ErrTypeMismatch is returned when a partition type representation
	// does not match the active table kind (GUID vs. numeric code).
	ErrTypeMismatch
	// ErrIO covers failures while committing the table to disk.
	ErrIO
	// ErrConfig covers builder validation failures. Configuration errors
	// are fully local and never reach the engine.
	ErrConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDevice:
		return "device"
	case ErrTable:
		return "table"
	case ErrCapacity:
		return "capacity"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrIO:
		return "io"
	case ErrConfig:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every fallible operation of
// this package. Native status codes are never passed through bare: they are
// classified into a Kind and kept in Code for diagnostics, together with the
// engine's own message.
type Error struct {
	Kind ErrorKind
	Op   string
	Code int // negative errno reported by the engine, zero for local failures
	Msg  string
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("fdisk: %s: %s error: %s (status %d)", e.Op, e.Kind, e.Msg, e.Code)
	}
	return fmt.Sprintf("fdisk: %s: %s error: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap exposes the originating errno, so callers can match against
// syscall.Errno values with errors.Is.
func (e *Error) Unwrap() error {
	if e.Code < 0 {
		return syscall.Errno(-e.Code)
	}
	return nil
}

// configErr reports a local validation failure that never touched the engine.
func configErr(op, format string, args ...any) *Error {
	return &Error{Kind: ErrConfig, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// opErr reports a local operation failure with no native status attached.
func opErr(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// nativeErr translates a negative engine status into an Error, deriving the
// message from the engine's error-string facility.
func nativeErr(kind ErrorKind, op string, rc int) *Error {
	return &Error{Kind: kind, Op: op, Code: rc, Msg: libfdisk.Strerror(rc)}
}

// classifyAddStatus maps a failed fdisk_add_partition status to an ErrorKind.
// The engine is authoritative on placement and capacity; everything it
// rejects for lack of space comes back as ENOSPC or ERANGE.
func classifyAddStatus(rc int) ErrorKind {
	switch syscall.Errno(-rc) {
	case syscall.ENOSPC, syscall.ERANGE:
		return ErrCapacity
	default:
		return ErrTable
	}
}
