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

// SessionBuilder configures and attaches a Session. Setters may be chained
// in any order; Build validates the configuration, allocates the native
// context and assigns the device.
//
// Defaults are conservative: read-only access, no metadata wipe.
type SessionBuilder struct {
	devicePath string
	readWrite  bool
	wipe       bool
}

// NewSession returns an empty Session builder.
func NewSession() *SessionBuilder {
	return &SessionBuilder{}
}

// Device sets the path of the block device or disk-image file the session
// operates on. Required.
func (b *SessionBuilder) Device(path string) *SessionBuilder {
	b.devicePath = path
	return b
}

// ReadWrite opens the device for writing, allowing the session to persist
// changes to disk. Without it the session is read-only.
func (b *SessionBuilder) ReadWrite() *SessionBuilder {
	b.readWrite = true
	return b
}

// WipeMetadata removes all existing partition table, filesystem and RAID
// signatures from the device at attach time. This is a one-way, destructive
// effect and happens before any table is created.
func (b *SessionBuilder) WipeMetadata() *SessionBuilder {
	b.wipe = true
	return b
}

// Build attaches the session. On any failure no session is returned and no
// native handle survives: the caller observes the session as either fully
// attached or never created.
func (b *SessionBuilder) Build() (*Session, error) {
	const op = "SessionBuilder.Build"

	if b.devicePath == "" {
		return nil, configErr(op, "device path is required")
	}

	guard, err := newContextGuard()
	if err != nil {
		return nil, err
	}

	// Dialog-driven prompting is never meaningful here: operations must
	// fail instead of blocking on a question nobody will answer.
	if rc := guard.cxt.DisableDialogs(true); rc < 0 {
		guard.release()
		return nil, nativeErr(ErrDevice, op, rc)
	}

	// The wipe flag is armed before the device is assigned so signature
	// removal is the first observable side effect of attachment.
	if b.wipe {
		if rc := guard.cxt.EnableWipe(true); rc < 0 {
			guard.release()
			return nil, nativeErr(ErrDevice, op, rc)
		}
	}

	debugf("%s: assigning device %s (read-write=%v, wipe=%v)",
		op, b.devicePath, b.readWrite, b.wipe)

	if rc := guard.cxt.AssignDevice(b.devicePath, !b.readWrite); rc < 0 {
		guard.release()
		return nil, nativeErr(ErrDevice, op, rc)
	}

	return &Session{
		guard:      guard,
		devicePath: b.devicePath,
		readWrite:  b.readWrite,
		wipe:       b.wipe,
	}, nil
}
