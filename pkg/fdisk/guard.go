package fdisk

import "github.com/ostafen/gofdisk/internal/libfdisk"

// contextGuard owns exactly one native context handle. The raw handle never
// leaves this package; release happens exactly once no matter how many times
// release is called or whether intervening operations failed.
type contextGuard struct {
	cxt      *libfdisk.Context
	released bool
}

// newContextGuard allocates a native context. On allocation failure nothing
// is acquired and there is nothing to release.
func newContextGuard() (*contextGuard, error) {
	cxt := libfdisk.NewContext()
	if cxt == nil {
		return nil, opErr(ErrDevice, "Session", "cannot allocate partitioning context")
	}
	return &contextGuard{cxt: cxt}, nil
}

func (g *contextGuard) release() {
	if g.released {
		return
	}
	g.released = true
	g.cxt.Unref()
	g.cxt = nil
}
