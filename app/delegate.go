// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"golang.org/x/exp/slices"
)

// Handle identifies a registered delegate.
type Handle uint64

// Delegates is an ordered list of callbacks of type F.
type Delegates[F any] struct {
	entries []delegate[F]
	next    Handle
}

type delegate[F any] struct {
	h Handle
	f F
}

// Add appends f and returns a handle for removing it.
func (d *Delegates[F]) Add(f F) Handle {
	d.next++
	d.entries = append(d.entries, delegate[F]{h: d.next, f: f})
	return d.next
}

// Remove removes the delegate registered with h. It reports whether
// the delegate was present.
func (d *Delegates[F]) Remove(h Handle) bool {
	i := slices.IndexFunc(d.entries, func(e delegate[F]) bool { return e.h == h })
	if i < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	return true
}

// Len returns the number of registered delegates.
func (d *Delegates[F]) Len() int {
	return len(d.entries)
}

// each calls call with every delegate registered when each was
// called.
func (d *Delegates[F]) each(call func(F)) {
	for _, e := range slices.Clone(d.entries) {
		call(e.f)
	}
}
