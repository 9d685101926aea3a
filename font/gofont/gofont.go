// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the fonts embedded for the font atlas.
//
// See https://blog.golang.org/go-fonts for a description of the
// Go fonts, and the golang.org/x/image/font/gofont packages for the
// font data. Roboto is included from eliasnaur.com/font.
package gofont

import (
	"fmt"
	"sort"
	"sync"

	"eliasnaur.com/font/roboto/robotoregular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"imoverlay.org/font/opentype"
)

var sources = map[string][]byte{
	"go":     goregular.TTF,
	"gobold": gobold.TTF,
	"gomono": gomono.TTF,
	"roboto": robotoregular.TTF,
}

var (
	mu     sync.Mutex
	parsed = make(map[string]*opentype.Font)
)

// Names returns the names of the embedded faces in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for n := range sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is an embedded face.
func Has(name string) bool {
	_, ok := sources[name]
	return ok
}

// Lookup returns the parsed embedded face called name. Faces are
// parsed once and shared.
func Lookup(name string) (*opentype.Font, error) {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := parsed[name]; ok {
		return f, nil
	}
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown face %q", name)
	}
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("gofont: %s: %w", name, err)
	}
	parsed[name] = f
	return f, nil
}
