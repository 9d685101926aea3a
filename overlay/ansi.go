// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// pathBufferSize is the size of the NUL terminated path buffers
// handed to imgui.
const pathBufferSize = 1024

// ansiPath encodes path as Windows-1252 into a NUL terminated buffer.
// Characters outside the code page become '?'. It reports whether the
// path was truncated to fit.
func ansiPath(path string) (buf [pathBufferSize]byte, truncated bool) {
	n := 0
	for _, r := range path {
		if n == pathBufferSize-1 {
			return buf, true
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		buf[n] = b
		n++
	}
	return buf, false
}

// cString decodes the NUL terminated Windows-1252 string in buf.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(buf)
	if err != nil {
		return string(buf)
	}
	return string(s)
}

// ansiChar converts r to its Windows-1252 code, truncating characters
// outside the code page.
func ansiChar(r rune) byte {
	if b, ok := charmap.Windows1252.EncodeRune(r); ok {
		return b
	}
	return byte(r)
}
