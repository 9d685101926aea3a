// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnsiPath(t *testing.T) {
	buf, truncated := ansiPath("café/日本.ini")
	assert.False(t, truncated)
	assert.Equal(t, []byte("caf\xe9/??.ini\x00"), buf[:12])
	assert.Equal(t, "café/??.ini", cString(buf[:]))

	buf, truncated = ansiPath("")
	assert.False(t, truncated)
	assert.Equal(t, "", cString(buf[:]))
}

func TestAnsiPathTruncated(t *testing.T) {
	long := strings.Repeat("a", 2000)
	buf, truncated := ansiPath(long)
	assert.True(t, truncated)
	assert.Equal(t, byte(0), buf[pathBufferSize-1])
	assert.Equal(t, long[:pathBufferSize-1], cString(buf[:]))

	exact := strings.Repeat("b", pathBufferSize-1)
	buf, truncated = ansiPath(exact)
	assert.False(t, truncated)
	assert.Equal(t, exact, cString(buf[:]))
}

func TestAnsiChar(t *testing.T) {
	assert.Equal(t, byte('a'), ansiChar('a'))
	assert.Equal(t, byte(0xe9), ansiChar('é'))
	assert.Equal(t, byte(0x80), ansiChar('€'))
	// U+0101 is not in the code page and keeps its low byte.
	assert.Equal(t, byte(0x01), ansiChar('ā'))
}
