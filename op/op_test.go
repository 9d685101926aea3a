// SPDX-License-Identifier: Unlicense OR MIT

package op

import "testing"

func TestUnbalancedPop(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("out of order Pop didn't panic")
		}
	}()
	var ops Ops
	outer := ops.Push()
	ops.Push()
	ops.Pop(outer)
}

func TestResetClearsRefs(t *testing.T) {
	var ops Ops
	ops.Write(4, "a", "b")
	ops.Push()
	v := ops.Version()
	ops.Reset()
	if len(ops.Data()) != 0 || len(ops.Refs()) != 0 {
		t.Errorf("Reset left data: %d bytes, %d refs", len(ops.Data()), len(ops.Refs()))
	}
	if ops.Depth() != 0 {
		t.Errorf("Reset left depth %d", ops.Depth())
	}
	if ops.Version() != v+1 {
		t.Errorf("version not bumped: have %d, want %d", ops.Version(), v+1)
	}
}
