// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides operations for restricting drawing to a
rectangular region.

A clip zone is pushed on an op.Ops list and stays in effect until it
is popped. Nested zones intersect with the zones enclosing them.
*/
package clip
