// SPDX-License-Identifier: MIT

package matrix

// Mul returns a*b.
// Overflow wraps modulo 2^32 (Go unsigned semantics); there is no error path.
func Mul(a, b uint32) uint32 {
	return a * b
}
