package crypto

import "runtime"

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the lifetime of decoded key material in memory.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
