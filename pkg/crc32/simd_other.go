//go:build !amd64

package crc32

// On architectures without a PCLMULQDQ fold, the facade always falls back
// to the baseline slice-by-16 engine (spec §4.3: "when unavailable...the
// facade falls back to baseline"). simdSupported is a constant false here
// (no probe is made), with the same signature as the amd64 build, so the
// dispatch shape in crc32.go never needs an architecture-specific branch of
// its own.
func simdSupported() bool {
	return false
}

// simdUpdate is never called when simdSupported reports false, but it is
// defined so this file type-checks against the same shape as
// simd_amd64.go's version.
func simdUpdate(crc uint32, data []byte) uint32 {
	return sliceBy16(crc, data)
}
