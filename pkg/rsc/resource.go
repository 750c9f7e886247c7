// Package rsc implements the RSC container codec: a binary format holding a
// sequence of named resource blocks, each with timestamps, flags, payload
// bytes, an embedded CRC-32/BYOND of the payload, and an optional XOR/hash-
// chain obfuscation layer.
package rsc

// maxDataSize is the decoder's portable allocation limit for a single
// resource's payload: 2^31-1 bytes. A declared size larger than this is
// rejected before any buffer is allocated (see Decoder.ReadNext). The
// encoder's own bound is looser — see maxEncodeDataSize in encoder.go.
const maxDataSize = 1<<31 - 1

// encryptedFlag is the on-disk marker bit in a live block's flags byte. It
// is never surfaced to callers: Resource.Flags always holds the low 7 bits.
const encryptedFlag = 0x80

// Resource is a single named entry in an RSC container.
type Resource struct {
	// Flags holds the low 7 user-visible bits; the on-disk encrypted
	// marker (bit 0x80) is stripped on decode and added on encode only
	// when the Encoder was built with encryption enabled.
	Flags uint8
	// ModifiedTime and CreatedTime are opaque 32-bit timestamps, seconds
	// since whatever epoch the caller's domain uses.
	ModifiedTime uint32
	CreatedTime  uint32
	// Name is the resource's path/identifier, stored NUL-terminated on
	// disk. Lossy UTF-8 decoding is applied on read.
	Name string
	// Data is the resource payload. On encode, length must not exceed
	// 2^32-1 bytes (spec §4.7); a decoded Resource's Data never exceeds
	// 2^31-1 bytes, the decoder's stricter read-side allocation bound
	// (spec §4.8).
	Data []byte
}
