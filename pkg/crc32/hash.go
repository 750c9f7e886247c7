package crc32

import "hash"

// Crc32 conforms to hash.Hash32 so it can be used anywhere Go's standard
// hashing capability set is expected (spec §4.4: "the hasher also conforms
// to the host language's generic hashing capability set").
var _ hash.Hash32 = (*Crc32)(nil)

// Write implements io.Writer / hash.Hash by delegating to Update. It never
// returns an error.
func (c *Crc32) Write(p []byte) (int, error) {
	c.Update(p)
	return len(p), nil
}

// Sum appends the big-endian encoding of the current checksum to b.
func (c *Crc32) Sum(b []byte) []byte {
	v := c.AsUint32()
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Size returns the number of bytes Sum appends.
func (c *Crc32) Size() int { return 4 }

// BlockSize returns the hash's natural block size. CRC-32/BYOND processes
// one byte at a time in its simplest form, so this is 1.
func (c *Crc32) BlockSize() int { return 1 }

// Sum32 returns the current checksum to satisfy hash.Hash32; it is
// identical to AsUint32.
func (c *Crc32) Sum32() uint32 { return c.AsUint32() }
