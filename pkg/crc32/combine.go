package crc32

import "github.com/zlstringham/byond/internal/crc32tables"

// combine computes the CRC-32/BYOND of the concatenation of two streams
// given crc1 (over len1 bytes, not needed explicitly), crc2 (over len2
// bytes), and len2, per spec §4.5: peel crc1's implicit seed, advance it by
// len2 bytes' worth of zero-shift via x8nmodp, then XOR in crc2.
func combine(crc1, crc2 uint32, len2 uint64) uint32 {
	crc1 ^= 0xffffffff
	return multmodp(x8nmodp(len2), crc1) ^ crc2
}

// multmodp is a carry-less multiply of a and b, reduced modulo the BYOND
// polynomial: a shift-add loop over a's bits, doubling b (with conditional
// reduction) between each step.
func multmodp(a, b uint32) uint32 {
	var prod uint32
	for {
		if a&1 != 0 {
			prod ^= b
			if a == 1 {
				break
			}
		}
		a >>= 1
		if b&0x80000000 != 0 {
			b = (b << 1) ^ crc32tables.Poly
		} else {
			b = b << 1
		}
	}
	return prod
}

// x8nmodp computes x^(8n) mod p via repeated squaring, using the
// precomputed CombineTable of x^(8*2^k) mod p for k in 0..31. The exponent
// table index wraps at 32 since the polynomial's multiplicative period
// divides 2^32-1.
func x8nmodp(n uint64) uint32 {
	xp := uint32(1)
	k := 0
	for n != 0 {
		if n&1 != 0 {
			xp = multmodp(crc32tables.CombineTable[k], xp)
		}
		n >>= 1
		k++
		if k == 32 {
			k = 0
		}
	}
	return xp
}
