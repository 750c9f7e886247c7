package rsc

// jenkinsHash is Bob Jenkins' 32-bit full-avalanche integer mixer
// (https://burtleburtle.net/bob/hash/integer.html), used here to evolve the
// obfuscation key byte by byte. All arithmetic wraps modulo 2^32, which is
// exactly what Go's uint32 already does.
func jenkinsHash(a uint32) uint32 {
	a = (a + 0x7ed55d16) + (a << 12)
	a = (a ^ 0xc761c23c) ^ (a >> 19)
	a = (a + 0x165667b1) + (a << 5)
	a = (a + 0xd3a2646c) ^ (a << 9)
	a = (a + 0xfd7046c5) + (a << 3)
	a = (a ^ 0xb55a4f09) ^ (a >> 16)
	return a
}

// encrypt XORs buf in place, advancing the key with jenkinsHash AFTER each
// byte is mutated — keyed on the resulting ciphertext byte. Not
// cryptography: a reversible byte-chained XOR.
func encrypt(key uint32, buf []byte) {
	k := key
	for i, b := range buf {
		xor := byte(k & 0xff)
		b ^= xor
		buf[i] = b
		k = jenkinsHash(k + uint32(b))
	}
}

// decrypt is the exact inverse of encrypt. The key must advance from the
// same ciphertext byte encrypt advanced from, so here it advances BEFORE
// the byte is mutated, keyed on the still-encrypted byte. Swapping this
// ordering to match encrypt's (key advances after mutation) is the classic
// mistake: it produces a decrypt that does not invert encrypt.
func decrypt(key uint32, buf []byte) {
	k := key
	for i, b := range buf {
		xor := byte(k & 0xff)
		k = jenkinsHash(k + uint32(b))
		buf[i] = b ^ xor
	}
}
