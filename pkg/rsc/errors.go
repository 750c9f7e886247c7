package rsc

import "fmt"

// UnexpectedBlockFlagError reports a block frame whose flag byte was
// neither 0 (dead) nor 1 (live). The stream is unrecoverable past this
// point.
type UnexpectedBlockFlagError struct {
	Flag byte
}

func (e *UnexpectedBlockFlagError) Error() string {
	return fmt.Sprintf("rsc: unexpected block flag %#02x (expected 0 or 1)", e.Flag)
}

// SizeLimitExceededError reports a payload size beyond the caller's bound:
// the decoder's portable allocation limit on read (raised before any buffer
// sized by the offending value is allocated), or the encoder's u32 wire
// limit on write.
type SizeLimitExceededError struct {
	Size uint32
	Max  uint64
}

func (e *SizeLimitExceededError) Error() string {
	return fmt.Sprintf("rsc: size limit exceeded (size %d exceeds maximum %d)", e.Size, e.Max)
}

// ChecksumMismatchError reports that a decoded resource's embedded CRC did
// not match the CRC-32/BYOND recomputed over its (post-decryption) data.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("rsc: checksum mismatch (expected %#08x, actual %#08x)", e.Expected, e.Actual)
}
