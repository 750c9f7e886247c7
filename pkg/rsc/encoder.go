package rsc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/zlstringham/byond/pkg/crc32"
)

// crcCryptKey is the fixed key used to encrypt a live block's CRC field
// whenever encryption is requested. The result, reinterpreted as a LE u32,
// becomes the key for the data payload itself.
const crcCryptKey uint32 = 0x45dd0ba6

// maxEncodeDataSize is the encoder's validation bound: data.len() <= 2^32-1
// (spec §4.7 step 1), matching the Rust original's `len() > u32::MAX as
// usize` check. This is distinct from, and looser than, the decoder's
// maxDataSize (2^31-1) — that bound exists only to guard against an
// oversized allocation on read and has no bearing on what the encoder may
// write.
const maxEncodeDataSize = math.MaxUint32

// Encoder writes a sequence of Resources to an RSC container stream.
type Encoder struct {
	w       *bufio.Writer
	encrypt bool
}

// NewEncoder wraps w for unencrypted writes.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// NewEncryptingEncoder wraps w and marks every written live block as
// encrypted (sets flags' high bit on disk and encrypts the CRC and data
// fields).
func NewEncryptingEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), encrypt: true}
}

// Write encodes a single resource as a flag-1 (live) block and flushes the
// underlying writer. The encoder never emits flag-0 (dead) blocks; those
// are only produced by external tools or manual edits.
func (e *Encoder) Write(resource *Resource) error {
	if len(resource.Data) > maxEncodeDataSize {
		return &SizeLimitExceededError{Size: uint32(len(resource.Data)), Max: maxEncodeDataSize}
	}

	// block_size: flags(1) + crc(4) + modified_time(4) + created_time(4)
	// + data_size(4) + name bytes + NUL(1) + data bytes.
	blockSize := 1 + 4 + 4 + 4 + 4 + len(resource.Name) + 1 + len(resource.Data)
	if err := e.writeUint32(uint32(blockSize)); err != nil {
		return err
	}
	if err := e.w.WriteByte(1); err != nil {
		return fmt.Errorf("rsc: write block flag: %w", err)
	}

	checksum := crc32.NewCrc32()
	checksum.Update(resource.Data)
	crcValue := checksum.AsUint32()

	data := resource.Data
	flags := resource.Flags
	if e.encrypt {
		flags |= encryptedFlag

		var crcBytes [4]byte
		binary.LittleEndian.PutUint32(crcBytes[:], crcValue)
		encrypt(crcCryptKey, crcBytes[:])
		dataKey := binary.LittleEndian.Uint32(crcBytes[:])

		data = append([]byte(nil), resource.Data...)
		encrypt(dataKey, data)

		if err := e.w.WriteByte(flags); err != nil {
			return fmt.Errorf("rsc: write flags: %w", err)
		}
		if _, err := e.w.Write(crcBytes[:]); err != nil {
			return fmt.Errorf("rsc: write crc: %w", err)
		}
	} else {
		if err := e.w.WriteByte(flags); err != nil {
			return fmt.Errorf("rsc: write flags: %w", err)
		}
		if err := e.writeUint32(crcValue); err != nil {
			return err
		}
	}

	if err := e.writeUint32(resource.ModifiedTime); err != nil {
		return err
	}
	if err := e.writeUint32(resource.CreatedTime); err != nil {
		return err
	}
	if err := e.writeUint32(uint32(len(resource.Data))); err != nil {
		return err
	}
	if _, err := e.w.WriteString(resource.Name); err != nil {
		return fmt.Errorf("rsc: write name: %w", err)
	}
	if err := e.w.WriteByte(0); err != nil {
		return fmt.Errorf("rsc: write name terminator: %w", err)
	}
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("rsc: write data: %w", err)
	}

	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("rsc: flush: %w", err)
	}
	return nil
}

func (e *Encoder) writeUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if _, err := e.w.Write(b[:]); err != nil {
		return fmt.Errorf("rsc: write: %w", err)
	}
	return nil
}
