package rsc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"bufio"
	"strings"
	"syscall"

	"github.com/zlstringham/byond/pkg/crc32"
)

// Decoder reads a sequence of Resources from an RSC container stream.
type Decoder struct {
	r            *bufio.Reader
	skipChecksum bool
}

// NewDecoder wraps r, verifying each resource's embedded checksum on read.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// NewDecoderSkipChecksum wraps r without verifying embedded checksums.
func NewDecoderSkipChecksum(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r), skipChecksum: true}
}

// ReadNext returns the next live resource, or (nil, nil) at end of stream.
// A non-nil error leaves the Decoder poisoned: callers MUST NOT call
// ReadNext again after one fails.
func (d *Decoder) ReadNext() (*Resource, error) {
	eof, err := d.skipToLiveBlock()
	if err != nil {
		return nil, err
	}
	if eof {
		return nil, nil
	}

	// flags(1) + crc(4) + modified_time(4) + created_time(4) + data_size(4)
	var body [17]byte
	if _, err := io.ReadFull(d.r, body[:]); err != nil {
		return nil, fmt.Errorf("rsc: read block body header: %w", err)
	}
	flags := body[0]
	var crcBytes [4]byte
	copy(crcBytes[:], body[1:5])
	modifiedTime := binary.LittleEndian.Uint32(body[5:9])
	createdTime := binary.LittleEndian.Uint32(body[9:13])
	size := binary.LittleEndian.Uint32(body[13:17])

	if size > maxDataSize {
		return nil, &SizeLimitExceededError{Size: size, Max: maxDataSize}
	}

	nameBytes, err := d.r.ReadBytes(0)
	if err != nil {
		return nil, fmt.Errorf("rsc: read name: %w", err)
	}
	nameBytes = nameBytes[:len(nameBytes)-1] // strip NUL terminator

	data := make([]byte, size)
	if _, err := io.ReadFull(d.r, data); err != nil {
		return nil, fmt.Errorf("rsc: read data: %w", err)
	}

	var crcValue uint32
	if flags&encryptedFlag != 0 {
		// The payload key is the on-disk (still encrypted) CRC field.
		dataKey := binary.LittleEndian.Uint32(crcBytes[:])
		decrypt(crcCryptKey, crcBytes[:])
		crcValue = binary.LittleEndian.Uint32(crcBytes[:])
		decrypt(dataKey, data)
		flags &^= encryptedFlag
	} else {
		crcValue = binary.LittleEndian.Uint32(crcBytes[:])
	}

	if !d.skipChecksum {
		checksum := crc32.NewCrc32()
		checksum.Update(data)
		if actual := checksum.AsUint32(); actual != crcValue {
			return nil, &ChecksumMismatchError{Expected: crcValue, Actual: actual}
		}
	}

	return &Resource{
		Flags:        flags,
		ModifiedTime: modifiedTime,
		CreatedTime:  createdTime,
		Name:         strings.ToValidUTF8(string(nameBytes), "�"),
		Data:         data,
	}, nil
}

// skipToLiveBlock reads and discards flag-0 blocks until a flag-1 block's
// 5-byte header has been consumed. It returns (true, nil) at a clean
// end of stream (zero bytes read where a new block header was expected).
func (d *Decoder) skipToLiveBlock() (eof bool, err error) {
	for {
		var header [5]byte
		n, readErr := io.ReadFull(d.r, header[:])
		if readErr == io.EOF && n == 0 {
			return true, nil
		}
		if readErr == io.ErrUnexpectedEOF {
			return false, fmt.Errorf("rsc: truncated block header: %w", readErr)
		}
		if readErr != nil {
			if isInterrupted(readErr) {
				continue
			}
			return false, fmt.Errorf("rsc: read block header: %w", readErr)
		}

		switch flag := header[4]; flag {
		case 0:
			size := binary.LittleEndian.Uint32(header[0:4])
			if _, err := io.CopyN(io.Discard, d.r, int64(size)); err != nil {
				return false, fmt.Errorf("rsc: discard dead block: %w", err)
			}
			continue
		case 1:
			return false, nil
		default:
			return false, &UnexpectedBlockFlagError{Flag: flag}
		}
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}

// ReadAll drains the stream into a slice of resources.
func (d *Decoder) ReadAll() ([]*Resource, error) {
	var resources []*Resource
	for {
		resource, err := d.ReadNext()
		if err != nil {
			return resources, err
		}
		if resource == nil {
			return resources, nil
		}
		resources = append(resources, resource)
	}
}
