package otp

import (
	"errors"
	"fmt"
	"io"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 1024

// ReadAll reads r into memory in chunks of chunkSize bytes.
//
// A read of zero bytes or fewer than chunkSize bytes ends the loop, so a short read
// from a pipe or similar stream is taken as end of input. A read error aborts
// immediately and is returned together with whatever was read before it.
func ReadAll(r io.Reader, chunkSize int) ([]byte, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var data []byte

	buf := make([]byte, chunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			return data, nil
		}

		if err != nil {
			return data, fmt.Errorf("reading chunk: %w", err)
		}

		if n < chunkSize {
			return data, nil
		}
	}
}
