package otp

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateRequest asks for a key of Size bytes named after Name.
type GenerateRequest struct {
	Size int
	Name string
}

// PairRequest links a data file with a key file.
// For decryption Data is the .csd ciphertext.
type PairRequest struct {
	Data string
	Key  string
}

// ParseGenerate builds a GenerateRequest from two arguments given in either order.
// When the first argument parses as a size it is the size, otherwise the second one must.
func ParseGenerate(first, second string) (GenerateRequest, error) {
	sizeArg, name := first, second

	if _, err := strconv.Atoi(first); err != nil {
		sizeArg, name = second, first
	}

	size, err := strconv.Atoi(sizeArg)
	if err != nil || size < 0 {
		return GenerateRequest{}, newError(Generation, CodeInvalidSize, name,
			fmt.Errorf("%w: %q", ErrInvalidSize, sizeArg))
	}

	req := GenerateRequest{Size: size, Name: name}

	if err := req.Validate(); err != nil {
		return GenerateRequest{}, err
	}

	return req, nil
}

// Validate checks that the request names a key and asks for a non-negative size.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return newError(Generation, CodeNoName, r.Name, ErrNoName)
	}

	if r.Size < 0 {
		return newError(Generation, CodeInvalidSize, r.Name, fmt.Errorf("%w: %d", ErrInvalidSize, r.Size))
	}

	return nil
}

// PairDecrypt orders two arguments into a ciphertext/key pair by their extensions.
func PairDecrypt(first, second string) (PairRequest, error) {
	switch {
	case strings.HasSuffix(first, CipherExt) && strings.HasSuffix(second, KeyExt):
		return PairRequest{Data: first, Key: second}, nil
	case strings.HasSuffix(first, KeyExt) && strings.HasSuffix(second, CipherExt):
		return PairRequest{Data: second, Key: first}, nil
	default:
		return PairRequest{}, newError(Decryption, CodeNotAPair, first+", "+second, ErrNotAPair)
	}
}

// PairSeal orders two arguments into a data/key pair. Exactly one of them must be a key file.
func PairSeal(first, second string) (PairRequest, error) {
	firstIsKey := strings.HasSuffix(first, KeyExt)
	secondIsKey := strings.HasSuffix(second, KeyExt)

	switch {
	case firstIsKey && !secondIsKey:
		return PairRequest{Data: second, Key: first}, nil
	case secondIsKey && !firstIsKey:
		return PairRequest{Data: first, Key: second}, nil
	default:
		return PairRequest{}, newError(Encryption, CodeNotAPair, first+", "+second, ErrNotAPair)
	}
}

// Batch groups requests of every kind handed over in one call.
type Batch struct {
	Generate []GenerateRequest
	Encrypt  []string
	Seal     []PairRequest
	Decrypt  []PairRequest

	// Rejected holds requests that failed validation before reaching the engine
	Rejected []Result
}

// Reject records a request that could not be built, keeping its error for the report.
func (b *Batch) Reject(input string, err error) {
	b.Rejected = append(b.Rejected, Result{Input: input, Error: err})
}
