package otp

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingInput is returned when an input or key file does not exist.
	ErrMissingInput = errors.New("file does not exist")
	// ErrKeyTooShort is returned when the key holds fewer bytes than the data it should cover.
	ErrKeyTooShort = errors.New("key is shorter than data")
	// ErrNoExtension is returned when an operation needs a file extension and the path has none.
	ErrNoExtension = errors.New("path has no extension")
	// ErrInvalidSize is returned when a key size is not a non-negative integer.
	ErrInvalidSize = errors.New("invalid key size")
	// ErrNoName is returned when a key generation request has no name.
	ErrNoName = errors.New("key name is empty")
	// ErrNotAPair is returned when two paths cannot be told apart as data and key.
	ErrNotAPair = errors.New("not a .cef/.csd file pair")
)

// Family names the operation an error occurred in.
type Family string

const (
	// Generation covers key generation requests.
	Generation Family = "generation"
	// Encryption covers fresh and static encryption requests.
	Encryption Family = "encryption"
	// Decryption covers decryption requests.
	Decryption Family = "decryption"
)

// Code is a short symbolic tag for the site a failure happened at.
type Code string

//nolint:gosec // not credentials
const (
	CodeMissingInput Code = "missing-input"
	CodeMissingKey   Code = "missing-key"
	CodeOpenInput    Code = "open-input"
	CodeReadInput    Code = "read-input"
	CodeOpenKey      Code = "open-key"
	CodeReadKey      Code = "read-key"
	CodeKeyTooShort  Code = "key-too-short"
	CodeNoExtension  Code = "no-extension"
	CodeInvalidSize  Code = "invalid-size"
	CodeNoName       Code = "no-name"
	CodeCreateKey    Code = "create-key"
	CodeWriteKey     Code = "write-key"
	CodeCreateOutput Code = "create-output"
	CodeWriteOutput  Code = "write-output"
	CodeRemoveInput  Code = "remove-input"
	CodeRemoveKey    Code = "remove-key"
	CodeNotAPair     Code = "not-a-pair"
)

// Error is a failure scoped to a single request.
type Error struct {
	// Family is the operation family the request belongs to
	Family Family

	// Code tags the failure site
	Code Code

	// Path is the file the failure is about, if any
	Path string

	// Err is the underlying cause
	Err error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s error [%s]: %v", e.Family, e.Code, e.Err)
	}

	return fmt.Sprintf("%s error [%s] %q: %v", e.Family, e.Code, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(family Family, code Code, path string, err error) *Error {
	return &Error{Family: family, Code: code, Path: path, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) Code {
	var otpErr *Error
	if errors.As(err, &otpErr) {
		return otpErr.Code
	}

	return ""
}

// LogError writes err to logger, with its family, code and path as fields when it is an *Error.
func LogError(logger logrus.FieldLogger, err error) {
	var otpErr *Error
	if !errors.As(err, &otpErr) {
		logger.Error(err)

		return
	}

	logger.WithFields(logrus.Fields{
		"family": otpErr.Family,
		"code":   otpErr.Code,
		"path":   otpErr.Path,
	}).Error(otpErr.Err)
}
