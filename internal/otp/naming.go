package otp

import (
	"path/filepath"
	"strings"
)

const (
	// KeyExt is the extension of key files.
	KeyExt = ".cef"
	// CipherExt is the extension appended to encrypted files.
	CipherExt = ".csd"
)

// Path is a file path split into directory, stem and final extension.
// Ext carries no leading dot and is empty when the file has no extension.
type Path struct {
	Dir  string
	Stem string
	Ext  string
}

// Split derives the directory, stem and extension of path.
// Dir is "." when path has no parent component.
// A leading dot alone, as in ".env", does not start an extension.
func Split(path string) Path {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	if ext == base {
		ext = ""
	}

	return Path{
		Dir:  filepath.Dir(path),
		Stem: strings.TrimSuffix(base, ext),
		Ext:  strings.TrimPrefix(ext, "."),
	}
}

// KeyPath is where the key for p is written: {dir}/{stem}.cef.
func (p Path) KeyPath() string {
	return filepath.Join(p.Dir, p.Stem+KeyExt)
}

// CipherPath is where the ciphertext for p is written: {dir}/{stem}.{ext}.csd.
func (p Path) CipherPath() (string, error) {
	if p.Ext == "" {
		return "", ErrNoExtension
	}

	return filepath.Join(p.Dir, p.Stem+"."+p.Ext+CipherExt), nil
}

// PlainPath is where the plaintext recovered from cipherPath is written.
// By default every extension added by encryption is dropped ({dir}/{stem});
// restoreExt keeps the original one ({dir}/{stem}.{ext}).
func PlainPath(cipherPath string, restoreExt bool) string {
	p := Split(cipherPath)

	if restoreExt {
		return filepath.Join(p.Dir, p.Stem)
	}

	return filepath.Join(p.Dir, Split(p.Stem).Stem)
}
