// Package otp implements a one-time-pad style file cipher.
//
// Key material is combined with file contents by byte-wise XOR. A key file is
// named {stem}.cef and a ciphertext {stem}.{ext}.csd, both beside the input.
// Decrypting a pair restores the plaintext and removes both inputs.
//
// The keys come from a non-cryptographic generator by default and nothing
// prevents reusing a key, so this is not a secure cipher.
package otp
